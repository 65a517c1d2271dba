package machine

import "strings"

const (
	Blank      = ' '
	HeadMarker = 'v'
)

// Tape is an unbounded row of cells. Cells[0] is the leftmost materialized cell;
// anything past the end reads as Blank.
type Tape struct {
	Cells []rune
	Head  int
}

func (t *Tape) Read() rune {
	if t.Head < len(t.Cells) {
		return t.Cells[t.Head]
	}
	return Blank
}

func (t *Tape) Write(r rune) {
	for t.Head >= len(t.Cells) {
		t.Cells = append(t.Cells, Blank)
	}
	t.Cells[t.Head] = r
}

func (t *Tape) MoveRight() {
	t.Head++
}

// MoveLeft at the leftmost cell grows the tape instead of moving the head.
func (t *Tape) MoveLeft() {
	if t.Head == 0 {
		t.Cells = append([]rune{Blank}, t.Cells...)
		return
	}
	t.Head--
}

func (t *Tape) Render() (marker string, content string) {
	marker = strings.Repeat(" ", t.Head) + string(HeadMarker)
	content = string(t.Cells)
	return
}
