package machine

import (
	"strings"
	"unicode/utf8"
)

// ParseInput reads an input file: the first line marks the head column with a
// 'v', the second line holds the initial tape.
func ParseInput(text string) (Tape, error) {
	lines := strings.Split(text, "\n")

	idx := strings.IndexRune(lines[0], HeadMarker)
	if idx < 0 {
		return Tape{}, loadError(InvalidInput, "head position")
	}
	head := utf8.RuneCountInString(lines[0][:idx])

	if len(lines) < 2 {
		return Tape{}, loadError(InvalidInput, "tape empty")
	}

	return Tape{
		Cells: []rune(lines[1]),
		Head:  head,
	}, nil
}
