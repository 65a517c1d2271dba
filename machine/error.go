package machine

import "fmt"

const (
	MissingArgument = Kind(iota)
	InvalidInput
	DuplicateLabel
	MissingStartLabel
	UnknownLabel
	InvalidInstruction
	Segfault
	MissingLine
)

var strKind = []string{
	"missing argument",
	"invalid input",
	"duplicate label",
	"missing start label",
	"unknown label",
	"invalid instruction",
	"segfault",
	"missing line",
}

// Kind classifies a fatal machine failure.
type Kind int

func (k Kind) Error() string {
	return strKind[k]
}

// Error describes a failure and where it happened.
type Error struct {
	Kind   Kind
	PC     int    // program counter, -1 for load failures
	Line   string // offending instruction text
	Detail string
}

func (e *Error) Error() string {
	msg := "tm: " + e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.PC >= 0 {
		msg += fmt.Sprintf(" at line %d", e.PC)
	}
	if e.Line != "" {
		msg += fmt.Sprintf(" (%q)", e.Line)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func loadError(kind Kind, detail string) error {
	return &Error{
		Kind:   kind,
		PC:     -1,
		Detail: detail,
	}
}
