package machine

import "fmt"

// Overrun decides what happens when the program counter leaves the program.
type Overrun int

const (
	OverrunFatal Overrun = iota // fail with MissingLine
	OverrunHalt                 // halt as if Return False ran
)

// Advance decides how If and If Not move the program counter after running
// their nested instruction.
type Advance int

const (
	// AdvanceAlways adds one to PC after the nested instruction, whatever it did.
	AdvanceAlways Advance = iota
	// AdvanceNested leaves PC to the nested instruction when the condition holds.
	AdvanceNested
)

func ParseOverrun(s string) (Overrun, error) {
	switch s {
	case "", "fatal":
		return OverrunFatal, nil
	case "halt":
		return OverrunHalt, nil
	}
	return 0, fmt.Errorf("unknown overrun policy: %s", s)
}

func ParseAdvance(s string) (Advance, error) {
	switch s {
	case "", "always":
		return AdvanceAlways, nil
	case "nested":
		return AdvanceNested, nil
	}
	return 0, fmt.Errorf("unknown conditional advance policy: %s", s)
}

func (o *Overrun) UnmarshalText(text []byte) error {
	overrun, err := ParseOverrun(string(text))
	if err != nil {
		return err
	}
	*o = overrun
	return nil
}

func (a *Advance) UnmarshalText(text []byte) error {
	advance, err := ParseAdvance(string(text))
	if err != nil {
		return err
	}
	*a = advance
	return nil
}
