package machine

import (
	"context"

	"github.com/reusee/tm/logs"
)

type Machine struct {
	Program *Program
	Tape    Tape
	PC      int
	Halted  bool
	Verdict bool
	Steps   int

	Overrun    Overrun
	Advance    Advance
	BeforeStep BeforeStep
	Logger     logs.Logger
}

// Load parses the program and the input tape and positions the program
// counter on the Start label.
func Load(programText, inputText string) (*Machine, error) {
	tape, err := ParseInput(inputText)
	if err != nil {
		return nil, err
	}
	program, err := ParseProgram(programText)
	if err != nil {
		return nil, err
	}
	return &Machine{
		Program: program,
		Tape:    tape,
		PC:      program.Labels[StartLabel],
	}, nil
}

// Run steps until the machine halts or fails. There is no step limit; only
// ctx cancellation interrupts a program that never returns.
func (m *Machine) Run(ctx context.Context) error {
	for !m.Halted {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := m.Step(); err != nil {
			return err
		}
	}
	if m.Logger != nil {
		m.Logger.InfoContext(ctx, "machine halted",
			"verdict", m.Verdict,
			"steps", m.Steps,
		)
	}
	return nil
}

// Step executes the line at PC.
func (m *Machine) Step() error {
	if m.Halted {
		return nil
	}

	if m.PC < 0 || m.PC >= len(m.Program.Lines) {
		if m.Overrun == OverrunHalt {
			m.Halted = true
			m.Verdict = false
			return nil
		}
		return &Error{
			Kind: MissingLine,
			PC:   m.PC,
		}
	}

	line := m.Program.Lines[m.PC]
	if m.Logger != nil {
		m.Logger.Debug("step",
			"pc", m.PC,
			"line", line.Text,
			"head", m.Tape.Head,
		)
	}
	m.Steps++

	return m.dispatch(line.Instr)
}
