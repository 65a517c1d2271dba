package visual

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tm/machine"
	"github.com/reusee/tm/tmconfigs"
)

type Module struct {
	dscope.Module
}

const clearScreen = "\x1b[H\x1b[2J"

// Screen receives the tape renderings.
type Screen io.Writer

func (Module) Screen() Screen {
	return os.Stdout
}

// Stepper draws the tape and waits for acknowledgment before each instruction.
func Stepper(screen io.Writer, prompter Prompter) machine.BeforeStep {
	return func(m *machine.Machine, text string) error {
		marker, content := m.Tape.Render()
		if _, err := fmt.Fprintf(screen, "%s%s\n%s\n", clearScreen, marker, content); err != nil {
			return err
		}
		return prompter.Prompt(text)
	}
}

func (Module) BeforeStep(
	visual tmconfigs.Visual,
	screen Screen,
	prompter Prompter,
) machine.BeforeStep {
	if !visual {
		return nil
	}
	return Stepper(screen, prompter)
}
