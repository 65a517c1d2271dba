package visual

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/chzyer/readline"
)

// Prompter shows text and blocks until the user acknowledges it.
type Prompter interface {
	Prompt(text string) error
}

var ErrInterrupted = errors.New("interrupted")

type linePrompter struct {
	init func() (*readline.Instance, error)
}

func (Module) Prompter(
	screen Screen,
) Prompter {
	return &linePrompter{
		init: sync.OnceValues(func() (*readline.Instance, error) {
			return readline.NewEx(&readline.Config{
				Stdin:        io.NopCloser(os.Stdin),
				Stdout:       screen,
				HistoryLimit: -1,
			})
		}),
	}
}

func (p *linePrompter) Prompt(text string) error {
	rl, err := p.init()
	if err != nil {
		return err
	}
	rl.SetPrompt(text + " ")
	_, err = rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return ErrInterrupted
	case errors.Is(err, io.EOF):
		// nobody to wait for
		return nil
	}
	return err
}
