package machine

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tm/logs"
)

type Module struct {
	dscope.Module
}

type New func(programText, inputText string) (*Machine, error)

func (Module) New(
	logger logs.Logger,
	overrun Overrun,
	advance Advance,
	beforeStep BeforeStep,
) New {
	return func(programText, inputText string) (*Machine, error) {
		m, err := Load(programText, inputText)
		if err != nil {
			return nil, err
		}
		m.Overrun = overrun
		m.Advance = advance
		m.BeforeStep = beforeStep
		m.Logger = logger
		logger.Debug("machine loaded",
			"lines", len(m.Program.Lines),
			"labels", len(m.Program.Labels),
			"head", m.Tape.Head,
			"start", m.PC,
		)
		return m, nil
	}
}
