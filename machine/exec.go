package machine

// BeforeStep is called before every dispatched instruction, nested ones
// included. A non-nil error stops the run.
type BeforeStep func(m *Machine, text string) error

func (m *Machine) dispatch(instr Instruction) error {
	if m.BeforeStep != nil {
		if err := m.BeforeStep(m, instr.String()); err != nil {
			return err
		}
	}

	switch instr := instr.(type) {

	case Move:
		if instr.Direction == Left {
			m.Tape.MoveLeft()
		} else {
			m.Tape.MoveRight()
		}
		m.PC++

	case Write:
		m.Tape.Write(instr.Symbol)
		m.PC++

	case Label:
		m.PC++

	case Goto:
		pc, ok := m.Program.Labels[instr.Label]
		if !ok {
			return &Error{
				Kind:   UnknownLabel,
				PC:     m.PC,
				Line:   instr.String(),
				Detail: instr.Label,
			}
		}
		m.PC = pc

	case Return:
		m.Halted = true
		m.Verdict = instr.Verdict

	case If:
		return m.branch(m.Tape.Read() == instr.Symbol, instr.Then)

	case IfNot:
		return m.branch(m.Tape.Read() != instr.Symbol, instr.Then)

	case Invalid:
		return &Error{
			Kind:   instr.Kind,
			PC:     m.PC,
			Line:   instr.Text,
			Detail: instr.Detail,
		}

	}

	return nil
}

func (m *Machine) branch(cond bool, then Instruction) error {
	if cond {
		if err := m.dispatch(then); err != nil {
			return err
		}
		if m.Halted {
			return nil
		}
		if m.Advance == AdvanceNested {
			return nil
		}
	}
	// under AdvanceAlways a nested Goto lands one line past its label
	m.PC++
	return nil
}
