package machine

// Instruction is one parsed program line. Conditionals embed another
// Instruction, so a line parses into a small tree.
type Instruction interface {
	String() string
	instruction()
}

type Direction bool

const (
	Left  = Direction(false)
	Right = Direction(true)
)

type Move struct {
	Direction Direction
}

type Write struct {
	Symbol rune
}

type Label struct {
	Name string
}

type Goto struct {
	Label string
}

type Return struct {
	Verdict bool
}

type If struct {
	Symbol rune
	Then   Instruction
}

type IfNot struct {
	Symbol rune
	Then   Instruction
}

// Invalid stands for text that failed to parse. The failure is reported only
// if the machine actually reaches it.
type Invalid struct {
	Text   string
	Kind   Kind
	Detail string
}

func (Move) instruction()    {}
func (Write) instruction()   {}
func (Label) instruction()   {}
func (Goto) instruction()    {}
func (Return) instruction()  {}
func (If) instruction()      {}
func (IfNot) instruction()   {}
func (Invalid) instruction() {}

func (m Move) String() string {
	if m.Direction == Left {
		return "Move Left"
	}
	return "Move Right"
}

func (w Write) String() string {
	return "Write " + symbolString(w.Symbol)
}

func (l Label) String() string {
	return l.Name + ":"
}

func (g Goto) String() string {
	return "Goto " + g.Label
}

func (r Return) String() string {
	return "Return " + verdictString(r.Verdict)
}

func (i If) String() string {
	return "If " + symbolString(i.Symbol) + " " + i.Then.String()
}

func (i IfNot) String() string {
	return "If Not " + symbolString(i.Symbol) + " " + i.Then.String()
}

func (i Invalid) String() string {
	return i.Text
}

func symbolString(r rune) string {
	if r == Blank {
		return "Blank"
	}
	return "'" + string(r) + "'"
}

func verdictString(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
