package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/tm/logs"
	"github.com/reusee/tm/machine"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark prompt over a stopped machine. cause is the error that
// stopped it, nil after a normal halt.
type Tap func(ctx context.Context, m *machine.Machine, cause error)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, m *machine.Machine, cause error) {
		globals := Globals(m, cause)
		logger.InfoContext(ctx, "tap",
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end")
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, globals)
	}
}

// Globals exposes the machine state to starlark.
func Globals(m *machine.Machine, cause error) starlark.StringDict {
	lines := make([]string, 0, len(m.Program.Lines))
	for _, line := range m.Program.Lines {
		lines = append(lines, line.Text)
	}

	values := map[string]any{
		"tape":    m.Tape.Cells,
		"head":    m.Tape.Head,
		"pc":      m.PC,
		"steps":   m.Steps,
		"halted":  m.Halted,
		"verdict": m.Verdict,
		"program": lines,
		"labels":  map[string]int(m.Program.Labels),
		"error":   cause,
		"read": func() string {
			return string(m.Tape.Read())
		},
		"render": func() string {
			marker, content := m.Tape.Render()
			return marker + "\n" + content
		},
	}

	globals := make(starlark.StringDict, len(values))
	for name, value := range values {
		globals[name] = toStarlarkValue(value)
	}
	return globals
}
