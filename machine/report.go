package machine

import (
	"fmt"
	"io"
)

const Separator = "----"

// Report prints the final tape and the verdict.
func Report(w io.Writer, m *Machine) error {
	marker, content := m.Tape.Render()
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\nMachine Returned %s\n",
		marker,
		content,
		Separator,
		verdictString(m.Verdict),
	)
	return err
}
