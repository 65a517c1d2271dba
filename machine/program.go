package machine

import "strings"

type Line struct {
	Text  string
	Instr Instruction
}

type Program struct {
	Lines  []Line
	Labels Labels
}

// ParseProgram keeps every non-blank line, trimmed, and indexes its labels.
func ParseProgram(text string) (*Program, error) {
	var lines []Line
	for _, text := range strings.Split(text, "\n") {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		lines = append(lines, Line{
			Text:  text,
			Instr: Parse(text),
		})
	}
	labels, err := indexLabels(lines)
	if err != nil {
		return nil, err
	}
	return &Program{
		Lines:  lines,
		Labels: labels,
	}, nil
}
