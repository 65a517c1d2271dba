package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.FprintUsage(os.Stdout)
}

func (p *Executor) FprintUsage(w io.Writer) {
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share one *Command, print each once under its first name
	names := make(map[*Command][]string)
	var order []*Command
	keys := make([]string, 0, len(commands))
	for name := range commands {
		keys = append(keys, name)
	}
	slices.Sort(keys)
	for _, name := range keys {
		cmd := commands[name]
		if cmd == nil {
			continue
		}
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}

	indent := strings.Repeat("  ", depth)
	for _, cmd := range order {
		line := indent + strings.Join(names[cmd], ", ")
		for _, label := range cmd.argLabels() {
			line += " <" + label + ">"
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			printCommands(w, cmd.Subs, depth+1)
		}
	}
}
