package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global executor, exiting with usage on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		GlobalExecutor.FprintUsage(os.Stderr)
		os.Exit(2)
	}
}

// Lookup returns the global command defined as name, or nil.
func Lookup(name string) *Command {
	return GlobalExecutor.Command(name)
}
