package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusee/dscope"
	"github.com/reusee/tm/cmds"
	"github.com/reusee/tm/configs"
	"github.com/reusee/tm/debugs"
	"github.com/reusee/tm/logs"
	"github.com/reusee/tm/machine"
	"github.com/reusee/tm/modes"
	"github.com/reusee/tm/sources"
	"github.com/reusee/tm/tmconfigs"
	"github.com/reusee/tm/visual"
)

var (
	args        = cmds.Args()
	showGrammar = cmds.Switch("-grammar")
)

func init() {
	cmds.Lookup("-grammar").Desc("print the language reference")
}

func main() {
	cmds.Execute(os.Args[1:])

	if *showGrammar {
		fmt.Print(machine.Grammar)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scope := dscope.New(
		new(machine.Module),
		new(sources.Module),
		new(tmconfigs.Module),
		new(visual.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	// settings providers panic on a broken config, report it plainly first
	if err := dscope.Get[configs.Loader](scope).Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		cancel()
		os.Exit(1)
	}

	var code int
	scope.Call(func(
		fetch sources.Fetch,
		newMachine machine.New,
		newSpan logs.NewSpan,
		logger logs.Logger,
		tapEnabled tmconfigs.Tap,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(ctx, "")
		m, err := run(ctx, os.Stdout, *args, fetch, newMachine)
		if err != nil {
			// printed below, logged for -log-debug
			logger.DebugContext(ctx, "run failed", "error", err)
			fmt.Fprintf(os.Stderr, "%v\n", logs.WrapSpan(ctx, err))
		}
		code = exitCode(err)
		if tapEnabled && m != nil {
			tap(ctx, m, err)
		}
	})

	cancel()
	os.Exit(code)
}

// exitCode is 0 for any verdict and 1 for every failure.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// run loads and runs the program named by args, writing the report to w.
// The machine is returned even when it fails after loading, so the tap can
// inspect where it stopped.
func run(
	ctx context.Context,
	w io.Writer,
	args []string,
	fetch sources.Fetch,
	newMachine machine.New,
) (*machine.Machine, error) {
	if len(args) < 2 {
		detail := "program"
		if len(args) == 1 {
			detail = "input"
		}
		return nil, &machine.Error{
			Kind:   machine.MissingArgument,
			PC:     -1,
			Detail: detail,
		}
	}

	programText, err := fetch(ctx, args[0])
	if err != nil {
		return nil, err
	}
	inputText, err := fetch(ctx, args[1])
	if err != nil {
		return nil, err
	}

	m, err := newMachine(programText, inputText)
	if err != nil {
		return nil, err
	}
	if err := m.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return m, fmt.Errorf("interrupted: %w", err)
		}
		return m, err
	}
	return m, machine.Report(w, m)
}
