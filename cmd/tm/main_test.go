package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tm/logs"
	"github.com/reusee/tm/machine"
	"github.com/reusee/tm/sources"
)

func testFetch(files map[string]string) sources.Fetch {
	return func(_ context.Context, ref string) (string, error) {
		content, ok := files[ref]
		if !ok {
			return "", fmt.Errorf("%s: %w", ref, fs.ErrNotExist)
		}
		return content, nil
	}
}

func testNewMachine() (newMachine machine.New) {
	dscope.New(
		new(machine.Module),
		new(logs.Module),
		dscope.Provide(machine.OverrunFatal),
		dscope.Provide(machine.AdvanceAlways),
		dscope.Provide(machine.BeforeStep(nil)),
	).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Call(func(
		n machine.New,
	) {
		newMachine = n
	})
	return
}

var testFiles = map[string]string{
	"erase.tm":  "Start:\nIf Not '1' Return False\nWrite Blank\nMove Right\nGoto Start",
	"dup.tm":    "Start:\nLoop:\nLoop:\nReturn True",
	"loop.tm":   "Start:\nGoto Nowhere",
	"ones.tape": "v\n1 1",
}

func TestRun(t *testing.T) {
	fetch := testFetch(testFiles)
	newMachine := testNewMachine()

	for _, c := range []struct {
		name   string
		args   []string
		kind   machine.Kind
		detail string
	}{
		{"no arguments", nil, machine.MissingArgument, "program"},
		{"program only", []string{"erase.tm"}, machine.MissingArgument, "input"},
		{"duplicate label", []string{"dup.tm", "ones.tape"}, machine.DuplicateLabel, "Loop"},
		{"unknown label", []string{"loop.tm", "ones.tape"}, machine.UnknownLabel, "Nowhere"},
	} {
		t.Run(c.name, func(t *testing.T) {
			out := new(bytes.Buffer)
			_, err := run(t.Context(), out, c.args, fetch, newMachine)
			if !errors.Is(err, c.kind) {
				t.Fatalf("got %v", err)
			}
			var e *machine.Error
			if !errors.As(err, &e) || e.Detail != c.detail {
				t.Fatalf("got %#v", err)
			}
			// failures never print a report
			if out.Len() != 0 {
				t.Fatalf("got %q", out.String())
			}
			if exitCode(err) != 1 {
				t.Fatal()
			}
		})
	}
}

func TestRunFalseVerdict(t *testing.T) {
	out := new(bytes.Buffer)
	m, err := run(t.Context(), out, []string{"erase.tm", "ones.tape"}, testFetch(testFiles), testNewMachine())
	if err != nil {
		t.Fatal(err)
	}
	if !m.Halted || m.Verdict {
		t.Fatal("expected False")
	}
	if got := out.String(); got != " v\n  1\n----\nMachine Returned False\n" {
		t.Fatalf("got %q", got)
	}
	if exitCode(err) != 0 {
		t.Fatal("a verdict exits 0")
	}
}

func TestRunFetchError(t *testing.T) {
	out := new(bytes.Buffer)
	_, err := run(t.Context(), out, []string{"erase.tm", "missing.tape"}, testFetch(testFiles), testNewMachine())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
	if out.Len() != 0 || !strings.Contains(err.Error(), "missing.tape") {
		t.Fatalf("got %q, %v", out.String(), err)
	}
}

func TestRunInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	m, err := run(ctx, new(bytes.Buffer), []string{"erase.tm", "ones.tape"}, testFetch(testFiles), testNewMachine())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	// loaded before the interruption, so the tap still gets it
	if m == nil || m.Halted {
		t.Fatal()
	}
}
