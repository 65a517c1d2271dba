package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()
}

func TestUsageAliases(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-overrun", Func(func(string) {}).Desc("OVERRUN"))
	executor.Define("-advance", Func(func(string) {}).Args("always|nested").Desc("ADVANCE"))
	buf := new(strings.Builder)
	executor.FprintUsage(buf)
	out := buf.String()
	if !strings.Contains(out, "-overrun <string>\tOVERRUN") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "-advance <always|nested>\tADVANCE") {
		t.Fatalf("got %s", out)
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("got %s", out)
	}
}

func TestArgsCountMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	Func(func(string) {}).Args("a", "b")
}
