package debugs

import (
	"errors"
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type cell struct {
		Symbol rune
		index  int
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "Start", starlark.String("Start")},
		{"rune", 'v', starlark.String("v")},
		{"runes", []rune("1 1"), starlark.String("1 1")},
		{"int", 42, starlark.MakeInt(42)},
		{"int8", int8(-3), starlark.MakeInt(-3)},
		{"uint8", uint8(3), starlark.MakeInt(3)},
		{"error", errors.New("boom"), starlark.String("boom")},
		{"strings", []string{"Start:", "Return True"}, starlark.NewList([]starlark.Value{
			starlark.String("Start:"),
			starlark.String("Return True"),
		})},
		{"labels", map[string]int{"Start": 0}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("Start"), starlark.MakeInt(0))
			return d
		}()},
		{"struct", cell{Symbol: '1', index: 2}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("Symbol"), starlark.String("1"))
			return d
		}()},
		{"pointer", &cell{Symbol: 'x'}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("Symbol"), starlark.String("x"))
			return d
		}()},
		{"nil pointer", (*cell)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
