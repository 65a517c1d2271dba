package cmds

import (
	"fmt"
	"reflect"
)

// Command is a leaf that consumes the arguments of Func, or a group of Subs.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	// ArgNames replace the argument types in usage
	ArgNames []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) Args(names ...string) *Command {
	if c.Func.IsValid() && len(names) != c.Func.Type().NumIn() {
		panic(fmt.Errorf("%d argument names for %d arguments", len(names), c.Func.Type().NumIn()))
	}
	c.ArgNames = names
	return c
}

func (c *Command) argLabels() (ret []string) {
	if !c.Func.IsValid() {
		return nil
	}
	if len(c.ArgNames) > 0 {
		return c.ArgNames
	}
	for i := range c.Func.Type().NumIn() {
		ret = append(ret, c.Func.Type().In(i).String())
	}
	return
}

// Func wraps fn, which may return nothing or an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	switch {
	case fnType.IsVariadic():
		panic(fmt.Errorf("variadic function not supported: %v", fnType))
	case fnType.NumOut() >= 2:
		panic(fmt.Errorf("must return 0 or 1 value"))
	case fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
