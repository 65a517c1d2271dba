package cmds

import (
	"encoding"
	"fmt"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/tm/vars"
)

// Executor maps command-line words to commands. Words naming no command go to
// the positional handler, if one is set.
type Executor struct {
	commands   map[string]*Command
	positional func(arg string)
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}
	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

// Command returns the command defined as name, or nil.
func (p *Executor) Command(name string) *Command {
	return p.commands[name]
}

// Positional sets fn to receive every argument that names no command and does
// not look like a flag.
func (p *Executor) Positional(fn func(arg string)) {
	p.positional = fn
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			if err := p.takePositional(name); err != nil {
				return err
			}
			continue
		}

		var err error
		args, err = command.call(args)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		commands, err = command.enter(name, commands)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Executor) takePositional(name string) error {
	if p.positional == nil || strings.HasPrefix(name, "-") {
		return fmt.Errorf("unknown command: %s", name)
	}
	p.positional(name)
	return nil
}

// call runs the command's function with arguments taken from args and returns
// the rest.
func (c *Command) call(args []string) ([]string, error) {
	if !c.Func.IsValid() {
		return args, nil
	}
	fnType := c.Func.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := parseArg(fnType.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	if rets := c.Func.Call(callArgs); len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}

// enter makes the sub commands visible to the following arguments.
func (c *Command) enter(name string, commands map[string]*Command) (map[string]*Command, error) {
	if len(c.Subs) == 0 {
		return commands, nil
	}
	commands = maps.Clone(commands)
	for subname, sub := range c.Subs {
		if _, ok := commands[subname]; ok {
			return nil, fmt.Errorf("duplicated sub command: %s %s", name, subname)
		}
		commands[subname] = sub
	}
	return commands, nil
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

func parseArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			// optional
			return reflect.New(t.Elem()), nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	if len(args) == 0 {
		return ret, fmt.Errorf("expecting argument, got nothing")
	}
	str := args[0]
	ret = reflect.New(t).Elem()

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		if err := ret.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(str)); err != nil {
			return ret, err
		}
		return ret, nil
	}

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, nil
}
