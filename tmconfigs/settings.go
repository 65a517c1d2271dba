package tmconfigs

import (
	"github.com/reusee/tm/cmds"
	"github.com/reusee/tm/configs"
	"github.com/reusee/tm/machine"
)

var (
	visualFlag  = cmds.Switch("-v")
	tapFlag     = cmds.Switch("-tap")
	overrunFlag = cmds.Var[*machine.Overrun]("-overrun")
	advanceFlag = cmds.Var[*machine.Advance]("-advance")
	configFlag  = cmds.Collect[string]("-config")
)

func init() {
	cmds.Lookup("-v").Desc("pause before every instruction")
	cmds.Lookup("-tap").Desc("open a starlark prompt once the machine stops")
	cmds.Lookup("-overrun").Args("fatal|halt").Desc("what running past the last line does")
	cmds.Lookup("-advance").Args("always|nested").Desc("how If moves on after its nested instruction")
	cmds.Lookup("-config").Args("file").Desc("read this config file before the searched ones, may repeat")
}

// Visual enables pausing before every instruction.
type Visual bool

func (Visual) ConfigPath() string {
	return "visual"
}

func (Module) Visual(
	loader configs.Loader,
) Visual {
	return Visual(*visualFlag) || configs.Lookup[Visual](loader)
}

// Tap opens a starlark prompt over the machine once it stops.
type Tap bool

func (Tap) ConfigPath() string {
	return "tap"
}

func (Module) Tap(
	loader configs.Loader,
) Tap {
	return Tap(*tapFlag) || configs.Lookup[Tap](loader)
}

type overrunConfig string

func (overrunConfig) ConfigPath() string {
	return "overrun"
}

func (Module) Overrun(
	loader configs.Loader,
) machine.Overrun {
	if *overrunFlag != nil {
		return **overrunFlag
	}
	overrun, err := machine.ParseOverrun(string(configs.Lookup[overrunConfig](loader)))
	if err != nil {
		panic(err)
	}
	return overrun
}

type advanceConfig string

func (advanceConfig) ConfigPath() string {
	return "conditional_advance"
}

func (Module) Advance(
	loader configs.Loader,
) machine.Advance {
	if *advanceFlag != nil {
		return **advanceFlag
	}
	advance, err := machine.ParseAdvance(string(configs.Lookup[advanceConfig](loader)))
	if err != nil {
		panic(err)
	}
	return advance
}
