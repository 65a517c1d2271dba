package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tm/configs"
	"github.com/reusee/tm/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
