package frontends

import (
	"github.com/kisslang/kiss/kissconfigs"
	"github.com/kisslang/kiss/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs kissconfigs.Module
}
