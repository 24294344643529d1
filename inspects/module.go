package inspects

import (
	"github.com/kisslang/kiss/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
