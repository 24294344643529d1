package kissconfigs

import (
	"github.com/kisslang/kiss/cmds"
	"github.com/kisslang/kiss/configs"
)

type SourceExt string

const DefaultSourceExt = "kiss"

func (Module) SourceExt(
	loader configs.Loader,
) SourceExt {
	if ext := configs.First[string](loader, "source_ext"); ext != "" {
		return SourceExt(ext)
	}
	return DefaultSourceExt
}

// Trace enables logging of every grammar reduction.
type Trace bool

var traceFlag = cmds.Switch("-trace")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	if *traceFlag {
		return true
	}
	return Trace(configs.First[bool](loader, "trace"))
}

// Checks are paths of starlark check scripts, from -check flags first.
type Checks []string

var checkFlags = cmds.Collect[string]("-check")

func (Module) Checks(
	loader configs.Loader,
) Checks {
	ret := Checks(append([]string(nil), *checkFlags...))
	for paths := range configs.All[[]string](loader, "checks") {
		ret = append(ret, paths...)
	}
	return ret
}
