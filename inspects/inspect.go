package inspects

import (
	"context"

	"github.com/kisslang/kiss/logs"
	"github.com/kisslang/kiss/sources"
	"github.com/kisslang/kiss/tokens"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// Inspect opens a starlark REPL with the program in scope.
type Inspect func(ctx context.Context, src *sources.Source, program *tokens.Compound)

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, src *sources.Source, program *tokens.Compound) {
		logger.InfoContext(ctx, "inspect", "source", src.Name)
		defer func() {
			logger.InfoContext(ctx, "inspect end", "source", src.Name)
		}()
		thread := &starlark.Thread{
			Name: "inspect",
		}
		repl.REPLOptions(fileOptions, thread, globals(src, program))
	}
}
