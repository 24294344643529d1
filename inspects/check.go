package inspects

import (
	"context"
	"fmt"
	"os"

	"github.com/kisslang/kiss/logs"
	"github.com/kisslang/kiss/sources"
	"github.com/kisslang/kiss/tokens"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Finding is one message reported by a check script.
type Finding struct {
	Script  string
	Source  string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Source, f.Script, f.Message)
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func globals(src *sources.Source, program *tokens.Compound) starlark.StringDict {
	return starlark.StringDict{
		"program": ToStarlark(program),
		"codes":   starlark.String(tokens.Codes(program.Children)),
		"module":  starlark.String(src.Module),
	}
}

// Check runs the starlark script at path against program. Scripts call
// report(msg) to emit findings.
type Check func(ctx context.Context, path string, src *sources.Source, program *tokens.Compound) ([]Finding, error)

func (Module) Check(
	logger logs.Logger,
) Check {
	return func(ctx context.Context, path string, src *sources.Source, program *tokens.Compound) ([]Finding, error) {
		script, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var findings []Finding
		predeclared := globals(src, program)
		predeclared["report"] = starlarkutil.MakeFunc("report", func(msg string) {
			findings = append(findings, Finding{
				Script:  path,
				Source:  src.Name,
				Message: msg,
			})
		})

		thread := &starlark.Thread{
			Name: "check " + path,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, "check print",
					"script", path,
					"message", msg,
				)
			},
		}
		if _, err := starlark.ExecFileOptions(fileOptions, thread, path, script, predeclared); err != nil {
			return nil, fmt.Errorf("check %s: %w", path, err)
		}

		logger.DebugContext(ctx, "check done",
			"script", path,
			"findings", len(findings),
		)
		return findings, nil
	}
}
