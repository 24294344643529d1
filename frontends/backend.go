package frontends

import (
	"context"
	"fmt"
	"io"

	"github.com/kisslang/kiss/tokens"
)

// Backend consumes a fully reduced Program. Code generators implement it.
type Backend interface {
	Generate(ctx context.Context, module string, program *tokens.Compound) error
}

// DumpBackend writes the tree in indented form.
type DumpBackend struct {
	Writer io.Writer
}

var _ Backend = DumpBackend{}

func (d DumpBackend) Generate(ctx context.Context, module string, program *tokens.Compound) error {
	if program == nil || program.Kind != tokens.Program {
		return fmt.Errorf("generate %s: not a program", module)
	}
	if _, err := fmt.Fprintf(d.Writer, "module %s\n", module); err != nil {
		return err
	}
	return tokens.Format(d.Writer, program)
}
