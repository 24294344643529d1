package frontends

import (
	"context"
	"fmt"

	"github.com/kisslang/kiss/kissconfigs"
	"github.com/kisslang/kiss/lexers"
	"github.com/kisslang/kiss/logs"
	"github.com/kisslang/kiss/parsers"
	"github.com/kisslang/kiss/sources"
	"github.com/kisslang/kiss/tokens"
)

type Lex func(ctx context.Context, src *sources.Source) ([]*tokens.Symbol, error)

func (Module) Lex(
	logger logs.Logger,
) Lex {
	return func(ctx context.Context, src *sources.Source) ([]*tokens.Symbol, error) {
		symbols, err := lexers.Lex(src.Name, src.Content)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "lexed",
			"source", src.Name,
			"symbols", len(symbols),
		)
		return symbols, nil
	}
}

type Parse func(ctx context.Context, symbols []*tokens.Symbol) (*tokens.Compound, error)

func (Module) Parse(
	logger logs.Logger,
	trace kissconfigs.Trace,
) Parse {
	return func(ctx context.Context, symbols []*tokens.Symbol) (*tokens.Compound, error) {
		reductions := 0
		parser := parsers.NewParser(parsers.Rules, parsers.WithTrace(func(r parsers.Reduction) {
			reductions++
			if trace {
				logger.DebugContext(ctx, "reduce",
					"sweep", r.Sweep,
					"rule", r.Rule.Kind.String(),
					"before", r.Before,
					"after", r.After,
				)
			}
		}))

		program, err := parser.Parse(symbols)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "parsed",
			"reductions", reductions,
			"statements", len(program.Children),
		)
		return program, nil
	}
}

// Compile turns a source into a fully reduced Program.
type Compile func(ctx context.Context, src *sources.Source) (*tokens.Compound, error)

func (Module) Compile(
	lex Lex,
	parse Parse,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Compile {
	return func(ctx context.Context, src *sources.Source) (_ *tokens.Compound, err error) {
		ctx, _ = newSpan(ctx, src.Module)
		defer func() {
			if err != nil {
				logger.InfoContext(ctx, "compile failed",
					"source", src.Name,
					"error", err,
				)
				err = logs.WrapSpan(ctx, fmt.Errorf("compile %s: %w", src.Module, err))
			}
		}()

		symbols, err := lex(ctx, src)
		if err != nil {
			return nil, err
		}
		return parse(ctx, symbols)
	}
}
