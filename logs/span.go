package logs

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

// Span identifies one compilation in logs and errors.
type Span string

type spanKey struct{}

func SpanFrom(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(spanKey{}).(Span)
	return span, ok
}

type NewSpan func(ctx context.Context, module string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, module string) (context.Context, Span) {
		var args []any
		if parent, ok := SpanFrom(ctx); ok {
			args = append(args, "parent", parent)
		}
		args = append(args, "module", module)

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, spanKey{}, span)
		logger.DebugContext(ctx, "new span", args...)
		return ctx, span
	}
}

// WrapSpan joins the span of ctx onto err. The original error stays
// reachable with errors.As.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := SpanFrom(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
