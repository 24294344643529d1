package inspects

import (
	"github.com/kisslang/kiss/tokens"
	"go.starlark.net/starlark"
)

// ToStarlark converts a tree into nested dicts. Symbols carry kind, code,
// lexeme, line and col; compounds carry kind, code and children.
func ToStarlark(tok tokens.Token) starlark.Value {
	switch tok := tok.(type) {

	case *tokens.Symbol:
		d := starlark.NewDict(5)
		d.SetKey(starlark.String("kind"), starlark.String(tok.Kind.String()))
		d.SetKey(starlark.String("code"), starlark.String(string(tok.Code())))
		d.SetKey(starlark.String("lexeme"), starlark.String(tok.Lexeme))
		d.SetKey(starlark.String("line"), starlark.MakeInt(tok.Pos.Line))
		d.SetKey(starlark.String("col"), starlark.MakeInt(tok.Pos.Column))
		d.Freeze()
		return d

	case *tokens.Compound:
		children := make([]starlark.Value, len(tok.Children))
		for i, child := range tok.Children {
			children[i] = ToStarlark(child)
		}
		list := starlark.NewList(children)
		list.Freeze()
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("kind"), starlark.String(tok.Kind.String()))
		d.SetKey(starlark.String("code"), starlark.String(string(tok.Code())))
		d.SetKey(starlark.String("children"), list)
		d.Freeze()
		return d

	}
	return starlark.None
}
