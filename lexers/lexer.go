package lexers

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/kisslang/kiss/tokens"
)

const whitespaceRule = "Whitespace"

type definition struct {
	def   *lexer.StatefulDefinition
	kinds map[lexer.TokenType]tokens.SymbolKind
	space lexer.TokenType
}

func newDefinition(rules []Rule) *definition {
	simple := []lexer.SimpleRule{
		{Name: whitespaceRule, Pattern: `[ \t\r\n]+`},
	}
	for _, rule := range rules {
		simple = append(simple, lexer.SimpleRule{
			Name:    rule.Kind.String(),
			Pattern: rule.Pattern,
		})
	}
	def := lexer.MustSimple(simple)

	symbols := def.Symbols()
	kinds := make(map[lexer.TokenType]tokens.SymbolKind, len(rules))
	for _, rule := range rules {
		kinds[symbols[rule.Kind.String()]] = rule.Kind
	}
	return &definition{
		def:   def,
		kinds: kinds,
		space: symbols[whitespaceRule],
	}
}

var defaultDefinition = sync.OnceValue(func() *definition {
	return newDefinition(Rules)
})

// Lex scans source into symbols. name is only used for positions in
// wrapped errors.
func Lex(name string, source string) ([]*tokens.Symbol, error) {
	return defaultDefinition().lex(name, source)
}

// LexWith scans with a custom rule table.
func LexWith(rules []Rule, name string, source string) ([]*tokens.Symbol, error) {
	return newDefinition(rules).lex(name, source)
}

func (d *definition) lex(name string, source string) ([]*tokens.Symbol, error) {
	lex, err := d.def.LexString(name, source)
	if err != nil {
		return nil, err
	}
	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return nil, &UnknownTokenError{
				Pos: tokens.Pos{
					Line:   lexErr.Pos.Line,
					Column: lexErr.Pos.Column,
				},
			}
		}
		return nil, fmt.Errorf("lex %s: %w", name, err)
	}

	ret := make([]*tokens.Symbol, 0, len(toks))
	for _, tok := range toks {
		if tok.EOF() || tok.Type == d.space {
			continue
		}
		kind, ok := d.kinds[tok.Type]
		if !ok {
			return nil, fmt.Errorf("lex %s: no kind for token type %d", name, tok.Type)
		}
		ret = append(ret, tokens.NewSymbol(kind, tok.Value, tokens.Pos{
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		}))
	}
	return ret, nil
}
