package tokens

import (
	"fmt"
	"strings"
)

// Token is either a *Symbol or a *Compound.
type Token interface {
	IsSymbol() bool
	// Code is the single byte the reducer matches against.
	Code() byte
	String() string

	sealed()
}

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Column)
}

type Symbol struct {
	Kind   SymbolKind
	Lexeme string
	Pos    Pos
}

var _ Token = new(Symbol)

func NewSymbol(kind SymbolKind, lexeme string, pos Pos) *Symbol {
	return &Symbol{
		Kind:   kind,
		Lexeme: lexeme,
		Pos:    pos,
	}
}

func (s *Symbol) IsSymbol() bool {
	return true
}

func (s *Symbol) Code() byte {
	return byte(s.Kind)
}

func (s *Symbol) String() string {
	return fmt.Sprintf("%s(%q)", s.Kind, s.Lexeme)
}

func (s *Symbol) sealed() {}

// Compound owns its children. It is never modified after NewCompound.
type Compound struct {
	Kind     CompoundKind
	Children []Token
}

var _ Token = new(Compound)

func NewCompound(kind CompoundKind, children []Token) *Compound {
	return &Compound{
		Kind:     kind,
		Children: children,
	}
}

func (c *Compound) IsSymbol() bool {
	return false
}

func (c *Compound) Code() byte {
	return byte(c.Kind)
}

func (c *Compound) String() string {
	var b strings.Builder
	b.WriteString(c.Kind.String())
	b.WriteString("[")
	for i, child := range c.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(child.String())
	}
	b.WriteString("]")
	return b.String()
}

func (c *Compound) sealed() {}

// FirstSymbol descends through first children until it reaches a leaf.
// It returns nil for a compound without children.
func FirstSymbol(tok Token) *Symbol {
	for {
		switch t := tok.(type) {
		case *Symbol:
			return t
		case *Compound:
			if len(t.Children) == 0 {
				return nil
			}
			tok = t.Children[0]
		default:
			return nil
		}
	}
}
