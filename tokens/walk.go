package tokens

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Walk yields every token of the tree rooted at tok in depth-first order,
// paired with its depth.
func Walk(tok Token) iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		walk(tok, 0, yield)
	}
}

func walk(tok Token, depth int, yield func(int, Token) bool) bool {
	if !yield(depth, tok) {
		return false
	}
	if c, ok := tok.(*Compound); ok {
		for _, child := range c.Children {
			if !walk(child, depth+1, yield) {
				return false
			}
		}
	}
	return true
}

// Format writes an indented dump of the tree.
func Format(w io.Writer, tok Token) error {
	for depth, t := range Walk(tok) {
		indent := strings.Repeat("  ", depth)
		var err error
		switch t := t.(type) {
		case *Symbol:
			_, err = fmt.Fprintf(w, "%s%s %q %d:%d\n", indent, t.Kind, t.Lexeme, t.Pos.Line, t.Pos.Column)
		case *Compound:
			_, err = fmt.Fprintf(w, "%s%s\n", indent, t.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
