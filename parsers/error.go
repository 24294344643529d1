package parsers

import (
	"fmt"

	"github.com/kisslang/kiss/tokens"
)

// UnexpectedTokenError is returned when a sweep reduces nothing while
// incomplete tokens remain.
type UnexpectedTokenError struct {
	// Token is the leftmost leaf of the first incomplete top-level token.
	Token *tokens.Symbol
	// Codes is the type-code string the reduction stalled on.
	Codes string
}

func (u *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %q (codes %q) at %s", u.Token.Lexeme, u.Codes, u.Token.Pos)
}

func (u *UnexpectedTokenError) Position() tokens.Pos {
	return u.Token.Pos
}

func stalled(codes string, seq []tokens.Token) error {
	idx := incompleteIndex(codes)
	if idx < 0 {
		return fmt.Errorf("stalled on complete codes %q", codes)
	}
	sym := tokens.FirstSymbol(seq[idx])
	if sym == nil {
		return fmt.Errorf("stalled on empty %s at %d in codes %q", seq[idx], idx, codes)
	}
	return &UnexpectedTokenError{
		Token: sym,
		Codes: codes,
	}
}
