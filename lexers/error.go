package lexers

import (
	"fmt"

	"github.com/kisslang/kiss/tokens"
)

// UnknownTokenError is returned when no rule matches at a non-whitespace
// position.
type UnknownTokenError struct {
	Pos tokens.Pos
}

func (u *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token at %s", u.Pos)
}

func (u *UnknownTokenError) Position() tokens.Pos {
	return u.Pos
}
