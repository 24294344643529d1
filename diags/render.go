package diags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kisslang/kiss/sources"
	"github.com/kisslang/kiss/tokens"
)

// Positioned is implemented by errors pointing into a source.
type Positioned interface {
	error
	Position() tokens.Pos
}

// Render formats err with the offending source line and a caret under its
// column. Errors without a position render as err.Error().
func Render(err error, src *sources.Source) string {
	if err == nil {
		return ""
	}

	var positioned Positioned
	if !errors.As(err, &positioned) || src == nil {
		return err.Error()
	}
	pos := positioned.Position()

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", positioned.Error())
	fmt.Fprintf(&sb, "  --> %s:%d:%d\n", src.Name, pos.Line, pos.Column)

	line, ok := src.Line(pos.Line)
	if !ok {
		return sb.String()
	}
	gutter := fmt.Sprintf("%d | ", pos.Line)
	sb.WriteString(gutter)
	sb.WriteString(line)
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", len(gutter)))
	runes := []rune(line)
	for i := 0; i < pos.Column-1 && i < len(runes); i++ {
		if runes[i] == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runeWidth(runes[i])))
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}

func runeWidth(r rune) int {
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
