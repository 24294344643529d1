package parsers

import (
	"regexp"

	"github.com/kisslang/kiss/tokens"
)

// Rule reduces the leftmost span of the type-code string matching Pattern
// into a single compound of Kind.
type Rule struct {
	Kind    tokens.CompoundKind
	Pattern *regexp.Regexp
}

func NewRule(kind tokens.CompoundKind, pattern string) Rule {
	return Rule{
		Kind:    kind,
		Pattern: regexp.MustCompile(pattern),
	}
}

// Rules is the grammar. Order is precedence: reordering changes what parses.
var Rules = []Rule{
	NewRule(tokens.RawType, `[bic'f]`),
	NewRule(tokens.Tuple, `\(tt\(`),
	NewRule(tokens.List, `\[t+\[`),
	NewRule(tokens.Struct, `\(n\(\{t*\{`),
	NewRule(tokens.StructAccess, `n(?:\.n)+`),
	NewRule(tokens.TypeName, `@|\$n|\(NN\(|\[N\[`),
	NewRule(tokens.FuncDef, `kn:N>N\}`),
	NewRule(tokens.Type, `[r,lsS]`),
	NewRule(tokens.Body, `\{[tFLa=nd]*\{`),
	NewRule(tokens.Loop, `k\}`),
	NewRule(tokens.Cast, `<N<`),
	NewRule(tokens.StructDef, `k\{(?:n:N)*\{`),
}

// complete holds the codes that may stay at the top level of a program.
const complete = "tFLadIn="

func isComplete(code byte) bool {
	for i := 0; i < len(complete); i++ {
		if complete[i] == code {
			return true
		}
	}
	return false
}

// incompleteIndex returns the index of the first code that cannot stay at the
// top level, or -1.
func incompleteIndex(codes string) int {
	for i := 0; i < len(codes); i++ {
		if !isComplete(codes[i]) {
			return i
		}
	}
	return -1
}
