package parsers

import (
	"slices"

	"github.com/kisslang/kiss/tokens"
)

// Reduction describes one rule application.
type Reduction struct {
	Sweep  int
	Rule   Rule
	Before string
	After  string
}

type Parser struct {
	rules    []Rule
	onReduce func(Reduction)
}

type Option func(*Parser)

// WithTrace calls fn after every reduction.
func WithTrace(fn func(Reduction)) Option {
	return func(p *Parser) {
		p.onReduce = fn
	}
}

func NewParser(rules []Rule, options ...Option) *Parser {
	ret := &Parser{
		rules: rules,
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

var defaultParser = NewParser(Rules)

// Parse reduces symbols into a Program with the default rules.
func Parse(symbols []*tokens.Symbol) (*tokens.Compound, error) {
	return defaultParser.Parse(symbols)
}

func (p *Parser) Parse(symbols []*tokens.Symbol) (*tokens.Compound, error) {
	seq := tokens.FromSymbols(symbols)

	for sweep := 0; ; sweep++ {
		start := tokens.Codes(seq)
		if incompleteIndex(start) < 0 {
			return tokens.NewCompound(tokens.Program, seq), nil
		}

		codes := start
		for _, rule := range p.rules {
			for {
				loc := rule.Pattern.FindStringIndex(codes)
				if loc == nil || loc[0] == loc[1] {
					break
				}
				seq = replace(seq, loc[0], loc[1], rule.Kind)
				next := tokens.Codes(seq)
				if next == codes {
					// a rule rewriting a code to itself would never stop
					break
				}
				if p.onReduce != nil {
					p.onReduce(Reduction{
						Sweep:  sweep,
						Rule:   rule,
						Before: codes,
						After:  next,
					})
				}
				codes = next
			}
		}

		if codes == start {
			return nil, stalled(codes, seq)
		}
	}
}

// replace moves seq[start:end] into a new compound and splices it back as a
// single token.
func replace(seq []tokens.Token, start, end int, kind tokens.CompoundKind) []tokens.Token {
	children := slices.Clone(seq[start:end])
	seq = slices.Replace(seq, start, end, tokens.Token(tokens.NewCompound(kind, children)))
	return seq
}
