package lexers

import "github.com/kisslang/kiss/tokens"

type Rule struct {
	Kind    tokens.SymbolKind
	Pattern string
}

// Rules is tried top to bottom at every position; the first rule matching at
// the cursor wins, even when a later rule would match more text.
var Rules = []Rule{
	{tokens.Keyword, `loop|func|struct`},
	{tokens.Boolean, `true|false`},
	{tokens.Integer, `(?:[0-9]+|0x[0-9A-Fa-f]+|0b[01]+):[1248]`},
	{tokens.Float, `(?:[0-9]+\.[0-9]+|\.[0-9]+):[48]`},
	{tokens.Character, `0c(?:\\.|[^\\])`},
	{tokens.StringLit, `'(?:\\.|[^'\\])*'`},
	{tokens.TypeChar, `#:[1248]|\.:[48]|@|\?`},
	{tokens.Identifier, `[A-Za-z_][A-Za-z0-9_]*`},
	{tokens.Parenth, `[()]`},
	{tokens.Bracket, `[\[\]]`},
	{tokens.Brace, `[{}]`},
	{tokens.ReturnOp, `->`},
	{tokens.DoubleArrow, `<<|>>`},
	{tokens.Operator, `\+\+|--|==|!=|>=|<=|&&|\|\||\+=|-=|\*=|/=|%=|[-+*/%<>=!&|^~]`},
	{tokens.Dollar, `\$`},
	{tokens.TypeOp, `::`},
	{tokens.MemberOp, `\.`},
}
