package tokens

// Codes projects a token sequence to its type-code string, one byte per
// top-level token.
func Codes(seq []Token) string {
	buf := make([]byte, len(seq))
	for i, tok := range seq {
		buf[i] = tok.Code()
	}
	return string(buf)
}

// FromSymbols widens a lexed sequence into a token sequence.
func FromSymbols(symbols []*Symbol) []Token {
	ret := make([]Token, len(symbols))
	for i, sym := range symbols {
		ret[i] = sym
	}
	return ret
}
