package lexers

import (
	"errors"
	"testing"

	"github.com/kisslang/kiss/tokens"
)

func TestLex(t *testing.T) {
	type symbolInfo struct {
		Kind   tokens.SymbolKind
		Lexeme string
	}

	tests := []struct {
		input   string
		symbols []symbolInfo
	}{
		{
			input: "loop func struct",
			symbols: []symbolInfo{
				{tokens.Keyword, "loop"},
				{tokens.Keyword, "func"},
				{tokens.Keyword, "struct"},
			},
		},
		{
			input: "true false",
			symbols: []symbolInfo{
				{tokens.Boolean, "true"},
				{tokens.Boolean, "false"},
			},
		},
		{
			input: "0x1F:2 0b101:1 42:8",
			symbols: []symbolInfo{
				{tokens.Integer, "0x1F:2"},
				{tokens.Integer, "0b101:1"},
				{tokens.Integer, "42:8"},
			},
		},
		{
			input: "1.5:4 .25:8",
			symbols: []symbolInfo{
				{tokens.Float, "1.5:4"},
				{tokens.Float, ".25:8"},
			},
		},
		{
			input: `0ca 0c\n 'hi' 'it\'s'`,
			symbols: []symbolInfo{
				{tokens.Character, "0ca"},
				{tokens.Character, `0c\n`},
				{tokens.StringLit, "'hi'"},
				{tokens.StringLit, `'it\'s'`},
			},
		},
		{
			input: "#:4 .:8 @ ?",
			symbols: []symbolInfo{
				{tokens.TypeChar, "#:4"},
				{tokens.TypeChar, ".:8"},
				{tokens.TypeChar, "@"},
				{tokens.TypeChar, "?"},
			},
		},
		{
			input: "foo _bar9 ()[]{}",
			symbols: []symbolInfo{
				{tokens.Identifier, "foo"},
				{tokens.Identifier, "_bar9"},
				{tokens.Parenth, "("},
				{tokens.Parenth, ")"},
				{tokens.Bracket, "["},
				{tokens.Bracket, "]"},
				{tokens.Brace, "{"},
				{tokens.Brace, "}"},
			},
		},
		{
			input: "-> << >> ++ -- == != >= <= && || = ! & ^ ~ * / < >",
			symbols: []symbolInfo{
				{tokens.ReturnOp, "->"},
				{tokens.DoubleArrow, "<<"},
				{tokens.DoubleArrow, ">>"},
				{tokens.Operator, "++"},
				{tokens.Operator, "--"},
				{tokens.Operator, "=="},
				{tokens.Operator, "!="},
				{tokens.Operator, ">="},
				{tokens.Operator, "<="},
				{tokens.Operator, "&&"},
				{tokens.Operator, "||"},
				{tokens.Operator, "="},
				{tokens.Operator, "!"},
				{tokens.Operator, "&"},
				{tokens.Operator, "^"},
				{tokens.Operator, "~"},
				{tokens.Operator, "*"},
				{tokens.Operator, "/"},
				{tokens.Operator, "<"},
				{tokens.Operator, ">"},
			},
		},
		{
			input: "$x :: a.b",
			symbols: []symbolInfo{
				{tokens.Dollar, "$"},
				{tokens.Identifier, "x"},
				{tokens.TypeOp, "::"},
				{tokens.Identifier, "a"},
				{tokens.MemberOp, "."},
				{tokens.Identifier, "b"},
			},
		},
		{
			// table order wins over longest match
			input: "loopy trueish",
			symbols: []symbolInfo{
				{tokens.Keyword, "loop"},
				{tokens.Identifier, "y"},
				{tokens.Boolean, "true"},
				{tokens.Identifier, "ish"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			symbols, err := Lex("test", test.input)
			if err != nil {
				t.Fatal(err)
			}
			if len(symbols) != len(test.symbols) {
				t.Fatalf("expected %d symbols, got %d: %v", len(test.symbols), len(symbols), symbols)
			}
			for i, expected := range test.symbols {
				if symbols[i].Kind != expected.Kind {
					t.Errorf("step %d: expected kind %v, got %v (lexeme: %q)", i, expected.Kind, symbols[i].Kind, symbols[i].Lexeme)
				}
				if symbols[i].Lexeme != expected.Lexeme {
					t.Errorf("step %d: expected lexeme %q, got %q", i, expected.Lexeme, symbols[i].Lexeme)
				}
			}
		})
	}
}

func TestLexWhitespaceOnly(t *testing.T) {
	for _, input := range []string{"", " ", "\t\r\n  \n", "\n\n\n"} {
		symbols, err := Lex("test", input)
		if err != nil {
			t.Fatal(err)
		}
		if len(symbols) != 0 {
			t.Fatalf("got %v", symbols)
		}
	}
}

func TestLexPositions(t *testing.T) {
	symbols, err := Lex("test", "a\nb")
	if err != nil {
		t.Fatal(err)
	}
	if len(symbols) != 2 {
		t.Fatalf("got %v", symbols)
	}
	if symbols[0].Pos != (tokens.Pos{Line: 1, Column: 1}) {
		t.Fatalf("got %v", symbols[0].Pos)
	}
	if symbols[1].Pos != (tokens.Pos{Line: 2, Column: 1}) {
		t.Fatalf("got %v", symbols[1].Pos)
	}

	symbols, err = Lex("test", "  foo\t\tbar\r\n   baz")
	if err != nil {
		t.Fatal(err)
	}
	expected := []tokens.Pos{
		{Line: 1, Column: 3},
		{Line: 1, Column: 8},
		{Line: 2, Column: 4},
	}
	for i, pos := range expected {
		if symbols[i].Pos != pos {
			t.Fatalf("symbol %d: got %v", i, symbols[i].Pos)
		}
	}
}

func TestLexTrue(t *testing.T) {
	symbols, err := Lex("test", "true")
	if err != nil {
		t.Fatal(err)
	}
	if len(symbols) != 1 {
		t.Fatalf("got %v", symbols)
	}
	expected := tokens.Symbol{
		Kind:   tokens.Boolean,
		Lexeme: "true",
		Pos:    tokens.Pos{Line: 1, Column: 1},
	}
	if *symbols[0] != expected {
		t.Fatalf("got %v", symbols[0])
	}
}

func TestLexUnknownToken(t *testing.T) {
	tests := []struct {
		input string
		pos   tokens.Pos
	}{
		{"§", tokens.Pos{Line: 1, Column: 1}},
		{"foo\n  bar `", tokens.Pos{Line: 2, Column: 7}},
		{"x 1:3", tokens.Pos{Line: 1, Column: 3}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := Lex("test", test.input)
			var unknown *UnknownTokenError
			if !errors.As(err, &unknown) {
				t.Fatalf("got %v", err)
			}
			if unknown.Pos != test.pos {
				t.Fatalf("got %v", unknown.Pos)
			}
		})
	}

	_, err := Lex("test", "§")
	if err.Error() != "unknown token at line 1, col 1" {
		t.Fatalf("got %v", err)
	}
}

func TestLexWidthSuffix(t *testing.T) {
	for _, width := range []string{"1", "2", "4", "8"} {
		for _, digits := range []string{"7", "0x7f", "0b11"} {
			lexeme := digits + ":" + width
			symbols, err := Lex("test", lexeme)
			if err != nil {
				t.Fatal(err)
			}
			if len(symbols) != 1 || symbols[0].Kind != tokens.Integer || symbols[0].Lexeme != lexeme {
				t.Fatalf("got %v", symbols)
			}
		}
	}
	for _, width := range []string{"4", "8"} {
		for _, digits := range []string{"3.25", ".5"} {
			lexeme := digits + ":" + width
			symbols, err := Lex("test", lexeme)
			if err != nil {
				t.Fatal(err)
			}
			if len(symbols) != 1 || symbols[0].Kind != tokens.Float || symbols[0].Lexeme != lexeme {
				t.Fatalf("got %v", symbols)
			}
		}
	}
}

func TestLexWithRules(t *testing.T) {
	rules := []Rule{
		{tokens.Identifier, `[a-z]+`},
		{tokens.Keyword, `loop`},
	}
	symbols, err := LexWith(rules, "test", "loop")
	if err != nil {
		t.Fatal(err)
	}
	if len(symbols) != 1 || symbols[0].Kind != tokens.Identifier {
		t.Fatalf("got %v", symbols)
	}
}
