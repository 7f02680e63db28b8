package expr

import (
	"testing"
)

func TestTokenizer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:  "Simple addition",
			input: "2 + 3",
			expected: []TokenType{
				TokenNumber,
				TokenPlus,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			name:  "With parentheses",
			input: "(2 + 3) * 4",
			expected: []TokenType{
				TokenLParen,
				TokenNumber,
				TokenPlus,
				TokenNumber,
				TokenRParen,
				TokenStar,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			name:  "Power operator",
			input: "2 ** 3",
			expected: []TokenType{
				TokenNumber,
				TokenPower,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			name:  "Power without spaces",
			input: "2**3",
			expected: []TokenType{
				TokenNumber,
				TokenPower,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			name:  "Star then power",
			input: "2 * 3 ** 4",
			expected: []TokenType{
				TokenNumber,
				TokenStar,
				TokenNumber,
				TokenPower,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			name:  "Modulo and division",
			input: "7 % 3 / 2",
			expected: []TokenType{
				TokenNumber,
				TokenPercent,
				TokenNumber,
				TokenSlash,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			name:  "Unary minus",
			input: "-5",
			expected: []TokenType{
				TokenMinus,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			name:  "Decimal number",
			input: "3.25 + .5",
			expected: []TokenType{
				TokenNumber,
				TokenPlus,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			name:  "Scientific notation",
			input: "1e3 + 2E-2",
			expected: []TokenType{
				TokenNumber,
				TokenPlus,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: []TokenType{TokenEOF},
		},
		{
			name:     "Whitespace only",
			input:    " \t ",
			expected: []TokenType{TokenEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenizer := NewTokenizer(tt.input)
			tokens, err := tokenizer.TokenizeAll()
			if err != nil {
				t.Fatalf("TokenizeAll() error = %v", err)
			}

			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens, expected %d", len(tokens), len(tt.expected))
			}

			for i, token := range tokens {
				if token.Type != tt.expected[i] {
					t.Errorf("token %d: got %v, expected %v", i, token.Type, tt.expected[i])
				}
			}
		})
	}
}

func TestTokenizerValues(t *testing.T) {
	tokenizer := NewTokenizer("12.5 ** -3")
	tokens, err := tokenizer.TokenizeAll()
	if err != nil {
		t.Fatalf("TokenizeAll() error = %v", err)
	}

	if tokens[0].Value != "12.5" {
		t.Errorf("got number value %q, expected %q", tokens[0].Value, "12.5")
	}
	if tokens[1].Value != "**" {
		t.Errorf("got operator value %q, expected %q", tokens[1].Value, "**")
	}
	if tokens[2].Type != TokenMinus {
		t.Errorf("got token type %v, expected %v", tokens[2].Type, TokenMinus)
	}
}

func TestTokenizerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Letter", input: "2 + a"},
		{name: "Identifier", input: "import os"},
		{name: "Semicolon", input: "2; 3"},
		{name: "Comparison", input: "2 < 3"},
		{name: "String literal", input: "'abc'"},
		{name: "Underscore", input: "__import__"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenizer := NewTokenizer(tt.input)
			if _, err := tokenizer.TokenizeAll(); err == nil {
				t.Errorf("TokenizeAll(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestTokenizerMultibyteRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Multiplication sign", input: "2 × 3", want: "unexpected character '×' at position 2"},
		{name: "Greek letter", input: "2 + π", want: "unexpected letter 'π' at position 4"},
		{name: "Minus sign lookalike", input: "2 − 3", want: "unexpected character '−' at position 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenizer := NewTokenizer(tt.input)
			_, err := tokenizer.TokenizeAll()
			if err == nil {
				t.Fatalf("TokenizeAll(%q) expected error, got nil", tt.input)
			}
			if err.Error() != tt.want {
				t.Errorf("TokenizeAll(%q) error = %q, expected %q", tt.input, err.Error(), tt.want)
			}
		})
	}
}

func TestTokenizerPositions(t *testing.T) {
	tokenizer := NewTokenizer("10 + 20")
	tokens, err := tokenizer.TokenizeAll()
	if err != nil {
		t.Fatalf("TokenizeAll() error = %v", err)
	}

	wantPos := []int{0, 3, 5}
	for i, pos := range wantPos {
		if tokens[i].Pos != pos {
			t.Errorf("token %d: got position %d, expected %d", i, tokens[i].Pos, pos)
		}
	}
}
