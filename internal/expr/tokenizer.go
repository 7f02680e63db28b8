package expr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the type of a token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenPower
	TokenLParen
	TokenRParen
)

// String returns a readable name for error messages.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenNumber:
		return "number"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenStar:
		return "'*'"
	case TokenSlash:
		return "'/'"
	case TokenPercent:
		return "'%'"
	case TokenPower:
		return "'**'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	default:
		return "unknown token"
	}
}

// Token represents a single token in an arithmetic expression
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// Tokenizer tokenizes arithmetic expressions. Positions are byte offsets;
// characters are decoded as runes so multi-byte input is reported intact.
type Tokenizer struct {
	input string
	pos   int
	width int
	ch    rune
}

// NewTokenizer creates a new tokenizer
func NewTokenizer(input string) *Tokenizer {
	t := &Tokenizer{input: input}
	if len(input) > 0 {
		t.ch, t.width = utf8.DecodeRuneInString(input)
	}
	return t
}

// advance moves to the next character
func (t *Tokenizer) advance() {
	t.pos += t.width
	if t.pos >= len(t.input) {
		t.ch = 0 // EOF
		t.width = 0
		return
	}
	t.ch, t.width = utf8.DecodeRuneInString(t.input[t.pos:])
}

// peek looks ahead without advancing
func (t *Tokenizer) peek() rune {
	next := t.pos + t.width
	if next >= len(t.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[next:])
	return r
}

// skipWhitespace skips whitespace characters
func (t *Tokenizer) skipWhitespace() {
	for t.ch == ' ' || t.ch == '\t' || t.ch == '\n' || t.ch == '\r' {
		t.advance()
	}
}

// readNumber reads a number. Sign is not part of the token; unary operators
// are handled by the parser.
func (t *Tokenizer) readNumber() string {
	var result strings.Builder

	// Integer part
	for unicode.IsDigit(t.ch) {
		result.WriteRune(t.ch)
		t.advance()
	}

	// Decimal part
	if t.ch == '.' {
		result.WriteRune(t.ch)
		t.advance()
		for unicode.IsDigit(t.ch) {
			result.WriteRune(t.ch)
			t.advance()
		}
	}

	// Exponent part
	if t.ch == 'e' || t.ch == 'E' {
		result.WriteRune(t.ch)
		t.advance()
		if t.ch == '+' || t.ch == '-' {
			result.WriteRune(t.ch)
			t.advance()
		}
		for unicode.IsDigit(t.ch) {
			result.WriteRune(t.ch)
			t.advance()
		}
	}

	return result.String()
}

// NextToken returns the next token
func (t *Tokenizer) NextToken() (*Token, error) {
	t.skipWhitespace()

	if t.ch == 0 {
		return &Token{Type: TokenEOF, Pos: t.pos}, nil
	}

	pos := t.pos

	if unicode.IsDigit(t.ch) || (t.ch == '.' && unicode.IsDigit(t.peek())) {
		value := t.readNumber()
		return &Token{Type: TokenNumber, Value: value, Pos: pos}, nil
	}

	if token := t.tokenizeOperator(pos); token != nil {
		return token, nil
	}

	if unicode.IsLetter(t.ch) {
		return nil, newSyntaxError(pos, "unexpected letter '%c'", t.ch)
	}

	return nil, newSyntaxError(pos, "unexpected character '%c'", t.ch)
}

// tokenizeOperator tokenizes operators and parentheses
func (t *Tokenizer) tokenizeOperator(pos int) *Token {
	switch t.ch {
	case '(':
		t.advance()
		return &Token{Type: TokenLParen, Value: "(", Pos: pos}
	case ')':
		t.advance()
		return &Token{Type: TokenRParen, Value: ")", Pos: pos}
	case '+':
		t.advance()
		return &Token{Type: TokenPlus, Value: "+", Pos: pos}
	case '-':
		t.advance()
		return &Token{Type: TokenMinus, Value: "-", Pos: pos}
	case '*':
		if t.peek() == '*' {
			t.advance()
			t.advance()
			return &Token{Type: TokenPower, Value: "**", Pos: pos}
		}
		t.advance()
		return &Token{Type: TokenStar, Value: "*", Pos: pos}
	case '/':
		t.advance()
		return &Token{Type: TokenSlash, Value: "/", Pos: pos}
	case '%':
		t.advance()
		return &Token{Type: TokenPercent, Value: "%", Pos: pos}
	}
	return nil
}

// TokenizeAll returns all tokens from the input
func (t *Tokenizer) TokenizeAll() ([]*Token, error) {
	var tokens []*Token

	for {
		token, err := t.NextToken()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)

		if token.Type == TokenEOF {
			break
		}
	}

	return tokens, nil
}
