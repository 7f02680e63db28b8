package expr

// DefaultMaxDepth bounds expression nesting so adversarial input cannot
// exhaust the goroutine stack through parser or evaluator recursion.
const DefaultMaxDepth = 200

// Parser parses token streams into expression trees
type Parser struct {
	tokens   []*Token
	current  int
	depth    int
	maxDepth int
}

// NewParser creates a new parser for the given tokens
func NewParser(tokens []*Token) *Parser {
	return &Parser{
		tokens:   tokens,
		current:  0,
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the nesting-depth limit. Values below 1 are ignored.
func (p *Parser) SetMaxDepth(n int) {
	if n >= 1 {
		p.maxDepth = n
	}
}

// currentToken returns the current token
func (p *Parser) currentToken() *Token {
	if p.current >= len(p.tokens) {
		return &Token{Type: TokenEOF}
	}
	return p.tokens[p.current]
}

// advance moves to the next token
func (p *Parser) advance() *Token {
	token := p.currentToken()
	if p.current < len(p.tokens)-1 {
		p.current++
	}
	return token
}

// expect checks if the current token matches the expected type and advances
func (p *Parser) expect(tokenType TokenType) error {
	token := p.currentToken()
	if token.Type != tokenType {
		return newSyntaxError(token.Pos, "expected %v, got %v", tokenType, token.Type)
	}
	p.advance()
	return nil
}

// enter tracks recursion depth across the grammar's recursive productions
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return newSyntaxError(p.currentToken().Pos, "expression nested too deeply (limit %d)", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// Parse parses the tokens into an expression tree
func (p *Parser) Parse() (Node, error) {
	if p.currentToken().Type == TokenEOF {
		return nil, newSyntaxError(-1, "empty expression")
	}

	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	// Verify all tokens were consumed (except EOF)
	if tok := p.currentToken(); tok.Type != TokenEOF {
		ReleaseNode(node)
		return nil, newSyntaxError(tok.Pos, "unexpected %v after expression", tok.Type)
	}

	return node, nil
}

// parseExpr handles addition and subtraction (lowest precedence)
func (p *Parser) parseExpr() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.currentToken().Type == TokenPlus || p.currentToken().Type == TokenMinus {
		op := OpAdd
		if p.currentToken().Type == TokenMinus {
			op = OpSub
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			ReleaseNode(left)
			return nil, err
		}
		expr := AcquireBinaryExpr()
		expr.Op = op
		expr.Left = left
		expr.Right = right
		left = expr
	}

	return left, nil
}

// parseTerm handles multiplication, division, and modulo
func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	for {
		var op BinaryOp
		switch p.currentToken().Type {
		case TokenStar:
			op = OpMul
		case TokenSlash:
			op = OpDiv
		case TokenPercent:
			op = OpMod
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parsePower()
		if err != nil {
			ReleaseNode(left)
			return nil, err
		}
		expr := AcquireBinaryExpr()
		expr.Op = op
		expr.Left = left
		expr.Right = right
		left = expr
	}
}

// parsePower handles exponentiation. '**' binds tighter than the other
// binary operators and is right-associative: 2 ** 3 ** 2 == 2 ** (3 ** 2).
func (p *Parser) parsePower() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if p.currentToken().Type == TokenPower {
		p.advance()
		right, err := p.parsePower()
		if err != nil {
			ReleaseNode(left)
			return nil, err
		}
		expr := AcquireBinaryExpr()
		expr.Op = OpPow
		expr.Left = left
		expr.Right = right
		return expr, nil
	}

	return left, nil
}

// parseUnary handles unary plus and minus, which chain ("--5" is 5)
func (p *Parser) parseUnary() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.currentToken().Type {
	case TokenPlus, TokenMinus:
		op := OpPlus
		if p.currentToken().Type == TokenMinus {
			op = OpMinus
		}
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr := AcquireUnaryExpr()
		expr.Op = op
		expr.Operand = operand
		return expr, nil
	}

	return p.parsePrimary()
}

// parsePrimary handles numeric literals and grouped expressions
func (p *Parser) parsePrimary() (Node, error) {
	token := p.currentToken()

	switch token.Type {
	case TokenNumber:
		p.advance()
		value, err := ParseNumber(token.Value, token.Pos)
		if err != nil {
			return nil, err
		}
		lit := AcquireLiteral()
		lit.Value = value
		return lit, nil

	case TokenLParen:
		p.advance() // consume '('
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen); err != nil {
			ReleaseNode(expr)
			return nil, err
		}
		return expr, nil
	}

	return nil, newSyntaxError(token.Pos, "unexpected %v", token.Type)
}

// ParseString tokenizes and parses a source string in one step.
func ParseString(input string) (Node, error) {
	return ParseStringDepth(input, DefaultMaxDepth)
}

// ParseStringDepth is ParseString with an explicit nesting-depth limit.
func ParseStringDepth(input string, maxDepth int) (Node, error) {
	tokenizer := NewTokenizer(input)
	tokens, err := tokenizer.TokenizeAll()
	if err != nil {
		return nil, err
	}

	parser := NewParser(tokens)
	parser.SetMaxDepth(maxDepth)
	return parser.Parse()
}
