package expr

// Node represents a node in the expression tree. The node set is closed:
// only literals, binary operations, and unary operations exist, so a parsed
// tree cannot carry identifiers, calls, or any other executable construct.
type Node interface {
	exprNode()
}

// BinaryOp enumerates the binary operators the grammar admits.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
)

// String returns the operator's source form.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	default:
		return "?"
	}
}

// UnaryOp enumerates the unary operators.
type UnaryOp int

const (
	OpPlus UnaryOp = iota
	OpMinus
)

// String returns the operator's source form.
func (op UnaryOp) String() string {
	if op == OpMinus {
		return "-"
	}
	return "+"
}

// Literal represents a numeric literal (e.g., 42, 3.5)
type Literal struct {
	Value Value
}

func (e *Literal) exprNode() {}

// BinaryExpr represents a binary operation (e.g., X + Y)
type BinaryExpr struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

func (e *BinaryExpr) exprNode() {}

// UnaryExpr represents a unary operation (e.g., -X)
type UnaryExpr struct {
	Op      UnaryOp
	Operand Node
}

func (e *UnaryExpr) exprNode() {}
