package expr

import "fmt"

// Eval computes the numeric value of an expression tree. Evaluation is a
// pure function of the tree: nodes are never mutated and no state is carried
// between calls. Operands evaluate left to right.
func Eval(node Node) (Value, error) {
	switch n := node.(type) {
	case *Literal:
		return n.Value, nil

	case *UnaryExpr:
		val, err := Eval(n.Operand)
		if err != nil {
			return Value{}, err
		}
		if n.Op == OpMinus {
			return negValue(val), nil
		}
		return val, nil

	case *BinaryExpr:
		left, err := Eval(n.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := Eval(n.Right)
		if err != nil {
			return Value{}, err
		}
		return applyBinary(n.Op, left, right)
	}

	// Unreachable with trees built by the parser; the node set is closed.
	return Value{}, fmt.Errorf("unsupported expression node %T", node)
}

func applyBinary(op BinaryOp, left, right Value) (Value, error) {
	switch op {
	case OpAdd:
		return addValues(left, right)
	case OpSub:
		return subValues(left, right)
	case OpMul:
		return mulValues(left, right)
	case OpDiv:
		return divValues(left, right)
	case OpMod:
		return modValues(left, right)
	case OpPow:
		return powValues(left, right)
	default:
		return Value{}, fmt.Errorf("unsupported binary operator %v", op)
	}
}

// EvalString parses and evaluates a source string, releasing the tree back
// to the node pools before returning.
func EvalString(input string) (Value, error) {
	node, err := ParseString(input)
	if err != nil {
		return Value{}, err
	}
	defer ReleaseNode(node)

	return Eval(node)
}
