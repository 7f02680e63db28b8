package calc

import "github.com/nlstn/go-calc/internal/expr"

// Value is the numeric result of evaluating an expression: either an int64
// or a float64, following the promotion rule. Division always produces a
// float; the other operators stay integral when both operands are integers.
type Value struct {
	v expr.Value
}

// IsInt reports whether the value is an integer.
func (v Value) IsInt() bool {
	return !v.v.IsFloat
}

// Int64 returns the integer value. Only meaningful when IsInt is true.
func (v Value) Int64() int64 {
	return v.v.Int
}

// Float64 returns the value as a float64 regardless of kind.
func (v Value) Float64() float64 {
	return v.v.AsFloat()
}

// String formats the value the way the calculator prints it: integers
// without a decimal point, floats always with one ("2.0", not "2").
func (v Value) String() string {
	return v.v.String()
}

func wrapValue(v expr.Value) Value {
	return Value{v: v}
}
