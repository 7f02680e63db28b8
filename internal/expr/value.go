package expr

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Value is the numeric result of evaluating an expression. It is either an
// int64 or a float64; IsFloat selects which field is significant.
type Value struct {
	Int     int64
	Float   float64
	IsFloat bool
}

// IntValue returns an integer Value.
func IntValue(i int64) Value {
	return Value{Int: i}
}

// FloatValue returns a floating-point Value.
func FloatValue(f float64) Value {
	return Value{Float: f, IsFloat: true}
}

// AsFloat returns the value as a float64 regardless of kind.
func (v Value) AsFloat() float64 {
	if v.IsFloat {
		return v.Float
	}
	return float64(v.Int)
}

// IsZero reports whether the value is exactly zero in either representation.
func (v Value) IsZero() bool {
	if v.IsFloat {
		return v.Float == 0
	}
	return v.Int == 0
}

// String formats the value the way the interactive calculator prints it:
// integers without a decimal point, floats always with one (or in exponent
// notation), so that 4/2 renders as "2.0" while 4*2 renders as "8".
func (v Value) String() string {
	if !v.IsFloat {
		return strconv.FormatInt(v.Int, 10)
	}
	s := strconv.FormatFloat(v.Float, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// ParseNumber converts a NUMBER token into a Value. Decimal parsing is used
// to validate the literal and convert it exactly. Plain digit runs become
// int64; literals written with a decimal point or exponent are floats, as
// are integer literals too large for int64. A literal too large even for
// float64 is an overflow.
func ParseNumber(literal string, pos int) (Value, error) {
	dec, err := decimal.NewFromString(literal)
	if err != nil {
		return Value{}, newSyntaxError(pos, "malformed number %q", literal)
	}
	if !strings.ContainsAny(literal, ".eE") {
		if i, ok := int64FromDecimal(dec); ok {
			return IntValue(i), nil
		}
	}
	f, _ := dec.Float64()
	if math.IsInf(f, 0) {
		return Value{}, ErrOverflow
	}
	return FloatValue(f), nil
}

func int64FromDecimal(dec decimal.Decimal) (int64, bool) {
	minInt64 := decimal.NewFromInt(math.MinInt64)
	maxInt64 := decimal.NewFromInt(math.MaxInt64)
	if dec.Cmp(minInt64) < 0 || dec.Cmp(maxInt64) > 0 {
		return 0, false
	}
	return dec.IntPart(), true
}

// bothInt reports whether the integer-preserving promotion rule applies.
func bothInt(l, r Value) bool {
	return !l.IsFloat && !r.IsFloat
}

// addValues implements '+' with the integer-preserving promotion rule.
// Integer overflow degrades to float64 rather than wrapping.
func addValues(l, r Value) (Value, error) {
	if bothInt(l, r) {
		sum := l.Int + r.Int
		if (sum > l.Int) == (r.Int > 0) {
			return IntValue(sum), nil
		}
	}
	return FloatValue(l.AsFloat() + r.AsFloat()), nil
}

// subValues implements '-'.
func subValues(l, r Value) (Value, error) {
	if bothInt(l, r) {
		diff := l.Int - r.Int
		if (diff < l.Int) == (r.Int > 0) {
			return IntValue(diff), nil
		}
	}
	return FloatValue(l.AsFloat() - r.AsFloat()), nil
}

// mulValues implements '*'.
func mulValues(l, r Value) (Value, error) {
	if bothInt(l, r) {
		if prod, ok := checkedMul(l.Int, r.Int); ok {
			return IntValue(prod), nil
		}
	}
	return FloatValue(l.AsFloat() * r.AsFloat()), nil
}

// divValues implements '/'. Division always yields a float, and a zero right
// operand is an error regardless of operand kinds.
func divValues(l, r Value) (Value, error) {
	if r.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	return FloatValue(l.AsFloat() / r.AsFloat()), nil
}

// modValues implements '%' with the floored convention: the result takes the
// sign of the divisor, so -7 % 3 == 2 and 7 % -3 == -2.
func modValues(l, r Value) (Value, error) {
	if r.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	if bothInt(l, r) {
		rem := l.Int % r.Int
		if rem != 0 && (rem < 0) != (r.Int < 0) {
			rem += r.Int
		}
		return IntValue(rem), nil
	}
	lf, rf := l.AsFloat(), r.AsFloat()
	rem := math.Mod(lf, rf)
	if rem != 0 && (rem < 0) != (rf < 0) {
		rem += rf
	}
	return FloatValue(rem), nil
}

// powValues implements '**'. Non-negative integer exponents on integer bases
// stay integral when the result fits in int64; everything else, including
// negative and fractional exponents, is computed in float64. A non-finite
// float result is reported as overflow.
func powValues(l, r Value) (Value, error) {
	// A zero base cannot be raised to a negative power.
	if l.IsZero() && r.AsFloat() < 0 {
		return Value{}, ErrDivisionByZero
	}
	if bothInt(l, r) && r.Int >= 0 {
		if res, ok := intPow(l.Int, r.Int); ok {
			return IntValue(res), nil
		}
	}
	f := math.Pow(l.AsFloat(), r.AsFloat())
	if math.IsInf(f, 0) {
		return Value{}, ErrOverflow
	}
	return FloatValue(f), nil
}

// intPow computes base**exp by squaring, reporting false on int64 overflow
// so the caller can retry in the float domain.
func intPow(base, exp int64) (int64, bool) {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r, ok := checkedMul(result, base)
			if !ok {
				return 0, false
			}
			result = r
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		b, ok := checkedMul(base, base)
		if !ok {
			return 0, false
		}
		base = b
	}
	return result, true
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MinInt64 / -1 is itself an overflow, so rule these out before the
	// division-based check.
	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 {
			return b, true
		}
		if b == 1 {
			return a, true
		}
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}

// negValue implements unary '-'.
func negValue(v Value) Value {
	if v.IsFloat {
		return FloatValue(-v.Float)
	}
	if v.Int == math.MinInt64 {
		return FloatValue(-float64(v.Int))
	}
	return IntValue(-v.Int)
}
