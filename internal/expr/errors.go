package expr

import (
	"errors"
	"fmt"
)

// Pre-defined errors for evaluation failures. Callers distinguish these with
// errors.Is and map them onto the public error taxonomy.
var (
	// ErrDivisionByZero is returned by '/' and '%' when the right operand is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when a result exceeds the representable float64 range.
	ErrOverflow = errors.New("numeric overflow")
)

// SyntaxError describes input that does not conform to the expression
// grammar, with the byte position of the offending token where known.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
	}
	return e.Msg
}

func newSyntaxError(pos int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
