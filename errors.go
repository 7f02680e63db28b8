package calc

import (
	"errors"
	"fmt"
)

// Sentinel errors for the calculator error taxonomy.
// These can be used with errors.Is() for error handling.
var (
	// ErrSyntax indicates the input does not conform to the expression
	// grammar: unbalanced parentheses, malformed numbers, trailing or
	// unexpected tokens, or an empty expression.
	ErrSyntax = errors.New("calc: syntax error")

	// ErrValidation indicates the input contains a construct the safety
	// filter rejects before parsing, such as an alphabetic character.
	ErrValidation = errors.New("calc: validation error")

	// ErrDivisionByZero indicates a '/' or '%' with a zero right operand.
	ErrDivisionByZero = errors.New("calc: division by zero")

	// ErrOverflow indicates a numeric result outside the representable range.
	ErrOverflow = errors.New("calc: numeric overflow")
)

// ErrorCode classifies calculator errors. The codes provide semantic
// information about the failure without requiring message inspection.
type ErrorCode string

const (
	// ErrorCodeSyntax marks grammar-level failures.
	ErrorCodeSyntax ErrorCode = "SyntaxError"

	// ErrorCodeValidation marks inputs rejected by the safety filter.
	ErrorCodeValidation ErrorCode = "ValidationError"

	// ErrorCodeDivisionByZero marks division or modulo by zero.
	ErrorCodeDivisionByZero ErrorCode = "DivisionByZero"

	// ErrorCodeOverflow marks results outside the representable range.
	ErrorCodeOverflow ErrorCode = "Overflow"

	// ErrorCodeOther marks unanticipated failures.
	ErrorCodeOther ErrorCode = "Other"
)

// Error is the typed failure returned by Evaluate. It carries the taxonomy
// code, a human-readable message, and, for syntax errors, the byte position
// of the offending token when known (-1 otherwise).
type Error struct {
	Code    ErrorCode
	Message string
	Pos     int

	sentinel error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the matching sentinel error, enabling errors.Is checks
// against ErrSyntax, ErrValidation, ErrDivisionByZero, and ErrOverflow.
func (e *Error) Unwrap() error {
	return e.sentinel
}

func newError(code ErrorCode, pos int, message string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Pos:      pos,
		sentinel: sentinelFor(code),
	}
}

func sentinelFor(code ErrorCode) error {
	switch code {
	case ErrorCodeSyntax:
		return ErrSyntax
	case ErrorCodeValidation:
		return ErrValidation
	case ErrorCodeDivisionByZero:
		return ErrDivisionByZero
	case ErrorCodeOverflow:
		return ErrOverflow
	default:
		return nil
	}
}

// CodeOf returns the taxonomy code of err, or ErrorCodeOther for errors
// that did not originate from this package.
func CodeOf(err error) ErrorCode {
	var calcErr *Error
	if errors.As(err, &calcErr) {
		return calcErr.Code
	}
	return ErrorCodeOther
}

func validationError(format string, args ...interface{}) *Error {
	return newError(ErrorCodeValidation, -1, fmt.Sprintf(format, args...))
}
