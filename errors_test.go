package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorUnwrapMatchesSentinel(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		sentinel error
	}{
		{ErrorCodeSyntax, ErrSyntax},
		{ErrorCodeValidation, ErrValidation},
		{ErrorCodeDivisionByZero, ErrDivisionByZero},
		{ErrorCodeOverflow, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := newError(tt.code, -1, "message")
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestErrorOtherHasNoSentinel(t *testing.T) {
	err := newError(ErrorCodeOther, -1, "something unexpected")
	assert.NotErrorIs(t, err, ErrSyntax)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrDivisionByZero)
	assert.NotErrorIs(t, err, ErrOverflow)
}

func TestErrorMessage(t *testing.T) {
	err := newError(ErrorCodeSyntax, 5, "unexpected ')'")
	assert.Equal(t, "unexpected ')'", err.Error())
	assert.Equal(t, 5, err.Pos)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrorCodeSyntax, CodeOf(newError(ErrorCodeSyntax, -1, "m")))
	assert.Equal(t, ErrorCodeOther, CodeOf(errors.New("unrelated")))
}
