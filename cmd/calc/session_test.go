package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calc "github.com/nlstn/go-calc"
	"github.com/nlstn/go-calc/internal/history"
)

func runScript(t *testing.T, script string) string {
	t.Helper()

	store, err := history.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	var out strings.Builder
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelError}))

	s := newSession(strings.NewReader(script), &out, calc.New(), store, nil, logger)
	s.run()
	return out.String()
}

// blockingReader blocks until unblocked, then reports end of input. It
// stands in for a terminal with no pending keystrokes.
type blockingReader struct {
	unblock chan struct{}
}

func (r *blockingReader) Read(p []byte) (int, error) {
	<-r.unblock
	return 0, io.EOF
}

func TestSessionEvaluatesAndQuits(t *testing.T) {
	out := runScript(t, "2 + 3 * 4\ny\nquit\n")

	assert.Contains(t, out, "Answer is: 14")
	assert.Contains(t, out, "Do you want another calculation? (y/n): ")
}

func TestSessionStopsOnNo(t *testing.T) {
	out := runScript(t, "4 / 2\nn\n1 + 1\n")

	assert.Contains(t, out, "Answer is: 2.0")
	// "n" ends the session: the following expression is never evaluated.
	assert.NotContains(t, out, "Answer is: 2\n")
}

func TestSessionRejectsLetters(t *testing.T) {
	out := runScript(t, "2 + a\nquit\n")

	assert.Contains(t, out, "Only numbers and operators are allowed")
	assert.NotContains(t, out, "Answer is:")
}

func TestSessionErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Syntax error", input: "(2 + 3", want: "Invalid expression: syntax error"},
		{name: "Division by zero", input: "5 / 0", want: "Math error: division by zero"},
		{name: "Modulo by zero", input: "5 % 0", want: "Math error: division by zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runScript(t, tt.input+"\nn\n")
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestSessionRepeatsConfirmationQuestion(t *testing.T) {
	out := runScript(t, "1 + 1\nmaybe\ny\nquit\n")

	assert.Contains(t, out, "Please answer 'y' or 'n'.")
}

func TestSessionEndsCleanlyOnEOF(t *testing.T) {
	out := runScript(t, "1 + 1\n")

	// EOF during the confirmation dialog is not an error.
	assert.Contains(t, out, "Answer is: 2")
}

func TestSessionEndsCleanlyOnInterrupt(t *testing.T) {
	reader := &blockingReader{unblock: make(chan struct{})}
	defer close(reader.unblock)

	interrupt := make(chan os.Signal, 1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var out strings.Builder
	s := newSession(reader, &out, calc.New(), nil, interrupt, logger)

	done := make(chan int, 1)
	go func() { done <- s.run() }()

	interrupt <- os.Interrupt

	select {
	case code := <-done:
		assert.Equal(t, 0, code)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop on interrupt")
	}

	// The session ends its output with a newline, same as EOF.
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestBlankLineOpensREPL(t *testing.T) {
	out := runScript(t, "\n3 ** 2\ny\nexit\n")

	assert.Contains(t, out, "Calculator REPL. Type 'quit' or 'exit' to leave.")
	assert.Contains(t, out, "Answer is: 9")
}

func TestREPLSkipsBlankLines(t *testing.T) {
	out := runScript(t, "\n\n\n-7 % 3\nn\n")

	assert.Contains(t, out, "Answer is: 2")
}

func TestHistoryCommand(t *testing.T) {
	out := runScript(t, "2 + 3\ny\nhistory\nquit\n")

	assert.Contains(t, out, "2 + 3 = 5")
}

func TestHistoryEmpty(t *testing.T) {
	out := runScript(t, "history\nquit\n")

	assert.Contains(t, out, "No calculations yet")
}

func TestErrorMessageMapping(t *testing.T) {
	_, err := calc.Evaluate("1e3")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(errorMessage(err), "Invalid expression: "))
	assert.NotEqual(t, "Invalid expression: syntax error", errorMessage(err))
}
