package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	calc "github.com/nlstn/go-calc"
	"github.com/nlstn/go-calc/internal/history"
)

// confirmResult is the outcome of the "another calculation?" dialog.
type confirmResult int

const (
	confirmYes confirmResult = iota
	confirmNo
	confirmEOF
)

// session drives the interactive prompt. Reading and writing go through
// injected streams so the loop is testable. Lines arrive on a channel so
// the prompt can also watch for an interrupt signal, which ends the
// session the same way end of input does.
type session struct {
	lines     <-chan string
	interrupt <-chan os.Signal
	out       io.Writer
	evaluator *calc.Evaluator
	store     *history.Store
	sessionID string
	logger    *slog.Logger
}

func newSession(in io.Reader, out io.Writer, evaluator *calc.Evaluator, store *history.Store, interrupt <-chan os.Signal, logger *slog.Logger) *session {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	return &session{
		lines:     lines,
		interrupt: interrupt,
		out:       out,
		evaluator: evaluator,
		store:     store,
		sessionID: history.NewSessionID(),
		logger:    logger,
	}
}

// run is the top-level interactive loop. A blank line opens the inner REPL;
// answering "n" to the confirmation ends the process.
func (s *session) run() int {
	fmt.Fprintln(s.out, "Enter expressions (or press Enter to open REPL). Type 'quit' to exit.")

	for {
		line, ok := s.prompt("> ")
		if !ok {
			fmt.Fprintln(s.out)
			return 0
		}

		if line == "" {
			s.repl()
			return 0
		}
		if isQuit(line) {
			return 0
		}
		if s.handleCommand(line) {
			continue
		}
		if calc.ContainsLetter(line) {
			fmt.Fprintln(s.out, "Only numbers and operators are allowed")
			continue
		}

		s.evaluateLine(line)

		switch s.confirm() {
		case confirmYes:
			continue
		case confirmNo, confirmEOF:
			return 0
		}
	}
}

// repl is the inner loop opened by a blank line at the top-level prompt.
// It behaves like run but returns to the caller instead of ending the
// process.
func (s *session) repl() {
	fmt.Fprintln(s.out, "Calculator REPL. Type 'quit' or 'exit' to leave.")

	for {
		line, ok := s.prompt("> ")
		if !ok {
			fmt.Fprintln(s.out)
			return
		}

		if line == "" {
			continue
		}
		if isQuit(line) {
			return
		}
		if s.handleCommand(line) {
			continue
		}
		if calc.ContainsLetter(line) {
			fmt.Fprintln(s.out, "Only numbers and operators are allowed")
			continue
		}

		s.evaluateLine(line)

		switch s.confirm() {
		case confirmYes:
			continue
		case confirmNo, confirmEOF:
			return
		}
	}
}

// prompt prints the prompt and reads one trimmed line. ok is false at end
// of input or when an interrupt signal arrives while waiting.
func (s *session) prompt(p string) (line string, ok bool) {
	fmt.Fprint(s.out, p)
	select {
	case line, more := <-s.lines:
		if !more {
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-s.interrupt:
		return "", false
	}
}

func isQuit(line string) bool {
	lower := strings.ToLower(line)
	return lower == "quit" || lower == "exit"
}

// handleCommand intercepts session commands that would otherwise hit the
// letter filter. It returns true when the line was consumed.
func (s *session) handleCommand(line string) bool {
	if strings.ToLower(line) != "history" {
		return false
	}
	s.showHistory()
	return true
}

func (s *session) showHistory() {
	if s.store == nil {
		fmt.Fprintln(s.out, "History is not available")
		return
	}

	entries, err := s.store.Recent(s.sessionID, 10)
	if err != nil {
		s.logger.Warn("loading history failed", "error", err)
		fmt.Fprintln(s.out, "History is not available")
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No calculations yet")
		return
	}

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.ErrorKind != "" {
			fmt.Fprintf(s.out, "  %s -> %s\n", e.Expression, e.ErrorKind)
		} else {
			fmt.Fprintf(s.out, "  %s = %s\n", e.Expression, e.Result)
		}
	}
}

// evaluateLine evaluates one expression and prints the categorized outcome.
func (s *session) evaluateLine(line string) {
	result, err := s.evaluator.Evaluate(context.Background(), line)
	if err != nil {
		fmt.Fprintln(s.out, errorMessage(err))
		s.record(line, "", string(calc.CodeOf(err)))
		return
	}

	fmt.Fprintln(s.out, "Answer is:", result)
	s.record(line, result.String(), "")
}

// errorMessage maps taxonomy codes onto the fixed user-facing messages.
func errorMessage(err error) string {
	switch calc.CodeOf(err) {
	case calc.ErrorCodeSyntax:
		return "Invalid expression: syntax error"
	case calc.ErrorCodeValidation:
		return "Invalid expression: " + err.Error()
	case calc.ErrorCodeDivisionByZero:
		return "Math error: division by zero"
	default:
		return "Error: " + err.Error()
	}
}

func (s *session) record(expression, result, errorKind string) {
	if s.store == nil {
		return
	}
	if err := s.store.Record(s.sessionID, expression, result, errorKind); err != nil {
		s.logger.Warn("recording history failed", "error", err)
	}
}

// confirm runs the "another calculation?" dialog until it gets a usable
// answer.
func (s *session) confirm() confirmResult {
	for {
		answer, ok := s.prompt("Do you want another calculation? (y/n): ")
		if !ok {
			fmt.Fprintln(s.out)
			return confirmEOF
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return confirmYes
		case "n", "no":
			return confirmNo
		default:
			fmt.Fprintln(s.out, "Please answer 'y' or 'n'.")
		}
	}
}
