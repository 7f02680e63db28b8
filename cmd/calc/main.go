// Command calc evaluates restricted arithmetic expressions.
//
// With arguments, it joins them into one expression, prints the result, and
// exits non-zero on failure:
//
//	calc "2 + 3 * (4 - 1)"
//
// Without arguments it enters an interactive prompt.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	calc "github.com/nlstn/go-calc"
	"github.com/nlstn/go-calc/internal/history"
	"github.com/nlstn/go-calc/internal/version"
)

func main() {
	historyDSN := flag.String("history", "", "history backend DSN: a SQLite path or a PostgreSQL DSN (default: in-memory)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	evaluator := calc.New(calc.WithCache(256))

	// One-shot mode: join all arguments into a single expression.
	if args := flag.Args(); len(args) > 0 {
		expression := strings.Join(args, " ")
		result, err := evaluator.Evaluate(context.Background(), expression)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println("Answer is:", result)
		return
	}

	store, err := history.Open(*historyDSN)
	if err != nil {
		logger.Warn("history disabled", "error", err)
		store = nil
	}

	// Ctrl-C at a prompt ends the session like end of input.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	s := newSession(os.Stdin, os.Stdout, evaluator, store, interrupt, logger)
	code := s.run()
	signal.Stop(interrupt)
	if store != nil {
		_ = store.Close()
	}
	os.Exit(code)
}
