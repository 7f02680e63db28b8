// Package calc evaluates restricted arithmetic expressions.
//
// An expression is built from numeric literals, the binary operators
// + - * / % and **, unary + and -, and parentheses. Nothing else is
// representable: the parser's node set is closed, so identifiers, calls,
// and every other executable construct are rejected instead of evaluated.
// Each call is pure and carries no state, making an Evaluator safe for
// concurrent use.
package calc

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/nlstn/go-calc/internal/cache"
	"github.com/nlstn/go-calc/internal/expr"
	"github.com/nlstn/go-calc/internal/observability"
)

// Evaluator evaluates expressions with optional result caching and
// OpenTelemetry instrumentation. The zero-cost default is obtained with
// New(); a nil *Evaluator is not valid.
type Evaluator struct {
	maxDepth int
	cache    *cache.Cache
	obs      *observability.Config
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithMaxDepth overrides the default nesting-depth limit that guards
// against stack exhaustion on adversarial input.
func WithMaxDepth(n int) EvaluatorOption {
	return func(e *Evaluator) {
		if n >= 1 {
			e.maxDepth = n
		}
	}
}

// WithCache enables memoization of up to size results. Evaluation is pure,
// so cached results are indistinguishable from recomputed ones.
func WithCache(size int) EvaluatorOption {
	return func(e *Evaluator) {
		e.cache = cache.New(size)
	}
}

// WithObservability attaches OpenTelemetry tracing and metrics. The config
// must already be initialized.
func WithObservability(cfg *observability.Config) EvaluatorOption {
	return func(e *Evaluator) {
		e.obs = cfg
	}
}

// New creates an Evaluator.
func New(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		maxDepth: expr.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// defaultEvaluator backs the package-level Evaluate convenience function.
var defaultEvaluator = New()

// Evaluate parses and evaluates input with default settings. It is the
// package-level form of (*Evaluator).Evaluate.
func Evaluate(input string) (Value, error) {
	return defaultEvaluator.Evaluate(context.Background(), input)
}

// Evaluate computes the numeric value of input or returns a typed *Error.
//
// The stages are: safety filter (any alphabetic character is rejected
// before parsing), tokenize, parse, evaluate. The letter filter
// deliberately also rejects scientific notation such as "1e3"; the grammar
// itself would accept it, but the filter runs first. This is a known
// limitation, kept for compatibility with existing callers.
func (e *Evaluator) Evaluate(ctx context.Context, input string) (_ Value, err error) {
	start := time.Now()

	tracer := e.obs.Tracer()
	metrics := e.obs.Metrics()

	ctx, span := tracer.StartEvaluate(ctx, len(input))
	defer span.End()

	// The parser and evaluator cannot fault on any input, but the contract
	// is that no failure of any kind escapes untyped.
	defer func() {
		if r := recover(); r != nil {
			err = newError(ErrorCodeOther, -1, fmt.Sprintf("internal error: %v", r))
		}
		if err != nil {
			code := string(CodeOf(err))
			tracer.RecordError(span, code, err)
			metrics.RecordError(ctx, code)
		}
		metrics.RecordEvaluate(ctx, time.Since(start))
	}()

	if r, ok := firstLetter(input); ok {
		return Value{}, validationError("letter %q is not allowed in expressions", r)
	}

	if e.cache != nil {
		if res, ok := e.cache.Get(input); ok {
			metrics.RecordCacheHit(ctx)
			if res.Err != nil {
				return Value{}, mapExprError(res.Err)
			}
			tracer.RecordResult(span, kindOf(res.Value), true)
			return wrapValue(res.Value), nil
		}
	}

	value, evalErr := e.evaluateUncached(ctx, input)

	if e.cache != nil {
		e.cache.Put(input, cache.Result{Value: value, Err: unwrapForCache(evalErr)})
	}
	if evalErr != nil {
		return Value{}, evalErr
	}

	tracer.RecordResult(span, kindOf(value), false)
	return wrapValue(value), nil
}

func (e *Evaluator) evaluateUncached(ctx context.Context, input string) (expr.Value, error) {
	_, span := e.obs.Tracer().StartParse(ctx, len(input))
	node, err := expr.ParseStringDepth(input, e.maxDepth)
	span.End()
	if err != nil {
		return expr.Value{}, mapExprError(err)
	}
	defer expr.ReleaseNode(node)

	value, err := expr.Eval(node)
	if err != nil {
		return expr.Value{}, mapExprError(err)
	}
	return value, nil
}

// firstLetter returns the first alphabetic rune in s, if any.
func firstLetter(s string) (rune, bool) {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return r, true
		}
	}
	return 0, false
}

// mapExprError converts internal parse and evaluation errors onto the
// public taxonomy.
func mapExprError(err error) error {
	var synErr *expr.SyntaxError
	switch {
	case errors.As(err, &synErr):
		return newError(ErrorCodeSyntax, synErr.Pos, synErr.Msg)
	case errors.Is(err, expr.ErrDivisionByZero):
		return newError(ErrorCodeDivisionByZero, -1, "division by zero")
	case errors.Is(err, expr.ErrOverflow):
		return newError(ErrorCodeOverflow, -1, "numeric overflow")
	case err == nil:
		return nil
	default:
		return newError(ErrorCodeOther, -1, err.Error())
	}
}

// unwrapForCache stores the internal error in the cache so the same typed
// error is reconstructed on a hit.
func unwrapForCache(err error) error {
	if err == nil {
		return nil
	}
	var calcErr *Error
	if errors.As(err, &calcErr) {
		// Reconstructable from the internal form on the way back out.
		switch calcErr.Code {
		case ErrorCodeSyntax:
			return &expr.SyntaxError{Pos: calcErr.Pos, Msg: calcErr.Message}
		case ErrorCodeDivisionByZero:
			return expr.ErrDivisionByZero
		case ErrorCodeOverflow:
			return expr.ErrOverflow
		}
	}
	return err
}

func kindOf(v expr.Value) string {
	if v.IsFloat {
		return "float"
	}
	return "int"
}

// ContainsLetter reports whether input would be rejected by the safety
// filter. The interactive front end uses it to print its fixed rejection
// message without attempting evaluation.
func ContainsLetter(input string) bool {
	_, ok := firstLetter(input)
	return ok
}
