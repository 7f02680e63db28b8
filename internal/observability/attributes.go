// Package observability provides OpenTelemetry-based instrumentation for the
// calculator.
//
// It supports tracing and metrics collection around parse and evaluate calls.
//
// All observability features are opt-in. When not configured, no-op
// implementations are used with zero performance overhead.
package observability

import "go.opentelemetry.io/otel/attribute"

// Instrumentation identity constants
const (
	// TracerName is the instrumentation name for tracing.
	TracerName = "github.com/nlstn/go-calc"
	// MeterName is the instrumentation name for metrics.
	MeterName = "github.com/nlstn/go-calc"
)

// Semantic attribute keys following OpenTelemetry conventions.
const (
	// Expression attributes
	AttrExprLength = "calc.expr.length"
	AttrOperation  = "calc.operation"

	// Result attributes
	AttrResultKind = "calc.result.kind" // "int" or "float"
	AttrCacheHit   = "calc.cache.hit"

	// Error attributes
	AttrErrorCode    = "calc.error.code"
	AttrErrorMessage = "calc.error.message"
)

// Operation names used with AttrOperation.
const (
	OpEvaluate = "evaluate"
	OpParse    = "parse"
)

// ExprLengthAttr returns the expression-length attribute.
func ExprLengthAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrExprLength, n)
}

// OperationAttr returns the operation attribute.
func OperationAttr(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// ResultKindAttr returns the result-kind attribute.
func ResultKindAttr(kind string) attribute.KeyValue {
	return attribute.String(AttrResultKind, kind)
}

// CacheHitAttr returns the cache-hit attribute.
func CacheHitAttr(hit bool) attribute.KeyValue {
	return attribute.Bool(AttrCacheHit, hit)
}

// ErrorCodeAttr returns the error-code attribute.
func ErrorCodeAttr(code string) attribute.KeyValue {
	return attribute.String(AttrErrorCode, code)
}
