package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an OpenTelemetry tracer with calculator-specific span
// creation methods.
type Tracer struct {
	tracer      trace.Tracer
	serviceName string
}

// NewTracer creates a new Tracer using the given TracerProvider.
func NewTracer(tp trace.TracerProvider, serviceName string) *Tracer {
	return &Tracer{
		tracer:      tp.Tracer(TracerName),
		serviceName: serviceName,
	}
}

// StartSpan starts a new span with the given name and attributes.
func (t *Tracer) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}

// StartEvaluate starts a span covering a full evaluate call.
func (t *Tracer) StartEvaluate(ctx context.Context, exprLen int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "calc.evaluate", trace.WithAttributes(
		OperationAttr(OpEvaluate),
		ExprLengthAttr(exprLen),
	))
}

// StartParse starts a span covering tokenization and parsing.
func (t *Tracer) StartParse(ctx context.Context, exprLen int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "calc.parse", trace.WithAttributes(
		OperationAttr(OpParse),
		ExprLengthAttr(exprLen),
	))
}

// RecordError marks the span as failed and tags it with the error code.
func (t *Tracer) RecordError(span trace.Span, code string, err error) {
	if err == nil {
		return
	}
	span.SetAttributes(ErrorCodeAttr(code))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// RecordResult tags the span with the result kind and cache outcome.
func (t *Tracer) RecordResult(span trace.Span, kind string, cacheHit bool) {
	span.SetAttributes(ResultKindAttr(kind), CacheHitAttr(cacheHit))
}
