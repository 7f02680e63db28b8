package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the calculator-specific metric instruments.
type Metrics struct {
	evaluateDuration metric.Float64Histogram
	evaluateCount    metric.Int64Counter
	errorCount       metric.Int64Counter
	cacheHitCount    metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) *Metrics {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	// Note: errors from meter instrument creation are unlikely in practice
	// and would only occur with invalid parameters. We use explicit checks
	// to satisfy the linter while continuing with partial metrics on error.
	var err error

	m.evaluateDuration, err = meter.Float64Histogram(
		"calc.evaluate.duration",
		metric.WithDescription("Duration of evaluate calls in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		m.evaluateDuration, _ = meter.Float64Histogram("calc.evaluate.duration")
	}

	m.evaluateCount, err = meter.Int64Counter(
		"calc.evaluate.count",
		metric.WithDescription("Total number of evaluate calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		m.evaluateCount, _ = meter.Int64Counter("calc.evaluate.count")
	}

	m.errorCount, err = meter.Int64Counter(
		"calc.error.count",
		metric.WithDescription("Total number of failed evaluate calls"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		m.errorCount, _ = meter.Int64Counter("calc.error.count")
	}

	m.cacheHitCount, err = meter.Int64Counter(
		"calc.cache.hits",
		metric.WithDescription("Total number of result cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		m.cacheHitCount, _ = meter.Int64Counter("calc.cache.hits")
	}

	return m
}

// RecordEvaluate records one evaluate call with its duration.
func (m *Metrics) RecordEvaluate(ctx context.Context, duration time.Duration, attrs ...attribute.KeyValue) {
	if m == nil {
		return
	}
	opt := metric.WithAttributes(attrs...)
	m.evaluateCount.Add(ctx, 1, opt)
	m.evaluateDuration.Record(ctx, float64(duration.Microseconds())/1000.0, opt)
}

// RecordError records one failed evaluate call tagged with its error code.
func (m *Metrics) RecordError(ctx context.Context, code string) {
	if m == nil {
		return
	}
	m.errorCount.Add(ctx, 1, metric.WithAttributes(ErrorCodeAttr(code)))
}

// RecordCacheHit records one result cache hit.
func (m *Metrics) RecordCacheHit(ctx context.Context) {
	if m == nil {
		return
	}
	m.cacheHitCount.Add(ctx, 1)
}
