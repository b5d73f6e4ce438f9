package parse

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/zero-day-ai/asp/answerset"
)

// instrumentationName identifies this package to tracer and meter
// providers.
const instrumentationName = "github.com/zero-day-ai/asp/parse"

// Instrumentation wraps capture parsing with OpenTelemetry tracing and
// metrics. Instruments are created once during construction and reused for
// every parse.
//
// Parsing semantics are unchanged: an instrumented parse records a span
// and metrics around the same Raw call and never alters its result.
type Instrumentation struct {
	tracer trace.Tracer
	logger *slog.Logger

	// durationHistogram records capture parse duration in milliseconds.
	durationHistogram metric.Float64Histogram

	// predicateCounter counts predicates parsed across all captures.
	predicateCounter metric.Int64Counter
}

// NewInstrumentation creates parse instrumentation from the given
// providers. A nil tracer or meter provider falls back to the global otel
// provider; a nil logger falls back to slog.Default().
func NewInstrumentation(tp trace.TracerProvider, mp metric.MeterProvider, logger *slog.Logger) (*Instrumentation, error) {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	if logger == nil {
		logger = slog.Default()
	}

	in := &Instrumentation{
		tracer: tp.Tracer(instrumentationName),
		logger: logger,
	}
	meter := mp.Meter(instrumentationName)

	var err error
	in.durationHistogram, err = meter.Float64Histogram(
		"asp.parse.duration",
		metric.WithDescription("Capture parse duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	in.predicateCounter, err = meter.Int64Counter(
		"asp.parse.predicates",
		metric.WithDescription("Number of predicates parsed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create predicate counter: %w", err)
	}

	return in, nil
}

// Raw parses a capture exactly like the package-level Raw, recording a
// span and metrics around the call.
//
// The span carries the capture size, answer count, total predicate count,
// and satisfiability; parse failures are recorded on the span and returned
// unchanged.
func (in *Instrumentation) Raw(ctx context.Context, raw string) ([]answerset.Set, error) {
	start := time.Now()
	ctx, span := in.tracer.Start(ctx, "asp.parse_raw")
	defer span.End()

	sets, err := Raw(raw)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	in.durationHistogram.Record(ctx, elapsed)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	total := 0
	for _, s := range sets {
		total += s.Len()
	}
	span.SetAttributes(
		attribute.Int("capture.bytes", len(raw)),
		attribute.Int("capture.answers", len(sets)),
		attribute.Int("capture.predicates", total),
		attribute.Bool("capture.satisfiable", len(sets) > 0),
	)
	span.SetStatus(codes.Ok, "")
	in.predicateCounter.Add(ctx, int64(total))
	in.logger.Debug("parsed solver capture",
		"answers", len(sets),
		"predicates", total,
		"duration_ms", elapsed)
	return sets, nil
}
