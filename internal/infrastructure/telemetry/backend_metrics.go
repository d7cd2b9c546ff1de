package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Outcome labels recorded for each backend call.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeDegraded = "degraded"
)

// BackendMetrics records the health of calls from the composite to its backends.
type BackendMetrics struct {
	degradedReads *Counter
	callDuration  *Histogram
}

// ErrMeterNil is returned when a nil meter is supplied.
var ErrMeterNil = &MetricsError{Op: "NewBackendMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}

// NewBackendMetrics registers the backend instruments on meter.
func NewBackendMetrics(meter metric.Meter) (*BackendMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	degraded, err := NewCounter(
		meter,
		"backend.degraded_reads",
		"Optional backend reads that failed and were replaced by an empty result",
		"{reads}",
	)
	if err != nil {
		return nil, err
	}

	duration, err := NewHistogram(meter, HistogramOpts{
		Name:        "backend.call.duration",
		Description: "Duration of HTTP calls to backend services",
		Unit:        "s",
		Boundaries:  HTTPDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &BackendMetrics{degradedReads: degraded, callDuration: duration}, nil
}

// RecordDegradedRead counts one read from backend that was degraded to an empty result.
func (m *BackendMetrics) RecordDegradedRead(ctx context.Context, backend string) {
	if m == nil {
		return
	}
	m.degradedReads.Inc(ctx, AttrBackend.String(backend))
}

// RecordCall records the duration and outcome of one backend call.
func (m *BackendMetrics) RecordCall(ctx context.Context, backend, operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.callDuration.RecordDuration(ctx, d,
		AttrBackend.String(backend),
		AttrOperation.String(operation),
		AttrOutcome.String(outcome),
	)
}
