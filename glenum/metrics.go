package glenum

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/jaxgl/jax/glenum"

// introspectorMetrics holds the instruments recorded by an Introspector.
type introspectorMetrics struct {
	// unknownCounter increments for each NameOf miss
	unknownCounter metric.Int64Counter

	// invalidFormatCounter increments for each rejected SizeofFormat call
	invalidFormatCounter metric.Int64Counter
}

func newIntrospectorMetrics(provider metric.MeterProvider) (*introspectorMetrics, error) {
	meter := provider.Meter(meterName)
	m := &introspectorMetrics{}
	var err error

	m.unknownCounter, err = meter.Int64Counter(
		"glenum.lookup.unknown",
		metric.WithDescription("Number of enum lookups for codes missing from the symbol table"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create unknown lookup counter: %w", err)
	}

	m.invalidFormatCounter, err = meter.Int64Counter(
		"glenum.format.invalid",
		metric.WithDescription("Number of SizeofFormat calls with an unrecognized format"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create invalid format counter: %w", err)
	}

	return m, nil
}

func (m *introspectorMetrics) recordUnknown(code int) {
	m.unknownCounter.Add(context.Background(), 1, metric.WithAttributes(attribute.Int("code", code)))
}

func (m *introspectorMetrics) recordInvalidFormat(format int) {
	m.invalidFormatCounter.Add(context.Background(), 1, metric.WithAttributes(attribute.Int("format", format)))
}
