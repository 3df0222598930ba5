package status

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/sandfall/status"

// Exporter publishes a Registry through OpenTelemetry observable gauges
// Uses the global meter provider; no-op unless one is installed
type Exporter struct {
	events metric.Int64Counter
	reg    metric.Registration
}

// NewExporter registers gauges reading the registry on every collection
func NewExporter(r *Registry) (*Exporter, error) {
	return NewExporterWithMeter(otel.Meter(instrumentationName), r)
}

// NewExporterWithMeter is NewExporter with an explicit meter
func NewExporterWithMeter(m metric.Meter, r *Registry) (*Exporter, error) {
	ints, err := m.Int64ObservableGauge(
		"sandfall.status.int",
		metric.WithDescription("Integer and boolean engine status values"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating int gauge: %w", err)
	}

	floats, err := m.Float64ObservableGauge(
		"sandfall.status.float",
		metric.WithDescription("Floating point engine status values"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating float gauge: %w", err)
	}

	reg, err := m.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			intVals, floatVals := r.Snapshot()
			for key, v := range intVals {
				o.ObserveInt64(ints, v, metric.WithAttributes(attribute.String("metric", key)))
			}
			for key, v := range floatVals {
				o.ObserveFloat64(floats, v, metric.WithAttributes(attribute.String("metric", key)))
			}
			return nil
		},
		ints, floats,
	)
	if err != nil {
		return nil, fmt.Errorf("registering status callback: %w", err)
	}

	events, err := m.Int64Counter(
		"sandfall.events",
		metric.WithDescription("Engine events dispatched, by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating event counter: %w", err)
	}

	return &Exporter{events: events, reg: reg}, nil
}

// CountEvent increments the event counter for one event type
func (e *Exporter) CountEvent(ctx context.Context, eventType string) {
	e.events.Add(ctx, 1, metric.WithAttributes(attribute.String("type", eventType)))
}

// Close unregisters the gauge callback
func (e *Exporter) Close() error {
	return e.reg.Unregister()
}
