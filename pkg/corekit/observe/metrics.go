// Package observe provides opt-in observability for corekit factories:
// structured logging via slog (Go stdlib) and metrics/tracing via
// OpenTelemetry.
//
// All implementations are optional. The factory package itself emits
// events to a no-op observer unless one from this package (or the
// caller's own) is wired in with factory.WithObserver.
package observe

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/corekit-go/corekit/pkg/corekit/factory"
)

// otelObserver implements factory.Observer using OpenTelemetry metrics.
type otelObserver struct {
	registrations   metric.Int64Counter
	unregistrations metric.Int64Counter
	creates         metric.Int64Counter
}

var (
	defaultObserver     *otelObserver
	defaultObserverOnce sync.Once
	defaultObserverErr  error
)

// getDefaultObserver returns the default OTel observer instance.
// Lazily initializes the instruments on first call.
func getDefaultObserver() (*otelObserver, error) {
	defaultObserverOnce.Do(func() {
		defaultObserver, defaultObserverErr = newOtelObserver()
	})
	return defaultObserver, defaultObserverErr
}

// newOtelObserver creates a new OTel observer instance.
func newOtelObserver() (*otelObserver, error) {
	meter := otel.Meter("corekit")

	registrations, err := meter.Int64Counter("corekit.factory.registrations",
		metric.WithDescription("Number of product registrations"),
	)
	if err != nil {
		return nil, err
	}

	unregistrations, err := meter.Int64Counter("corekit.factory.unregistrations",
		metric.WithDescription("Number of product unregistrations"),
	)
	if err != nil {
		return nil, err
	}

	creates, err := meter.Int64Counter("corekit.factory.creates",
		metric.WithDescription("Number of create calls, hit or miss"),
	)
	if err != nil {
		return nil, err
	}

	return &otelObserver{
		registrations:   registrations,
		unregistrations: unregistrations,
		creates:         creates,
	}, nil
}

// NewMetricsObserver returns a factory.Observer that records
// OpenTelemetry metrics. If metrics initialization fails, returns a
// no-op observer.
//
// The observer uses the global OTel meter provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsObserver() factory.Observer {
	o, err := getDefaultObserver()
	if err != nil {
		slog.Warn("metrics observer initialization failed, using no-op observer",
			slog.String("error", err.Error()))
		return NoopObserver{}
	}
	return o
}

// ProductRegistered records a registration.
func (o *otelObserver) ProductRegistered(factoryName, id string) {
	o.registrations.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("factory", factoryName),
		attribute.String("product_id", id),
	))
}

// ProductUnregistered records an unregistration.
func (o *otelObserver) ProductUnregistered(factoryName, id string) {
	o.unregistrations.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("factory", factoryName),
		attribute.String("product_id", id),
	))
}

// ProductCreated records a create call with its hit/miss status.
func (o *otelObserver) ProductCreated(factoryName, id string, found bool) {
	o.creates.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("factory", factoryName),
		attribute.String("product_id", id),
		attribute.Bool("found", found),
	))
}
