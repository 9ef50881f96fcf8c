package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/corekit-go/corekit/pkg/corekit/factory"
	"github.com/corekit-go/corekit/pkg/corekit/observe"
)

// Report summarizes one manifest application.
type Report struct {
	// ApplyID uniquely identifies the application for log correlation.
	ApplyID string

	// Disabled lists identifiers unregistered by the manifest.
	Disabled []string

	// Aliased lists alias identifiers registered by the manifest.
	Aliased []string

	// Unknown lists manifest identifiers with no registration in the
	// factory. Unknown entries are reported, never treated as errors.
	Unknown []string
}

// applyConfig holds configuration for a manifest application.
type applyConfig struct {
	logger  *slog.Logger
	tracing bool
}

// ApplyOption configures Apply behavior.
type ApplyOption func(*applyConfig)

// WithLogger enables structured logging of the application.
// Default: no logging.
func WithLogger(logger *slog.Logger) ApplyOption {
	return func(c *applyConfig) {
		c.logger = logger
	}
}

// WithTracing wraps the application in an OpenTelemetry span.
// Default: false.
func WithTracing(enabled bool) ApplyOption {
	return func(c *applyConfig) {
		c.tracing = enabled
	}
}

// Apply reshapes f according to m: disabled products are unregistered,
// and aliases are registered with the production function of the product
// they alias. Entries naming identifiers the factory does not know are
// collected in the report's Unknown list and otherwise skipped.
//
// The manifest is validated first; a validation error leaves the factory
// untouched. Aliases of a disabled product are not registered.
func Apply[P any](ctx context.Context, f *factory.Factory[P, string], m Manifest, opts ...ApplyOption) (Report, error) {
	var cfg applyConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	report := Report{ApplyID: fmt.Sprintf("apply-%s", uuid.New().String()[:8])}

	if err := m.Validate(); err != nil {
		return report, err
	}

	if cfg.tracing {
		var span trace.Span
		ctx, span = observe.StartApplySpan(ctx, f.Name(), report.ApplyID)
		defer func() { observe.EndSpanWithError(span, nil) }()
	}

	if cfg.logger != nil {
		cfg.logger.Info("catalog apply starting",
			slog.String("apply_id", report.ApplyID),
			slog.String("factory", f.Name()),
			slog.Int("entries", len(m.Products)),
		)
	}

	for _, p := range m.Products {
		fn, ok := f.Production(p.ID)
		if !ok {
			report.Unknown = append(report.Unknown, p.ID)
			if cfg.logger != nil {
				cfg.logger.Debug("manifest entry unknown to factory",
					slog.String("apply_id", report.ApplyID),
					slog.String("product_id", p.ID),
				)
			}
			continue
		}

		if !p.IsEnabled() {
			f.UnregisterProduct(p.ID)
			report.Disabled = append(report.Disabled, p.ID)
			continue
		}

		for _, alias := range p.Aliases {
			f.RegisterProductionFunction(alias, fn)
			report.Aliased = append(report.Aliased, alias)
		}
	}

	if cfg.logger != nil {
		cfg.logger.Info("catalog apply completed",
			slog.String("apply_id", report.ApplyID),
			slog.String("factory", f.Name()),
			slog.Int("disabled", len(report.Disabled)),
			slog.Int("aliased", len(report.Aliased)),
			slog.Int("unknown", len(report.Unknown)),
		)
	}

	return report, nil
}
