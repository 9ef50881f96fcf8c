package observe

import (
	"log/slog"

	"github.com/corekit-go/corekit/pkg/corekit/factory"
)

// LogObserver logs factory lifecycle events through a slog.Logger.
type LogObserver struct {
	logger *slog.Logger
}

var _ factory.Observer = (*LogObserver)(nil)

// NewLogObserver returns an observer that logs events to logger.
// A nil logger yields an observer that drops every event.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// ProductRegistered logs a registration.
func (o *LogObserver) ProductRegistered(factoryName, id string) {
	if o.logger == nil {
		return
	}
	o.logger.Debug("product registered",
		slog.String("factory", factoryName),
		slog.String("product_id", id),
	)
}

// ProductUnregistered logs an unregistration.
func (o *LogObserver) ProductUnregistered(factoryName, id string) {
	if o.logger == nil {
		return
	}
	o.logger.Debug("product unregistered",
		slog.String("factory", factoryName),
		slog.String("product_id", id),
	)
}

// ProductCreated logs a create call with its hit/miss status.
func (o *LogObserver) ProductCreated(factoryName, id string, found bool) {
	if o.logger == nil {
		return
	}
	o.logger.Debug("product created",
		slog.String("factory", factoryName),
		slog.String("product_id", id),
		slog.Bool("found", found),
	)
}
