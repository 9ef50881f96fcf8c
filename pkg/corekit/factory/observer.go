package factory

// Observer receives factory lifecycle events. Identifiers are rendered
// with fmt.Sprint so observers stay independent of the key type.
//
// The observe package provides slog and OpenTelemetry implementations;
// a factory without an explicit observer drops every event.
type Observer interface {
	// ProductRegistered is called after a production function is stored,
	// including when an existing registration is replaced.
	ProductRegistered(factory, id string)

	// ProductUnregistered is called after a registration is removed.
	// It is not called for unregistration of unknown identifiers.
	ProductUnregistered(factory, id string)

	// ProductCreated is called on every Create. found reports whether a
	// production function was registered for the identifier.
	ProductCreated(factory, id string, found bool)
}

// noopObserver is the default Observer.
type noopObserver struct{}

var _ Observer = noopObserver{}

func (noopObserver) ProductRegistered(_, _ string)      {}
func (noopObserver) ProductUnregistered(_, _ string)    {}
func (noopObserver) ProductCreated(_, _ string, _ bool) {}
