package observe

import "github.com/corekit-go/corekit/pkg/corekit/factory"

// NoopObserver is a factory.Observer that does nothing.
// Use when observability is disabled to avoid overhead.
type NoopObserver struct{}

// Compile-time interface check.
var _ factory.Observer = NoopObserver{}

// ProductRegistered does nothing.
func (NoopObserver) ProductRegistered(_, _ string) {}

// ProductUnregistered does nothing.
func (NoopObserver) ProductUnregistered(_, _ string) {}

// ProductCreated does nothing.
func (NoopObserver) ProductCreated(_, _ string, _ bool) {}
