package factory

import (
	"fmt"

	"github.com/google/uuid"
)

// ProductionFunc produces one instance of the product type per call.
// Ownership of the returned value passes to the caller.
type ProductionFunc[P any] func() P

// Factory maps identifiers to production functions for a common product
// type P. P is normally an interface implemented by every registered
// concrete type; K is any comparable identifier type.
//
// Factory is NOT safe for concurrent use. See the package documentation.
type Factory[P any, K comparable] struct {
	name     string
	products Map[K, ProductionFunc[P]]
	observer Observer
}

// New creates an empty factory backed by an Unordered map.
// Use options to select a different container, an observer, or a name.
func New[P any, K comparable](opts ...Option[P, K]) *Factory[P, K] {
	f := &Factory[P, K]{
		name:     fmt.Sprintf("factory-%s", uuid.New().String()[:8]),
		products: NewUnordered[K, ProductionFunc[P]](),
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the factory's name, used as an attribute in observer
// events and logs. Defaults to a generated "factory-xxxxxxxx" value.
func (f *Factory[P, K]) Name() string {
	return f.name
}

// RegisterProduct registers a production function for the concrete type
// C under id. The function default-constructs a *C and returns it as P.
// Any existing registration under id is replaced.
//
// *C must implement P; the check runs once, at registration, and panics
// on violation so misuse fails at wiring time rather than on the first
// Create. (A package-level function because Go methods cannot introduce
// type parameters.)
func RegisterProduct[C any, P any, K comparable](f *Factory[P, K], id K) {
	if _, ok := any((*C)(nil)).(P); !ok {
		panic(fmt.Sprintf("factory: %T does not implement the product type", (*C)(nil)))
	}
	f.RegisterProductionFunction(id, func() P {
		return any(new(C)).(P)
	})
}

// RegisterProductionFunction registers fn as the producer for id,
// replacing any existing registration. This is the extension point for
// products that need more than a default construction; fn may legally
// return any value of the product type, including a shared one.
func (f *Factory[P, K]) RegisterProductionFunction(id K, fn ProductionFunc[P]) {
	f.products.Insert(id, fn)
	f.observer.ProductRegistered(f.name, fmt.Sprint(id))
}

// UnregisterProduct removes the registration for id. Unregistering an
// unknown identifier is a no-op, not an error.
func (f *Factory[P, K]) UnregisterProduct(id K) {
	if _, ok := f.products.Find(id); !ok {
		return
	}
	f.products.Remove(id)
	f.observer.ProductUnregistered(f.name, fmt.Sprint(id))
}

// Create looks up id and invokes its production function, returning the
// new instance with ownership transferred to the caller. If id is not
// registered, Create returns the zero value of P (nil for interface
// products) without mutating the registry; absence is an expected
// outcome, not an error.
func (f *Factory[P, K]) Create(id K) P {
	fn, ok := f.products.Find(id)
	f.observer.ProductCreated(f.name, fmt.Sprint(id), ok)
	if !ok {
		var zero P
		return zero
	}
	return fn()
}

// Production returns the production function stored for id and whether
// one exists. The function is returned as stored, not invoked.
func (f *Factory[P, K]) Production(id K) (ProductionFunc[P], bool) {
	return f.products.Find(id)
}

// ProductCount returns the number of distinct registered identifiers.
func (f *Factory[P, K]) ProductCount() int {
	return f.products.Len()
}

// AvailableProducts returns the registered identifiers in the backing
// container's key-listing order. No ordering is guaranteed beyond what
// the container provides.
func (f *Factory[P, K]) AvailableProducts() []K {
	return f.products.Keys()
}
