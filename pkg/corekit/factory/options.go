package factory

// Option configures a Factory at construction time.
type Option[P any, K comparable] func(*Factory[P, K])

// WithMap selects the container backing the factory.
// Default: an Unordered map.
//
// Example:
//
//	f := factory.New[Fruit, string](
//	    factory.WithMap[Fruit, string](factory.NewOrdered[string, factory.ProductionFunc[Fruit]]()),
//	)
func WithMap[P any, K comparable](m Map[K, ProductionFunc[P]]) Option[P, K] {
	return func(f *Factory[P, K]) {
		if m != nil {
			f.products = m
		}
	}
}

// WithObserver sets the observer receiving factory lifecycle events.
// Default: a no-op observer.
func WithObserver[P any, K comparable](o Observer) Option[P, K] {
	return func(f *Factory[P, K]) {
		if o != nil {
			f.observer = o
		}
	}
}

// WithName overrides the generated factory name used in observer events.
func WithName[P any, K comparable](name string) Option[P, K] {
	return func(f *Factory[P, K]) {
		if name != "" {
			f.name = name
		}
	}
}
