/*
Package factory provides a generic keyed factory registry: a run-time
extensible mapping from identifier to production function, used to
instantiate polymorphic product types without the call site naming the
concrete type.

# Basic Usage

Declare a product interface, register concrete types under identifiers,
then create instances by identifier:

	type Fruit interface {
	    Kind() string
	}

	type Apple struct{}
	func (*Apple) Kind() string { return "apple" }

	type Pear struct{}
	func (*Pear) Kind() string { return "pear" }

	plantation := factory.New[Fruit, string]()
	factory.RegisterProduct[Apple](plantation, "Apple")
	factory.RegisterProduct[Pear](plantation, "Pear")

	apple := plantation.Create("Apple") // a fresh *Apple as Fruit
	cherry := plantation.Create("Cherry") // nil: never registered

Registration erases the concrete type: after the RegisterProduct call,
callers interact only with identifiers and the product type. Creating an
unregistered identifier returns the product type's zero value (nil for
interface products) rather than an error, leaving callers to decide
whether absence is fatal.

# Custom Production Functions

RegisterProductionFunction is the low-level extension point. It accepts
any zero-argument function returning the product type, so products that
need more than a default construction (or that return a shared sentinel
instead of a fresh instance) can be registered too:

	plantation.RegisterProductionFunction("Pear", func() Fruit {
	    return &Pear{Ripeness: 3}
	})

The registry never inspects what a production function returns. A
function registered this way may return a shared value on every call;
the per-call fresh instance guarantee holds only for products registered
through RegisterProduct.

# Containers

The registry stores production functions in a Map, a narrow container
contract (insert-or-replace, find, remove, len, keys). Two
implementations ship with the package:

  - Unordered: the builtin map; key listing order is unspecified.
  - Ordered: keeps keys sorted, so AvailableProducts lists identifiers
    in ascending order. Requires an ordered identifier type.

Select one with WithMap:

	f := factory.New[Fruit, string](
	    factory.WithMap[Fruit, string](factory.NewOrdered[string, factory.ProductionFunc[Fruit]]()),
	)

# Observability

A Factory accepts an Observer that receives registration, unregistration
and create events. The default observer does nothing; the observe
package provides slog and OpenTelemetry implementations.

# Thread Safety

Factory performs no internal locking. Registration, unregistration and
creation assume exclusive access; callers that share a factory across
goroutines must serialize access externally.
*/
package factory
