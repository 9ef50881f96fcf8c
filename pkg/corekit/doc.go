/*
Package corekit is a small application-support toolkit built around two
reusable low-level utilities.

# Overview

corekit provides:

  - A keyed factory registry (subpackage factory): a run-time extensible
    mapping from identifier to production function, used to instantiate
    polymorphic product types without the call site naming the concrete
    type. Generic over the product type, the identifier type, and the
    backing container.

  - An opaque owning handle (subpackage handle): a value that
    exclusively owns a heap-allocated object, exposing pointer-like
    access while keeping the object's type hidden behind a package
    boundary. The Go rendition of an owning pimpl pointer.

The two are independent; neither depends on the other.

# Basic Usage

	plantation := factory.New[Fruit, string]()
	factory.RegisterProduct[Apple](plantation, "Apple")

	apple := plantation.Create("Apple")   // fresh *Apple as Fruit
	cherry := plantation.Create("Cherry") // nil: not registered

	h := handle.New[hiddenImpl]()
	h.Get().configure()
	defer h.Close()

# Subpackages

  - factory: keyed factory registry and its container abstraction
  - handle: opaque owning handle
  - catalog: YAML/JSON manifests that select and alias factory products
  - observe: slog and OpenTelemetry observers for factory events

# Thread Safety

  - Factory and Handle perform no internal locking; callers sharing one
    across goroutines must serialize access externally.
  - Observers from the observe package are safe for concurrent use.
*/
package corekit
