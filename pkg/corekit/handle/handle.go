// Package handle provides an owning pointer for hidden implementations.
//
// Handle owns a single heap-allocated value and exposes pointer-like
// access to it. Its main use is keeping a type's implementation details
// behind a package boundary: the outer type holds a *Handle[impl] where
// impl is an unexported struct, so consumers see only the outer API.
//
//	type Counter struct {
//	    d *handle.Handle[counterImpl] // counterImpl is unexported
//	}
//
//	func NewCounter() *Counter {
//	    return &Counter{d: handle.New[counterImpl]()}
//	}
//
// A handle's content never changes after construction; the one permitted
// mutation is Swap, which exchanges the contents of two handles and is
// the building block for strongly exception-safe replacement: construct
// a fresh handle, swap it in, close the old one.
//
// Close is the destructor analog: it releases the owned object exactly
// once, running the object's own Close method if it implements
// io.Closer. Handles are not copyable; copying one is a go vet error.
//
// Handle is not safe for concurrent use.
package handle

import "io"

// Handle exclusively owns a heap-allocated T.
// Use New or Adopt to construct one; the zero Handle is empty.
type Handle[T any] struct {
	noCopy noCopy
	p      *T
}

var _ io.Closer = (*Handle[struct{}])(nil)

// New returns a handle owning a fresh zero-valued T.
// The returned handle is never empty: Get() != nil.
func New[T any]() *Handle[T] {
	return &Handle[T]{p: new(T)}
}

// Adopt returns a handle taking ownership of p.
// p may be nil, in which case the handle is empty and Get() == nil.
func Adopt[T any](p *T) *Handle[T] {
	return &Handle[T]{p: p}
}

// Get returns the owned pointer without transferring ownership.
// It returns nil for an empty or closed handle and never allocates.
func (h *Handle[T]) Get() *T {
	return h.p
}

// Deref returns the owned value. Dereferencing an empty handle panics;
// checking Ok first is the caller's contract, exactly as with a raw
// pointer.
func (h *Handle[T]) Deref() T {
	return *h.p
}

// Ok reports whether the handle owns an object.
func (h *Handle[T]) Ok() bool {
	return h.p != nil
}

// Swap exchanges the owned objects of h and other in constant time.
// Swap never allocates and is the only mutation a live handle supports.
func (h *Handle[T]) Swap(other *Handle[T]) {
	h.p, other.p = other.p, h.p
}

// Swap exchanges the contents of two handles.
func Swap[T any](a, b *Handle[T]) {
	a.Swap(b)
}

// Close releases the owned object. If the object implements io.Closer,
// its Close method runs and its error is returned. The release happens
// at most once: closing an empty or already-closed handle is a no-op
// returning nil.
func (h *Handle[T]) Close() error {
	p := h.p
	if p == nil {
		return nil
	}
	h.p = nil
	if c, ok := any(p).(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// noCopy makes copying a Handle a vet error (copylocks), the closest Go
// analog of a type without copy operations.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
