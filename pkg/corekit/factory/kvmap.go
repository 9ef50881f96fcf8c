package factory

import (
	"cmp"
	"slices"
)

// Map is the container contract a Factory depends on. Any mapping that
// supports insert-or-replace, lookup, removal, size, and key listing can
// back a factory; the factory's own logic never assumes a concrete
// container type.
type Map[K comparable, V any] interface {
	// Insert stores value under key, replacing any existing entry.
	Insert(key K, value V)

	// Find returns the value for key and whether it exists.
	Find(key K) (V, bool)

	// Remove deletes the entry for key. Removing an absent key is a no-op.
	Remove(key K)

	// Len returns the number of stored entries.
	Len() int

	// Keys lists all keys. Ordering is implementation-defined.
	Keys() []K
}

// Compile-time interface checks.
var (
	_ Map[string, int] = (*Unordered[string, int])(nil)
	_ Map[string, int] = (*Ordered[string, int])(nil)
)

// Unordered backs a Factory with the builtin map.
// Key listing order is unspecified.
type Unordered[K comparable, V any] struct {
	entries map[K]V
}

// NewUnordered creates an empty unordered map.
func NewUnordered[K comparable, V any]() *Unordered[K, V] {
	return &Unordered[K, V]{entries: make(map[K]V)}
}

// Insert stores value under key, replacing any existing entry.
func (m *Unordered[K, V]) Insert(key K, value V) {
	m.entries[key] = value
}

// Find returns the value for key and whether it exists.
func (m *Unordered[K, V]) Find(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Remove deletes the entry for key.
func (m *Unordered[K, V]) Remove(key K) {
	delete(m.entries, key)
}

// Len returns the number of stored entries.
func (m *Unordered[K, V]) Len() int {
	return len(m.entries)
}

// Keys lists all keys in unspecified order.
func (m *Unordered[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

// Ordered backs a Factory with a sorted key index, so Keys (and thereby
// Factory.AvailableProducts) lists keys in ascending order. Insert and
// Remove are O(n) in the number of keys; Find stays O(1).
type Ordered[K cmp.Ordered, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrdered creates an empty ordered map.
func NewOrdered[K cmp.Ordered, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{values: make(map[K]V)}
}

// Insert stores value under key, replacing any existing entry.
func (m *Ordered[K, V]) Insert(key K, value V) {
	if _, ok := m.values[key]; !ok {
		i, _ := slices.BinarySearch(m.keys, key)
		m.keys = slices.Insert(m.keys, i, key)
	}
	m.values[key] = value
}

// Find returns the value for key and whether it exists.
func (m *Ordered[K, V]) Find(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Remove deletes the entry for key.
func (m *Ordered[K, V]) Remove(key K) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	i, _ := slices.BinarySearch(m.keys, key)
	m.keys = slices.Delete(m.keys, i, i+1)
}

// Len returns the number of stored entries.
func (m *Ordered[K, V]) Len() int {
	return len(m.values)
}

// Keys lists all keys in ascending order. The returned slice is a copy.
func (m *Ordered[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}
