// Package orderedmap provides an insertion-ordered map that rejects
// duplicate keys. The reader collects start-tag attributes with it:
// document order must be preserved, and a second attribute with the
// same name is a well-formedness violation the insert has to surface.
package orderedmap

import (
	"errors"
	"iter"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

type Map[K comparable, V any] struct {
	order []K
	keys  map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		keys: make(map[K]V),
	}
}

// Set inserts key. A key seen before is reported as ErrDuplicateEntry
// and the map is left unchanged.
func (m *Map[K, V]) Set(key K, value V) error {
	if _, exists := m.keys[key]; exists {
		return ErrDuplicateEntry
	}
	m.order = append(m.order, key)
	m.keys[key] = value
	return nil
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.order)
}

// Range iterates the entries in insertion order.
func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.keys[k]) {
				break
			}
		}
	}
}
