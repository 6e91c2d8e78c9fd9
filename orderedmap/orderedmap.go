package orderedmap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Map is a generic map that preserves insertion order. Updating an
// existing key keeps its position; deleting and re-inserting a key
// moves it to the back.
//
// The zero value is not usable; create instances with [New].
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// Entry is a single key/value pair as returned by [Map.Entries].
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "(key, value)".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

// Set inserts or updates the value for key.
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key together with a presence flag.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// Entries returns the key/value pairs in insertion order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Entry[K, V]{Key: k, Value: m.values[k]})
	}
	return out
}

// Each calls fn(key, value) for every entry in insertion order.
func (m *Map[K, V]) Each(fn func(K, V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// MarshalJSON serialises the map as a JSON object with its entries in
// insertion order. Keys are rendered with their %v representation so
// non-string key types produce valid JSON object keys.
// It implements [json.Marshaler].
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(fmt.Sprintf("%v", k))
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String returns a JSON representation of the map.
// It implements [fmt.Stringer].
func (m *Map[K, V]) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.values)
	}
	return string(b)
}
