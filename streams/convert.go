package streams

import "fmt"

// ToMap builds a map from the key and value extracted from each
// element. Two elements producing the same key is an error — ToMap
// never silently overwrites; it returns [ErrKeyCollision] wrapped with
// the offending key.
func ToMap[T any, K comparable, V any](items []T, key func(T) K, value func(T) V) (map[K]V, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	out := make(map[K]V, len(items))
	for _, item := range items {
		k := key(item)
		if _, exists := out[k]; exists {
			return nil, fmt.Errorf("%w: %v", ErrKeyCollision, k)
		}
		out[k] = value(item)
	}
	return out, nil
}

// Collector is the target of the conversion factories
// [ToCollectionOf] and [ArrayToCollectionOf]: any container that
// elements can be appended to. [Deque] is the in-package
// implementation; callers supply their own for other containers.
type Collector[T any] interface {
	Add(item T)
}

// ToCollectionOf materialises items into the concrete collection built
// by newCollection, adding the elements in input order.
//
//	dq, err := streams.ToCollectionOf(players, streams.NewDeque[Player])
func ToCollectionOf[T any, C Collector[T]](items []T, newCollection func() C) (C, error) {
	var zero C
	if len(items) == 0 {
		return zero, ErrEmptyInput
	}
	c := newCollection()
	for _, item := range items {
		c.Add(item)
	}
	return c, nil
}

// ArrayToCollectionOf materialises the elements of a fixed array
// (passed as a slice of it, arr[:]) into the collection built by
// newCollection.
//
// Unlike every other operation in this package, only a nil input
// fails: an empty non-nil input succeeds and yields an empty
// collection.
func ArrayToCollectionOf[T any, C Collector[T]](arr []T, newCollection func() C) (C, error) {
	var zero C
	if arr == nil {
		return zero, ErrEmptyInput
	}
	c := newCollection()
	for _, item := range arr {
		c.Add(item)
	}
	return c, nil
}

// DistinctBy removes elements whose key has already been seen. The
// first element per key is kept; kept elements appear in order of
// first occurrence. The input is not modified.
func DistinctBy[T any, K comparable](items []T, key func(T) K) ([]T, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out, nil
}
