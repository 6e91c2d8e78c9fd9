package streams

import "golang.org/x/exp/constraints"

// MaxBy returns the element whose key, extracted by key, is largest.
// When several elements share the maximum key, the first one in input
// order is returned. Returns [ErrEmptyInput] for a nil or empty input.
func MaxBy[T any, K constraints.Ordered](items []T, key func(T) K) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyInput
	}
	best, bestKey := items[0], key(items[0])
	for _, item := range items[1:] {
		if k := key(item); k > bestKey {
			best, bestKey = item, k
		}
	}
	return best, nil
}

// MinBy returns the element whose key, extracted by key, is smallest.
// When several elements share the minimum key, the first one in input
// order is returned. Returns [ErrEmptyInput] for a nil or empty input.
func MinBy[T any, K constraints.Ordered](items []T, key func(T) K) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyInput
	}
	best, bestKey := items[0], key(items[0])
	for _, item := range items[1:] {
		if k := key(item); k < bestKey {
			best, bestKey = item, k
		}
	}
	return best, nil
}
