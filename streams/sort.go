package streams

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortBy stable-sorts items in place by the key extracted by key.
//
// Ascending order is the natural order of K. Descending order is an
// ascending stable sort followed by a full reversal, so elements with
// equal keys end up in the reverse of their input order. This is not
// the same as sorting with a reversed comparator, which would keep
// equal elements in input order.
func SortBy[T any, K constraints.Ordered](items []T, desc bool, key func(T) K) error {
	if len(items) == 0 {
		return ErrEmptyInput
	}
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) < key(items[j])
	})
	if desc {
		reverse(items)
	}
	return nil
}

// SortByWeightedSum stable-sorts items in place by the arithmetic sum
// of the values extracted by keys, each evaluated per element.
//
// Descending order negates the computed sum before comparison rather
// than reversing afterwards, so elements with equal sums keep their
// input order in both directions.
func SortByWeightedSum[T any](items []T, desc bool, keys ...func(T) float64) error {
	if len(items) == 0 {
		return ErrEmptyInput
	}
	sort.SliceStable(items, func(i, j int) bool {
		return weightedSum(items[i], desc, keys) < weightedSum(items[j], desc, keys)
	})
	return nil
}

// weightedSum sums the selector values for a single element,
// optionally negated for descending comparisons.
func weightedSum[T any](item T, negate bool, keys []func(T) float64) float64 {
	var sum float64
	for _, key := range keys {
		sum += key(item)
	}
	if negate {
		return -sum
	}
	return sum
}

func reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
