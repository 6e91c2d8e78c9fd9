package streams

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// GroupBy partitions items into a map from the key produced by
// classifier to the elements sharing that key. Within each group the
// elements keep their input order.
func GroupBy[T any, K comparable](items []T, classifier func(T) K) (map[K][]T, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	groups := make(map[K][]T)
	for _, item := range items {
		k := classifier(item)
		groups[k] = append(groups[k], item)
	}
	return groups, nil
}

// GroupBySorted sorts items in place (per [SortBy] semantics, with the
// same descending tie behaviour), then groups the sorted sequence with
// classifier, so within each group the elements retain the sorted
// relative order.
func GroupBySorted[T any, K comparable, S constraints.Ordered](items []T, classifier func(T) K, desc bool, key func(T) S) (map[K][]T, error) {
	if err := SortBy(items, desc, key); err != nil {
		return nil, err
	}
	return GroupBy(items, classifier)
}

// GroupProject groups items like [GroupBy], but each grouped element
// is replaced by the value returned by project.
func GroupProject[T any, K comparable, U any](items []T, classifier func(T) K, project func(T) U) (map[K][]U, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	groups := make(map[K][]U)
	for _, item := range items {
		k := classifier(item)
		groups[k] = append(groups[k], project(item))
	}
	return groups, nil
}

// GroupProjectSorted is [GroupProject] after an in-place pre-sort of
// items (per [SortBy] semantics).
func GroupProjectSorted[T any, K comparable, U any, S constraints.Ordered](items []T, classifier func(T) K, project func(T) U, desc bool, key func(T) S) (map[K][]U, error) {
	if err := SortBy(items, desc, key); err != nil {
		return nil, err
	}
	return GroupProject(items, classifier, project)
}

// GroupAggregate groups items with classifier, then reduces each group
// to a single number: the per-element sum across keys, combined within
// the group according to op ([Sum] or [Average]).
func GroupAggregate[T any, K comparable](items []T, classifier func(T) K, op MergeOp, keys ...func(T) float64) (map[K]float64, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	if op != Sum && op != Average {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperation, op)
	}
	totals := make(map[K]float64)
	counts := make(map[K]int)
	for _, item := range items {
		k := classifier(item)
		totals[k] += weightedSum(item, false, keys)
		counts[k]++
	}
	if op == Average {
		for k := range totals {
			totals[k] /= float64(counts[k])
		}
	}
	return totals, nil
}

// GroupCount returns a map from each classifier key to the number of
// elements sharing that key.
func GroupCount[T any, K comparable](items []T, classifier func(T) K) (map[K]int, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	counts := make(map[K]int)
	for _, item := range items {
		counts[classifier(item)]++
	}
	return counts, nil
}

// GroupReduce groups items like [GroupBy], then hands the entire
// grouping to finisher and returns its result — an escape hatch for
// custom post-processing of a grouping.
func GroupReduce[T any, K comparable, R any](items []T, classifier func(T) K, finisher func(map[K][]T) R) (R, error) {
	var zero R
	groups, err := GroupBy(items, classifier)
	if err != nil {
		return zero, err
	}
	return finisher(groups), nil
}
