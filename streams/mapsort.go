package streams

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-stream-utils/orderedmap"
)

// SortMapByKey returns a new insertion-ordered map holding the entries
// of m in ascending (or, with desc, descending) key order. The input
// map is not modified.
func SortMapByKey[K constraints.Ordered, V any](m map[K]V, desc bool) (*orderedmap.Map[K, V], error) {
	if len(m) == 0 {
		return nil, ErrEmptyInput
	}
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if desc {
			return keys[j] < keys[i]
		}
		return keys[i] < keys[j]
	})
	out := orderedmap.New[K, V]()
	for _, k := range keys {
		out.Set(k, m[k])
	}
	return out, nil
}

// SortMapByValue returns a new insertion-ordered map holding the
// entries of m in ascending (or, with desc, descending) order of the
// comparable value extracted from each map value by key. The input map
// is not modified.
//
// Entries whose extracted values compare equal appear in unspecified
// relative order: Go randomises map iteration and the sort applies no
// secondary criterion.
func SortMapByValue[K comparable, V any, U constraints.Ordered](m map[K]V, desc bool, key func(V) U) (*orderedmap.Map[K, V], error) {
	if len(m) == 0 {
		return nil, ErrEmptyInput
	}
	type entry struct {
		k K
		u U
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, entry{k: k, u: key(v)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if desc {
			return entries[j].u < entries[i].u
		}
		return entries[i].u < entries[j].u
	})
	out := orderedmap.New[K, V]()
	for _, e := range entries {
		out.Set(e.k, m[e.k])
	}
	return out, nil
}
