// Package orderedmap provides a generic map that remembers the order
// in which keys were first inserted.
//
// Go's built-in map iterates in randomised order, so operations that
// must hand back "a map sorted by X" — like the map-sorting helpers in
// the streams package — need a dedicated result type. [Map] fills that
// role: iteration ([Map.Keys], [Map.Values], [Map.Entries], [Map.Each])
// and JSON serialisation all visit entries in insertion order, while
// lookups stay O(1) through an internal index.
package orderedmap
