// Package streams provides stateless, generic helpers for sorting,
// grouping, aggregating, de-duplicating and converting slices, driven
// entirely by caller-supplied field-selector functions.
//
// # Selectors instead of reflection
//
// The package never inspects element types. Every operation receives
// the fields it needs through plain functions — an ordering key, a
// grouping classifier, a numeric selector — so any record type works
// without tags, reflection or registration:
//
//	byTeam, _ := streams.GroupBy(players, func(p Player) int64 { return p.Team })
//	top, _    := streams.MaxBy(players, func(p Player) float64 { return p.Score })
//	total, _  := streams.MergeReduce(players, streams.Sum,
//	    func(p Player) float64 { return p.Score })
//
// # Failure on empty input
//
// Every operation checks its input before doing any work and returns
// [ErrEmptyInput] for a nil or empty slice or map — never an empty or
// default result. The single documented exception is
// [ArrayToCollectionOf], which rejects only nil input. [ToMap]
// additionally returns [ErrKeyCollision] when two elements produce the
// same key.
//
// # Mutation
//
// [SortBy], [SortByWeightedSum] and the pre-sorting grouping variants
// ([GroupBySorted], [GroupProjectSorted]) sort the input slice in
// place; treat them as destructive. All other operations leave their
// inputs untouched and allocate fresh outputs.
//
// # Ordered map results
//
// The map-sorting operations [SortMapByKey] and [SortMapByValue]
// return an insertion-ordered [orderedmap.Map], since Go's built-in
// map has no iteration order to preserve.
package streams
