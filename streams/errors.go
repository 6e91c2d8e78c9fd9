package streams

import "errors"

// Sentinel errors returned by streams operations.
var (
	// ErrEmptyInput is returned when an operation receives a nil or
	// empty input slice or map. Extremum lookups (MaxBy, MinBy) return
	// the same error for empty input; there is no finer-grained
	// "no extremum" error, since a non-empty input always has one.
	ErrEmptyInput = errors.New("streams: nil or empty input")

	// ErrKeyCollision is returned by ToMap when two elements produce
	// the same key.
	ErrKeyCollision = errors.New("streams: duplicate key")

	// ErrInvalidOperation is returned when a MergeOp other than Sum or
	// Average is supplied.
	ErrInvalidOperation = errors.New("streams: invalid merging operation")
)
