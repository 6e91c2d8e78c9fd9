package streams

import "fmt"

// MergeOp selects how the numeric selector results of a sequence (or
// of a group) are combined by [MergeReduce] and [GroupAggregate].
type MergeOp int

const (
	// Sum combines the selector results into their plain total.
	Sum MergeOp = iota

	// Average combines the selector results into the total divided by
	// the element count.
	Average
)

// String returns "sum" or "average".
func (op MergeOp) String() string {
	switch op {
	case Sum:
		return "sum"
	case Average:
		return "average"
	default:
		return fmt.Sprintf("MergeOp(%d)", int(op))
	}
}

// MergeReduce computes, for each element, the sum of the values
// extracted by keys, then reduces across the whole sequence according
// to op: the plain total for [Sum], the total divided by the element
// count for [Average].
//
// Returns [ErrEmptyInput] for a nil or empty input (the precondition
// check, not a special case, is what keeps Average from dividing by
// zero) and [ErrInvalidOperation] for an unknown op.
func MergeReduce[T any](items []T, op MergeOp, keys ...func(T) float64) (float64, error) {
	if len(items) == 0 {
		return 0, ErrEmptyInput
	}
	var total float64
	for _, item := range items {
		total += weightedSum(item, false, keys)
	}
	switch op {
	case Sum:
		return total, nil
	case Average:
		return total / float64(len(items)), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidOperation, op)
	}
}

// Summary holds the summary statistics of the numeric values extracted
// from a sequence by [SummaryStatistics].
type Summary struct {
	Count int
	Sum   float64
	Min   float64
	Max   float64
	Mean  float64
}

// SummaryStatistics returns the count, sum, minimum, maximum and mean
// of the values extracted by key. Defined only for non-empty input;
// returns [ErrEmptyInput] otherwise.
func SummaryStatistics[T any](items []T, key func(T) float64) (Summary, error) {
	if len(items) == 0 {
		return Summary{}, ErrEmptyInput
	}
	first := key(items[0])
	s := Summary{Count: len(items), Sum: first, Min: first, Max: first}
	for _, item := range items[1:] {
		v := key(item)
		s.Sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = s.Sum / float64(s.Count)
	return s, nil
}
