package counters

import (
	"github.com/npillmayer/folds"
)

// Length returns a reducer accumulating the total byte length of textual
// fragments. Folding a fragment sequence with it yields the exact size of
// the sequence's concatenation.
func Length[F folds.Fragment]() folds.Reducer[int, F] {
	return func(acc int, frag F) int {
		return acc + frag.Len()
	}
}

// Count returns a reducer counting the elements of a sequence, regardless of
// their type.
func Count[T any]() folds.Reducer[int, T] {
	return func(acc int, _ T) int {
		return acc + 1
	}
}

// Numeric constrains Sum to built-in number types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns the addition reducer over a numeric element type.
func Sum[N Numeric]() folds.Reducer[N, N] {
	return func(acc N, x N) N {
		return acc + x
	}
}
