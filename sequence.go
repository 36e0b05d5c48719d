package folds

import "iter"

// Sequence is an ordered, finite collection of elements.
//
// Implementations traverse their elements strictly left to right, in storage
// order, and report their element count. A sequence, once constructed, must
// not be mutated for the duration of any fold over it; no sequence owns the
// accumulators threaded through it.
//
// Three shapes are provided by this package: Slice, List and Counted. Folds
// and concatenations behave identically for sequences of equal ordered
// contents, regardless of shape.
type Sequence[T any] interface {
	// All returns an iterator over the elements in storage order.
	All() iter.Seq[T]
	// Len returns the number of elements.
	Len() int
}

// Slice is the contiguous-array sequence shape.
//
// The zero value is a valid empty sequence.
type Slice[T any] []T

// FromSlice creates a sequence backed by xs.
//
// The slice is not copied; callers must not mutate it while folding.
func FromSlice[T any](xs []T) Slice[T] {
	return Slice[T](xs)
}

// All returns an iterator over the slice elements in storage order.
func (s Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s {
			if !yield(x) {
				return
			}
		}
	}
}

// Len returns the number of elements.
func (s Slice[T]) Len() int {
	return len(s)
}

// Counted is the counted-array sequence shape: a backing store paired with
// an explicit element count. Elements beyond the count are ignored.
//
// Counted has the same traversal semantics as Slice, with a distinct
// representation.
type Counted[T any] struct {
	data  []T
	count int
}

// FromCounted creates a counted-array sequence over the first count elements
// of data.
//
// Returns ErrIllegalArguments if count is negative or exceeds len(data).
func FromCounted[T any](data []T, count int) (Counted[T], error) {
	if count < 0 || count > len(data) {
		return Counted[T]{}, ErrIllegalArguments
	}
	return Counted[T]{data: data, count: count}, nil
}

// All returns an iterator over the counted elements in storage order.
func (c Counted[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < c.count; i++ {
			if !yield(c.data[i]) {
				return
			}
		}
	}
}

// Len returns the element count.
func (c Counted[T]) Len() int {
	return c.count
}
