/*
Package folds provides generic fold (reduce) abstractions over sequence
shapes, together with a concatenation operation for sequences of textual
fragments.

# Sequences

A Sequence is an ordered, finite collection of elements which can be
traversed strictly left to right. Three concrete shapes are provided:
a contiguous slice, a singly-linked list and a counted array (a backing
store paired with an explicit element count). All three are constructed
by the caller, are immutable for the duration of any fold over them, and
expose the same traversal contract, so every fold- and concat-operation
is independent of the shape a sequence happens to have.

# Folding

Fold threads an accumulator through a reducer function, applying it once
per element in storage order:

	sum := folds.Fold(folds.FromSlice([]int{1, 2, 3, 4}), 0,
		func(acc int, x int) int { return acc + x })

An empty (or absent) sequence returns the initial accumulator unchanged.
FoldMonoid covers the frequent case of reducers which combine
accumulator values as a monoid.

# Concatenation

Textual elements implement the Fragment interface, exposing their byte
length and the ability to append their bytes to a write cursor. Concat
joins a fragment sequence into one string with a single exact allocation:
a first fold measures the total length, a second fold copies fragments
into the buffer.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package folds

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'folds'
func tracer() tracing.Trace {
	return tracing.Select("folds")
}
