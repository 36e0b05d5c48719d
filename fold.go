package folds

import "iter"

// Reducer is a binary function mapping an accumulator and an element to a new
// accumulator. Reducers must be pure: folds may be re-run over the same
// sequence (concatenation does so) and expect identical results.
//
// No associativity is required; traversal is always left to right.
type Reducer[A, T any] func(acc A, elem T) A

// Fold reduces a sequence to a single accumulator value.
//
// The sequence is traversed strictly left to right exactly once, threading
// the accumulator through each application of op:
//
//	acc = op(acc, elem)
//
// op is invoked exactly seq.Len() times. A nil or empty sequence returns
// init unchanged, as does a nil reducer.
func Fold[T, A any](seq Sequence[T], init A, op Reducer[A, T]) A {
	if seq == nil || op == nil {
		return init
	}
	return FoldSeq(seq.All(), init, op)
}

// FoldSeq reduces the elements of an iterator, for callers which hold a
// traversal rather than a sequence shape.
func FoldSeq[T, A any](elems iter.Seq[T], init A, op Reducer[A, T]) A {
	acc := init
	if elems == nil || op == nil {
		return acc
	}
	for elem := range elems {
		acc = op(acc, elem)
	}
	return acc
}

// Monoid combines accumulator values with a neutral element.
//
// Add must satisfy Add(Zero(), a) == Add(a, Zero()) == a. Folding with a
// monoid does not require associativity either, since elements are combined
// in storage order only.
type Monoid[A any] interface {
	Zero() A
	Add(left, right A) A
}

// FoldMonoid reduces a sequence under a monoid, measuring each element into
// an accumulator value first.
//
// An empty sequence yields m.Zero().
func FoldMonoid[T, A any](seq Sequence[T], m Monoid[A], measure func(T) A) A {
	if m == nil {
		panic("folds: FoldMonoid requires a monoid")
	}
	if measure == nil {
		return m.Zero()
	}
	return Fold(seq, m.Zero(), func(acc A, elem T) A {
		return m.Add(acc, measure(elem))
	})
}
