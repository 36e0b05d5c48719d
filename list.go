package folds

import "iter"

// List is the singly-linked sequence shape. Each node owns one element value
// and a reference to the next node; a nil *List is the empty sequence.
//
// Lists share structure: Cons prepends without copying the tail, so a tail
// may be part of several lists at once. This is safe because list nodes are
// immutable after construction.
type List[T any] struct {
	value T
	next  *List[T]
}

// NewList creates a list holding items in the given order.
func NewList[T any](items ...T) *List[T] {
	var head *List[T]
	for i := len(items) - 1; i >= 0; i-- {
		head = Cons(items[i], head)
	}
	return head
}

// Cons creates a new list node with value in front of tail.
func Cons[T any](value T, tail *List[T]) *List[T] {
	return &List[T]{value: value, next: tail}
}

// Value returns the element stored in the head node.
func (l *List[T]) Value() T {
	if l == nil {
		var zero T
		return zero
	}
	return l.value
}

// Tail returns the list without its head node, possibly nil.
func (l *List[T]) Tail() *List[T] {
	if l == nil {
		return nil
	}
	return l.next
}

// All returns an iterator over the list elements from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

// Len returns the number of list nodes.
func (l *List[T]) Len() int {
	n := 0
	for node := l; node != nil; node = node.next {
		n++
	}
	return n
}
