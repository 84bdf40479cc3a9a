package seqz

import (
	"iter"
)

// ZipWith yields combine(a[i], b[i]) for as long as both a and b have elements,
// stopping at the shorter one. Inspired by Haskell's zipWith.
func ZipWith[A, B, R any](combine Func2[A, B, R], a iter.Seq[A], b iter.Seq[B]) (iter.Seq[R], error) {
	if combine == nil {
		return nil, nilArg("combine")
	}
	if a == nil || b == nil {
		return Empty[R](), nil
	}
	return func(yield func(R) bool) {
		next, stop := iter.Pull(b)
		defer stop()
		for va := range a {
			vb, ok := next()
			if !ok || !yield(combine(va, vb)) {
				return
			}
		}
	}, nil
}

// Select yields selector(v) for every v in source, keeping order and count.
//
// The function comes first so that a selector can be partially applied
// ahead of the source.
func Select[T, R any](selector func(T) R, source iter.Seq[T]) (iter.Seq[R], error) {
	if selector == nil {
		return nil, nilArg("selector")
	}
	if source == nil {
		return Empty[R](), nil
	}
	return func(yield func(R) bool) {
		for v := range source {
			if !yield(selector(v)) {
				return
			}
		}
	}, nil
}

// Where yields the elements of source for which predicate returns true.
func Where[T any](predicate func(T) bool, source iter.Seq[T]) (iter.Seq[T], error) {
	if predicate == nil {
		return nil, nilArg("predicate")
	}
	if source == nil {
		return Empty[T](), nil
	}
	return func(yield func(T) bool) {
		for v := range source {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}, nil
}
