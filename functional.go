// Package functional provides lazy functional combinators for Go sequences.
//
// The combinators live in [github.com/adobaai/functional/seqz], the
// comparators in [github.com/adobaai/functional/cmpz] and eager slice
// helpers in [github.com/adobaai/functional/collections].
package functional

import (
	"iter"
	"slices"
)

// Slice is a generic slice type that allows operations on slices via pointers.
type Slice[T any] []T

func (a *Slice[T]) Append(elems ...T) {
	*a = append(*a, elems...)
}

func (a *Slice[T]) Get() []T {
	return *a
}

// All returns a sequence over the elements the slice holds when it is ranged,
// not when All is called.
func (a *Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range *a {
			if !yield(v) {
				return
			}
		}
	}
}

// Set replaces the element at i.
func (a *Slice[T]) Set(i int, v T) {
	(*a)[i] = v
}

// Clone returns a copy of the current elements.
func (a *Slice[T]) Clone() Slice[T] {
	return slices.Clone(*a)
}
