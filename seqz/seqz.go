// Package seqz provides lazy combinators over [iter.Seq].
//
// A nil sequence is treated as an empty one by every function in this package.
// The sequences returned by [ZipWith], [Select], [Where] and [Sort] are not
// memoized: every range over them evaluates their sources again, so they
// always reflect the current state of what they wrap. Collect the result with
// [Collect] if a stable snapshot is needed.
//
// A nil function argument is reported with [ErrInvalidArgument] when the
// combinator is called, never later while ranging.
package seqz

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/samber/mo"
)

// ErrInvalidArgument is returned when a required function argument is nil.
var ErrInvalidArgument = errors.New("seqz: invalid argument")

// Func2 is a function of two arguments.
type Func2[A, B, R any] func(A, B) R

func nilArg(name string) error {
	return fmt.Errorf("%w: %s is nil", ErrInvalidArgument, name)
}

// Empty returns a sequence that yields nothing.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Of returns a sequence over items.
func Of[T any](items ...T) iter.Seq[T] {
	return slices.Values(items)
}

// Collect gathers seq into a new slice, which is never nil.
func Collect[T any](seq iter.Seq[T]) []T {
	res := []T{}
	if seq == nil {
		return res
	}
	return slices.AppendSeq(res, seq)
}

// First returns the first element of source.
func First[T any](source iter.Seq[T]) mo.Option[T] {
	if source == nil {
		return mo.None[T]()
	}
	for v := range source {
		return mo.Some(v)
	}
	return mo.None[T]()
}

// Count returns the number of elements in source.
func Count[T any](source iter.Seq[T]) (n int) {
	if source == nil {
		return
	}
	for range source {
		n++
	}
	return
}
