// Package collection provides some useful functions for working with slices.
//
// The functions here are eager: they take slices, return slices and are
// built on top of the lazy combinators in [github.com/adobaai/functional/seqz].
// A nil slice is treated as an empty one.
//
// Many languages have their own collection library:
//   - C#: https://learn.microsoft.com/en-us/dotnet/api/system.linq.enumerable
//   - Kotlin: https://kotlinlang.org/api/latest/jvm/stdlib/kotlin.collections/
//   - Haskell: https://hackage.haskell.org/package/base/docs/Data-List.html
package collections

import (
	"cmp"
	"slices"

	"github.com/samber/mo"

	"github.com/adobaai/functional/cmpz"
	"github.com/adobaai/functional/seqz"
)

// Filter returns the items predicate returns true for, in order.
func Filter[V any](items []V, predicate func(it V) bool) ([]V, error) {
	seq, err := seqz.Where(predicate, slices.Values(items))
	if err != nil {
		return nil, err
	}
	return seqz.Collect(seq), nil
}

// Map returns a slice containing the results of applying the given transform function
// to each item in the original slice.
func Map[T, R any](items []T, transform func(it T) R) ([]R, error) {
	seq, err := seqz.Select(transform, slices.Values(items))
	if err != nil {
		return nil, err
	}
	return seqz.Collect(seq), nil
}

// ZipWith returns combine(a[i], b[i]) for every index both slices have.
func ZipWith[A, B, R any](combine seqz.Func2[A, B, R], a []A, b []B) ([]R, error) {
	seq, err := seqz.ZipWith(combine, slices.Values(a), slices.Values(b))
	if err != nil {
		return nil, err
	}
	return seqz.Collect(seq), nil
}

// Sorted returns a sorted copy of items.
func Sorted[T cmp.Ordered](items []T) []T {
	return seqz.Collect(seqz.Sort(slices.Values(items)))
}

// SortedFunc returns a copy of items stably sorted by c.
func SortedFunc[T any](items []T, c cmpz.Comparator[T]) ([]T, error) {
	seq, err := seqz.SortFunc(slices.Values(items), c)
	if err != nil {
		return nil, err
	}
	return seqz.Collect(seq), nil
}

// Reduce folds items from the left, seeded with the first item.
func Reduce[T any](items []T, accumulator seqz.Func2[T, T, T]) (mo.Option[T], error) {
	return seqz.Reduce(accumulator, slices.Values(items))
}

// Fold folds items from the left, starting with initial.
func Fold[T, R any](items []T, accumulator seqz.Func2[R, T, R], initial R) (R, error) {
	return seqz.Fold(accumulator, slices.Values(items), initial)
}

// Min returns the first of the smallest items in natural order.
func Min[T cmp.Ordered](items []T) mo.Option[T] {
	return seqz.Min(slices.Values(items))
}

// Max returns the last of the largest items in natural order.
func Max[T cmp.Ordered](items []T) mo.Option[T] {
	return seqz.Max(slices.Values(items))
}

// MinFunc returns the first of the smallest items.
func MinFunc[T any](items []T, c cmpz.Comparator[T]) (mo.Option[T], error) {
	return seqz.MinFunc(slices.Values(items), c)
}

// MaxFunc returns the last of the largest items.
func MaxFunc[T any](items []T, c cmpz.Comparator[T]) (mo.Option[T], error) {
	return seqz.MaxFunc(slices.Values(items), c)
}
