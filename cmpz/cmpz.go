// Package cmpz provides comparators that can be passed to sorting and
// min/max helpers.
//
// Absent values are modelled with [mo.Option] and always sort before
// present values.
package cmpz

import (
	"cmp"

	"github.com/samber/mo"
)

// Comparator returns a negative number when a < b, zero when a == b
// and a positive number when a > b, like [cmp.Compare].
type Comparator[T any] func(a, b T) int

// Comparable is implemented by types that know their own natural order,
// such as [time.Time].
type Comparable[T any] interface {
	Compare(T) int
}

// Natural returns the natural order for optional values.
// None is less than any Some, and two Nones are equal.
// It is the order used by seqz.SortOptional, seqz.MinOptional and
// seqz.MaxOptional.
func Natural[T cmp.Ordered]() Comparator[mo.Option[T]] {
	return NullsFirst[T](cmp.Compare[T])
}

// Compare compares a and b with [Natural].
func Compare[T cmp.Ordered](a, b mo.Option[T]) int {
	return Natural[T]()(a, b)
}

// NaturalPtr is like [Natural], but for pointers.
// The same pointer is always equal to itself and is never dereferenced.
func NaturalPtr[T cmp.Ordered]() Comparator[*T] {
	return func(a, b *T) int {
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		case b == nil:
			return 1
		}
		return cmp.Compare(*a, *b)
	}
}

// NullsFirst lifts c to optional values, sorting None before everything else.
func NullsFirst[T any](c Comparator[T]) Comparator[mo.Option[T]] {
	return func(a, b mo.Option[T]) int {
		av, aok := a.Get()
		bv, bok := b.Get()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		return c(av, bv)
	}
}

// FromComparable returns a comparator that delegates to the Compare method of T.
func FromComparable[T Comparable[T]]() Comparator[T] {
	return func(a, b T) int {
		return a.Compare(b)
	}
}

// Reverse returns the reverse order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}
