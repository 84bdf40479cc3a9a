package seqz

import (
	"cmp"
	"iter"

	"github.com/samber/mo"

	"github.com/adobaai/functional/cmpz"
)

// Reduce folds source from the left using its first element as the seed:
//
//	(a, b, c, d) -> f(f(f(a, b), c), d)
//
// It returns None for an empty source, and the only element of a
// single-element source without calling accumulator.
func Reduce[T any](accumulator Func2[T, T, T], source iter.Seq[T]) (res mo.Option[T], err error) {
	if accumulator == nil {
		return res, nilArg("accumulator")
	}
	if source == nil {
		return
	}
	first := true
	var acc T
	for v := range source {
		if first {
			acc, first = v, false
			continue
		}
		acc = accumulator(acc, v)
	}
	if first {
		return
	}
	return mo.Some(acc), nil
}

// Fold folds source from the left starting with initial:
//
//	(a, b, c, d), init -> f(f(f(f(init, a), b), c), d)
//
// Also known as accumulate or inject. It returns initial for an empty source.
func Fold[T, R any](accumulator Func2[R, T, R], source iter.Seq[T], initial R) (R, error) {
	if accumulator == nil {
		return initial, nilArg("accumulator")
	}
	if source == nil {
		return initial, nil
	}
	acc := initial
	for v := range source {
		acc = accumulator(acc, v)
	}
	return acc, nil
}

// Min returns the smallest element of source in natural order.
func Min[T cmp.Ordered](source iter.Seq[T]) mo.Option[T] {
	res, _ := MinFunc(source, cmp.Compare[T])
	return res
}

// MinFunc returns the smallest element of source according to c.
// When several elements are equally small, the first one wins.
func MinFunc[T any](source iter.Seq[T], c cmpz.Comparator[T]) (mo.Option[T], error) {
	if c == nil {
		return mo.None[T](), nilArg("comparator")
	}
	return Reduce(func(a, b T) T {
		if c(a, b) <= 0 {
			return a
		}
		return b
	}, source)
}

// Max returns the largest element of source in natural order.
func Max[T cmp.Ordered](source iter.Seq[T]) mo.Option[T] {
	res, _ := MaxFunc(source, cmp.Compare[T])
	return res
}

// MaxFunc returns the largest element of source according to c.
// When several elements are equally large, the last one wins.
func MaxFunc[T any](source iter.Seq[T], c cmpz.Comparator[T]) (mo.Option[T], error) {
	if c == nil {
		return mo.None[T](), nilArg("comparator")
	}
	return Reduce(func(a, b T) T {
		if c(a, b) > 0 {
			return a
		}
		return b
	}, source)
}

// MinOptional returns the smallest optional value in natural order.
// A None element is smaller than any Some.
func MinOptional[T cmp.Ordered](source iter.Seq[mo.Option[T]]) mo.Option[mo.Option[T]] {
	res, _ := MinFunc(source, cmpz.Natural[T]())
	return res
}

// MaxOptional returns the largest optional value in natural order.
func MaxOptional[T cmp.Ordered](source iter.Seq[mo.Option[T]]) mo.Option[mo.Option[T]] {
	res, _ := MaxFunc(source, cmpz.Natural[T]())
	return res
}
