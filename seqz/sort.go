package seqz

import (
	"cmp"
	"iter"
	"slices"

	"github.com/samber/mo"

	"github.com/adobaai/functional/cmpz"
)

// Sort is like [SortFunc] with the natural order of T.
func Sort[T cmp.Ordered](source iter.Seq[T]) iter.Seq[T] {
	res, _ := SortFunc(source, cmp.Compare[T])
	return res
}

// SortFunc yields the elements of source in ascending order according to c.
//
// Every range copies source and sorts the copy, stably, so equal elements
// keep their source order. A nil c is rejected here instead of on first use.
func SortFunc[T any](source iter.Seq[T], c cmpz.Comparator[T]) (iter.Seq[T], error) {
	if c == nil {
		return nil, nilArg("comparator")
	}
	if source == nil {
		return Empty[T](), nil
	}
	return func(yield func(T) bool) {
		items := slices.Collect(source)
		slices.SortStableFunc(items, c)
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}, nil
}

// SortOptional sorts optional values in natural order, None first.
func SortOptional[T cmp.Ordered](source iter.Seq[mo.Option[T]]) iter.Seq[mo.Option[T]] {
	res, _ := SortFunc(source, cmpz.Natural[T]())
	return res
}
