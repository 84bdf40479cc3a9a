package collections

import (
	"cmp"
	"strconv"
	"strings"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"github.com/adobaai/functional/cmpz"
	"github.com/adobaai/functional/seqz"
	"github.com/adobaai/functional/testingz"
)

func TestFilter(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6}
	even := func(it int) bool {
		return it%2 == 0
	}
	testingz.R(Filter(list, even)).NoError(t).Equal([]int{2, 4, 6})
	testingz.R(Filter(nil, even)).NoError(t).Equal([]int{})

	assert.NotPanics(t, func() {
		testingz.R(Filter([]int{1}, nil)).ErrorIs(t, seqz.ErrInvalidArgument).ErrorContains(t, "predicate")
	})
}

func TestMap(t *testing.T) {
	ids := []int{1, 2, 3, 4}
	testingz.R(Map(ids, strconv.Itoa)).NoError(t).Equal([]string{"1", "2", "3", "4"})
	testingz.R(Map(nil, strconv.Itoa)).NoError(t).Equal([]string{})

	assert.NotPanics(t, func() {
		testingz.R(Map[int, string]([]int{1}, nil)).ErrorIs(t, seqz.ErrInvalidArgument).ErrorContains(t, "selector")
	})
}

func TestZipWith(t *testing.T) {
	repeat := func(s string, n int) string { return strings.Repeat(s, n) }
	testingz.R(ZipWith(repeat, []string{"a", "b", "c"}, []int{1, 2})).NoError(t).
		Equal([]string{"a", "bb"})
	testingz.R(ZipWith[string, int, string](repeat, nil, []int{1})).NoError(t).Equal([]string{})
	testingz.R(ZipWith[string, int, string](nil, nil, nil)).ErrorIs(t, seqz.ErrInvalidArgument)
}

func TestSorted(t *testing.T) {
	items := []int{3, 1, 2}
	assert.Equal(t, []int{1, 2, 3}, Sorted(items))
	assert.Equal(t, []int{3, 1, 2}, items)
	assert.Equal(t, []int{}, Sorted[int](nil))

	testingz.R(SortedFunc(items, cmpz.Reverse[int](cmp.Compare[int]))).NoError(t).
		Equal([]int{3, 2, 1})
	testingz.R(SortedFunc(items, nil)).ErrorIs(t, seqz.ErrInvalidArgument)
}

func TestReduceFold(t *testing.T) {
	plus := func(a, b int) int { return a + b }
	testingz.O(Reduce([]int{1, 2, 3, 4}, plus)).NoError(t).Some(10)
	testingz.O(Reduce[int](nil, plus)).NoError(t).None()
	testingz.R(Fold[int, int](nil, plus, 99)).NoError(t).Equal(99)
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, mo.Some(3), Min([]int{5, 3, 3, 7}))
	assert.Equal(t, mo.Some(7), Max([]int{5, 3, 3, 7}))
	assert.Equal(t, mo.None[int](), Min[int](nil))

	type kv struct {
		k string
		v int
	}
	byV := func(a, b kv) int { return cmp.Compare(a.v, b.v) }
	items := []kv{{"a", 1}, {"b", 1}}
	testingz.O(MinFunc(items, byV)).NoError(t).Some(kv{"a", 1})
	testingz.O(MaxFunc(items, byV)).NoError(t).Some(kv{"b", 1})
}
