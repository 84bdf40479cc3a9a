// Package testingz provides helpers to write concise assertions on the
// results of seqz and collections functions.
package testingz

import (
	"iter"
	"slices"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/require"
)

// Result wraps a (value, error) pair.
type Result[T any] struct {
	t   *testing.T
	v   T
	err error
}

func R[T any](v T, err error) *Result[T] {
	return &Result[T]{
		v:   v,
		err: err,
	}
}

func (r *Result[T]) V() T {
	return r.v
}

func (r *Result[T]) NoError(t *testing.T, msgf ...any) *Result[T] {
	require.NoError(t, r.err, msgf...)
	r.t = t
	return r
}

func (r *Result[T]) ErrorIs(t *testing.T, target error, msgf ...any) *Result[T] {
	require.ErrorIs(t, r.err, target, msgf...)
	r.t = t
	return r
}

func (r *Result[T]) ErrorContains(t *testing.T, s string, msgf ...any) *Result[T] {
	require.ErrorContains(t, r.err, s, msgf...)
	r.t = t
	return r
}

func (r *Result[T]) Equal(v T, msgf ...any) *Result[T] {
	require.Equal(r.t, v, r.v, msgf...)
	return r
}

func (r *Result[T]) Do(f func(t *testing.T, it T)) *Result[T] {
	f(r.t, r.v)
	return r
}

// S collects seq into a slice and wraps it with err.
// A nil sequence collects to an empty slice.
func S[T any](seq iter.Seq[T], err error) *Result[[]T] {
	res := []T{}
	if seq != nil {
		res = slices.AppendSeq(res, seq)
	}
	return R(res, err)
}

// Option wraps a ([mo.Option], error) pair.
type Option[T any] struct {
	t   *testing.T
	o   mo.Option[T]
	err error
}

func O[T any](o mo.Option[T], err error) *Option[T] {
	return &Option[T]{
		o:   o,
		err: err,
	}
}

func (o *Option[T]) NoError(t *testing.T, msgf ...any) *Option[T] {
	require.NoError(t, o.err, msgf...)
	o.t = t
	return o
}

func (o *Option[T]) ErrorIs(t *testing.T, target error, msgf ...any) *Option[T] {
	require.ErrorIs(t, o.err, target, msgf...)
	o.t = t
	return o
}

// Some requires the option to hold v.
func (o *Option[T]) Some(v T, msgf ...any) *Option[T] {
	got, ok := o.o.Get()
	require.True(o.t, ok, msgf...)
	require.Equal(o.t, v, got, msgf...)
	return o
}

// None requires the option to be empty.
func (o *Option[T]) None(msgf ...any) *Option[T] {
	require.True(o.t, o.o.IsAbsent(), msgf...)
	return o
}

// V returns the value of the option, failing the test if it is empty.
func (o *Option[T]) V() T {
	v, ok := o.o.Get()
	require.True(o.t, ok, "option is empty")
	return v
}
