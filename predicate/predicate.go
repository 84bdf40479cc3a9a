// Package predicate composes boolean functions.
package predicate

// Predicate reports whether v matches.
type Predicate[T any] func(v T) bool

// Always matches everything.
func Always[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// Never matches nothing.
func Never[T any]() Predicate[T] {
	return func(T) bool { return false }
}

// And matches when all ps match, evaluating them left to right and
// stopping at the first one that does not. And() matches everything.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or matches when any of ps matches, stopping at the first one that does.
// Or() matches nothing.
func Or[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Not matches when p does not.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// Field matches when the field extracted by get satisfies p.
func Field[T, F any](get func(T) F, p Predicate[F]) Predicate[T] {
	return func(v T) bool { return p(get(v)) }
}

// EQ matches values equal to want.
func EQ[T comparable](want T) Predicate[T] {
	return func(v T) bool { return v == want }
}
