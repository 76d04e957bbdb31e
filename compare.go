package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same length and equal elements
// in the same order. A nil vector equals an empty one.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders a and b lexicographically and returns -1, 0 or +1.
// A vector that is a strict prefix of the other compares less.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

// Less reports whether a sorts before b. LessOrEqual, Greater and
// GreaterOrEqual are derived from it.
func Less[T constraints.Ordered](a, b *Vector[T]) bool           { return Compare(a, b) < 0 }
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool    { return !Less(b, a) }
func Greater[T constraints.Ordered](a, b *Vector[T]) bool        { return Less(b, a) }
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool { return !Less(a, b) }

// IndexOf returns the index of the first element equal to x, or -1.
func IndexOf[T comparable](v *Vector[T], x T) int {
	return slices.Index(v.Slice(), x)
}

// Contains reports whether x is among the live elements of v.
func Contains[T comparable](v *Vector[T], x T) bool {
	return IndexOf(v, x) >= 0
}
