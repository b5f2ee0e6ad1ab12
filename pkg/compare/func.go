package compare

import "go.llib.dev/frameless/pkg/errorkit"

const ErrNilFunc errorkit.Error = "ErrNilFunc"

// Func is an ordering over T.
//
// A valid Func is reflexive, antisymmetric and transitive,
// and it must be deterministic for the same pair of values.
// Func values are immutable, so they are safe to share between goroutines.
type Func[T any] func(a, b T) int

// Compare returns the normalised comparison result of a and b.
func (fn Func[T]) Compare(a, b T) int {
	return Sign(fn(a, b))
}

// Less reports whether a sorts before b.
// It lets a Func be used with less-function based sorting such as sort.Slice.
func (fn Func[T]) Less(a, b T) bool {
	return fn(a, b) < 0
}

// Then returns an ordering that uses next only when fn considers two values equal.
func (fn Func[T]) Then(next Func[T]) Func[T] {
	return Combine(fn, next)
}

// Reverse flips the direction of an ordering.
func Reverse[T any](fn Func[T]) Func[T] {
	if fn == nil {
		panic(ErrNilFunc.F("compare.Reverse requires an ordering"))
	}
	return func(a, b T) int {
		return Sign(fn(b, a))
	}
}

// Indifferent is the ordering that considers every pair of values equal.
// It is the identity element of Combine.
func Indifferent[T any]() Func[T] {
	return func(a, b T) int { return 0 }
}
