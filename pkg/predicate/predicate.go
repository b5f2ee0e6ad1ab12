// Package predicate
//
// This package provides boolean tests over values,
// and the tools to lift and combine them into the filtering rules of a domain.
//
// # Predicates
//
// A predicate is a function that returns a boolean result about a property of a value.
// Predicates defined for a field type can be reused for the type holding the field with By,
// and a rule list of predicates can be folded into one with All or Any.
// The resulting Func is meant to be handed to a filtering routine, like slices.DeleteFunc.
package predicate

import (
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/cmpkit/pkg/compare"
)

const ErrNilFunc errorkit.Error = "ErrNilFunc"

// Equalable defines custom equality semantics for a type.
//
// An implementation of Equalable allows a type to define how semantic equality
// is determined, distinct from Go's syntax-level equality operator (==).
// This is useful for encapsulated types, domain-specific values, or situations
// where reference equality differs from logical equivalence.
type Equalable[T any] interface {
	// Equal will perform semantic equality checking.
	Equal(oth T) bool
}

// Func is a boolean test over T.
// It must be deterministic, and it is expected to be free of side effects.
type Func[T any] func(v T) bool

func (fn Func[T]) Test(v T) bool {
	return fn(v)
}

// Identity is the predicate of a boolean field.
func Identity[B ~bool](v B) bool {
	return bool(v)
}

// Is tests a boolean field of T.
func Is[T any](field func(T) bool) Func[T] {
	return By[T, bool](Identity[bool], field)
}

func Not[T any](fn Func[T]) Func[T] {
	if fn == nil {
		panic(ErrNilFunc.F("predicate.Not requires a predicate"))
	}
	return func(v T) bool { return !fn(v) }
}

// Always is the predicate that accepts every value.
// It is the identity element of All.
func Always[T any]() Func[T] {
	return func(T) bool { return true }
}

// Never is the predicate that rejects every value.
// It is the identity element of Any.
func Never[T any]() Func[T] {
	return func(T) bool { return false }
}

func Equal[T comparable](expected T) Func[T] {
	return func(v T) bool { return v == expected }
}

// EqualTo uses the semantic equality of T.
func EqualTo[T Equalable[T]](expected T) Func[T] {
	return func(v T) bool { return v.Equal(expected) }
}

// Compared tests a value against a reference value with an ordering.
// The accept function receives the comparison result of the value and the reference,
// so compare.IsLess, compare.IsMoreOrEqual and friends can be used directly.
//
//	atLeastFour := predicate.Compared(compare.Numbers[float64], 4, compare.IsMoreOrEqual)
func Compared[T any](ordering compare.Func[T], reference T, accept func(cmp int) bool) Func[T] {
	if ordering == nil {
		panic(ErrNilFunc.F("predicate.Compared requires an ordering"))
	}
	if accept == nil {
		panic(ErrNilFunc.F("predicate.Compared requires an accept function"))
	}
	return func(v T) bool {
		return accept(ordering.Compare(v, reference))
	}
}

// By lifts a predicate over U into a predicate over T,
// by testing the U value that mapping derives from the T value.
// The mapping must be pure and deterministic.
func By[T, U any](base Func[U], mapping func(T) U) Func[T] {
	if base == nil {
		panic(ErrNilFunc.F("predicate.By requires a base predicate"))
	}
	if mapping == nil {
		panic(ErrNilFunc.F("predicate.By requires a mapping function"))
	}
	return func(v T) bool {
		return base(mapping(v))
	}
}
