// Package compare provides three-way comparison functions
// and the tools to derive new orderings from existing ones.
//
// An ordering is a plain function value that returns:
//
//	-1 if a is less than b,
//	 0 if they are equal, and
//	+1 if a is greater than b.
//
// Orderings over a field type can be lifted to the type that holds the field with By,
// and several orderings can be folded into a single multi-criterion ordering with Combine.
// The resulting Func can be handed to any sort routine, like slices.SortFunc.
package compare

import (
	"cmp"
	"strings"
	"time"

	"go.llib.dev/cmpkit/internal/constraints"
)

// Interface defines how comparison can be implemented.
//
// Types implementing this interface must provide a Compare method that defines the ordering or equivalence of values.
// This pattern is useful when working with:
// 1. Custom user-defined types requiring comparison logic
// 2. Encapsulated values needing semantic comparisons
// 3. Comparison-agnostic systems (e.g., sorting algorithms)
//
// Example usage:
//
//	type MyNumber int
//
//	func (m MyNumber) Compare(other MyNumber) int {
//		if m < other {
//			return -1
//		}
//		if other < m {
//			return +1
//		}
//		return 0
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

type ShortInterface[T any] interface {
	// Cmp compares x and y and returns:
	//   - -1 if x  < y;
	//   -  0 if x == y;
	//   - +1 if x  > y.
	Cmp(T) int
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

// IsGreater reports whether the receiver is greater than another value.
func IsGreater(cmp int) bool {
	return IsMore(cmp)
}

// IsGreaterOrEqual reports whether the receiver is greater than or equal to another value.
func IsGreaterOrEqual(cmp int) bool {
	return IsMoreOrEqual(cmp)
}

// Sign normalises a comparison result into -1, 0 or +1.
func Sign(cmp int) int {
	switch {
	case cmp < 0:
		return -1
	case cmp > 0:
		return 1
	default:
		return 0
	}
}

// Numbers orders any integer or float kind.
// NaN is considered equal to NaN and less than any other value,
// which keeps the ordering total for floats as well.
func Numbers[T constraints.Number](a, b T) int {
	var (
		aNaN = a != a
		bNaN = b != b
	)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Bools orders false before true.
func Bools[B ~bool](a, b B) int {
	switch {
	case a == b:
		return 0
	case !bool(a):
		return -1
	default:
		return 1
	}
}

func Times(a, b time.Time) int {
	return a.Compare(b)
}

// Ordered uses the natural order of any type that supports the < operator.
func Ordered[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Comparable orders values by their own Compare method.
func Comparable[T Interface[T]](a, b T) int {
	return Sign(a.Compare(b))
}

// Short orders values by their own Cmp method, like *big.Int.
func Short[T ShortInterface[T]](a, b T) int {
	return Sign(a.Cmp(b))
}
