package compare

import "cmp"

// By lifts an ordering over U into an ordering over T,
// by comparing the U values that mapping derives from each T value.
//
// The mapping must be pure and deterministic.
// When it is not injective, values that map to the same U compare as equal,
// and a later rule in Combine can break the tie.
func By[T, U any](base Func[U], mapping func(T) U) Func[T] {
	if base == nil {
		panic(ErrNilFunc.F("compare.By requires a base ordering"))
	}
	if mapping == nil {
		panic(ErrNilFunc.F("compare.By requires a mapping function"))
	}
	return func(a, b T) int {
		return base(mapping(a), mapping(b))
	}
}

// ByKey orders T values by the natural order of the key that mapping returns.
func ByKey[T any, K cmp.Ordered](mapping func(T) K) Func[T] {
	return By[T, K](Ordered[K], mapping)
}
