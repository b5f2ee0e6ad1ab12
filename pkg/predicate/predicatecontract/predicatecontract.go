package predicatecontract

import (
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/cmpkit/pkg/predicate"
)

type EquivalenceSubject[T any] struct {
	Got       predicate.Func[T]
	Want      predicate.Func[T]
	MakeValue func(testing.TB) T
}

// Equivalence asserts that two predicates give the same verdict for arbitrary values.
func Equivalence[T any](mk contract.Make[EquivalenceSubject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) EquivalenceSubject[T] {
		return mk(t)
	})

	s.Test("predicates agree on arbitrary values", func(t *testcase.T) {
		sub := subject.Get(t)
		t.Random.Repeat(16, 32, func() {
			v := sub.MakeValue(t)
			assert.Equal(t, sub.Want(v), sub.Got(v))
		})
	})

	s.Test("predicates are deterministic", func(t *testcase.T) {
		sub := subject.Get(t)
		v := sub.MakeValue(t)
		assert.Equal(t, sub.Got(v), sub.Got(v))
	})

	return s.AsSuite("equivalence")
}
