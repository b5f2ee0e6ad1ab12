// Package comparecontract holds the behavioural laws of orderings as reusable testing contracts.
//
// A broken ordering is not detected by compare at runtime,
// it only shows up as an inconsistent sort result.
// Run these contracts against the orderings of your domain to catch such mistakes early.
package comparecontract

import (
	"slices"
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/cmpkit/pkg/compare"
)

type Subject[T any] struct {
	Ordering compare.Func[T]
	// MakeValue returns an arbitrary value of T.
	// Picking from a small pool of values makes ties more frequent,
	// which is useful when the ordering is built from several rules.
	MakeValue func(testing.TB) T
}

// Ordering asserts that the subject is a valid total order.
func Ordering[T any](mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	sample := func(t *testcase.T, blk func(a, b, c T)) {
		sub := subject.Get(t)
		t.Random.Repeat(16, 32, func() {
			blk(sub.MakeValue(t), sub.MakeValue(t), sub.MakeValue(t))
		})
	}

	s.Test("reflexive: a value is equal to itself", func(t *testcase.T) {
		cmp := subject.Get(t).Ordering
		sample(t, func(a, _, _ T) {
			assert.Equal(t, 0, cmp.Compare(a, a))
		})
	})

	s.Test("antisymmetric: swapping the arguments flips the result", func(t *testcase.T) {
		cmp := subject.Get(t).Ordering
		sample(t, func(a, b, _ T) {
			assert.Equal(t, cmp.Compare(a, b), -cmp.Compare(b, a))
		})
	})

	s.Test("transitive: a sorted triple stays consistent", func(t *testcase.T) {
		cmp := subject.Get(t).Ordering
		sample(t, func(a, b, c T) {
			vs := []T{a, b, c}
			slices.SortStableFunc(vs, cmp)
			x, y, z := vs[0], vs[1], vs[2]
			assert.True(t, cmp(x, y) <= 0)
			assert.True(t, cmp(y, z) <= 0)
			assert.True(t, cmp(x, z) <= 0)
			if cmp(x, y) == 0 && cmp(y, z) == 0 {
				assert.Equal(t, 0, cmp.Compare(x, z), "equality should be transitive")
			}
		})
	})

	return s.AsSuite("ordering")
}

type EquivalenceSubject[T any] struct {
	Got       compare.Func[T]
	Want      compare.Func[T]
	MakeValue func(testing.TB) T
}

// Equivalence asserts that two orderings order every pair of values the same way.
// It is the tool to check the algebraic laws of By and Combine.
func Equivalence[T any](mk contract.Make[EquivalenceSubject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) EquivalenceSubject[T] {
		return mk(t)
	})

	s.Test("orderings agree on arbitrary pairs", func(t *testcase.T) {
		sub := subject.Get(t)
		t.Random.Repeat(16, 32, func() {
			a, b := sub.MakeValue(t), sub.MakeValue(t)
			assert.Equal(t, sub.Want.Compare(a, b), sub.Got.Compare(a, b))
			assert.Equal(t, sub.Want.Compare(b, a), sub.Got.Compare(b, a))
		})
	})

	s.Test("orderings agree on a value compared with itself", func(t *testcase.T) {
		sub := subject.Get(t)
		v := sub.MakeValue(t)
		assert.Equal(t, sub.Want.Compare(v, v), sub.Got.Compare(v, v))
	})

	return s.AsSuite("equivalence")
}
