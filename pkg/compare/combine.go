package compare

import "slices"

// Combine folds rules into a single lexicographic ordering.
//
// The first rule decides; each following rule is consulted only
// when every rule before it found the two values equal.
// With no rules, the result is Indifferent.
// Nil rules are skipped.
//
// Combine is associative, so grouping the rules differently
// never changes the resulting order, only their sequence does.
func Combine[T any](rules ...Func[T]) Func[T] {
	rules = compact(rules)
	if len(rules) == 0 {
		return Indifferent[T]()
	}
	return func(a, b T) int {
		return lexicographic(rules, a, b)
	}
}

// Rules is an ordered list of orderings where the position of a rule is its priority.
//
// Rules is a value: Append, Prepend and Without return a new list
// and leave the receiver and any list derived from it untouched.
// The zero value is an empty list.
type Rules[T any] struct {
	rules []Func[T]
}

func NewRules[T any](rules ...Func[T]) Rules[T] {
	return Rules[T]{rules: compact(rules)}
}

func (rs Rules[T]) Len() int {
	return len(rs.rules)
}

// Append returns a new list with the rules added as the lowest priority tie-breakers.
func (rs Rules[T]) Append(rules ...Func[T]) Rules[T] {
	return Rules[T]{rules: slices.Concat(rs.rules, compact(rules))}
}

// Prepend returns a new list with the rules added as the highest priority ones.
func (rs Rules[T]) Prepend(rules ...Func[T]) Rules[T] {
	return Rules[T]{rules: slices.Concat(compact(rules), rs.rules)}
}

// Without returns a new list without the rule at index i.
// It panics if i is out of range.
func (rs Rules[T]) Without(i int) Rules[T] {
	return Rules[T]{rules: slices.Delete(slices.Clone(rs.rules), i, i+1)}
}

func (rs Rules[T]) Compare(a, b T) int {
	return lexicographic(rs.rules, a, b)
}

// Func returns the combined ordering of the list.
func (rs Rules[T]) Func() Func[T] {
	return Combine(rs.rules...)
}

func lexicographic[T any](rules []Func[T], a, b T) int {
	for _, rule := range rules {
		if c := rule(a, b); c != 0 {
			return Sign(c)
		}
	}
	return 0
}

func compact[T any](rules []Func[T]) []Func[T] {
	var out = make([]Func[T], 0, len(rules))
	for _, rule := range rules {
		if rule != nil {
			out = append(out, rule)
		}
	}
	return out
}
