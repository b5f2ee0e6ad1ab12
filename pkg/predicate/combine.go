package predicate

import (
	"fmt"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrUnknownMode errorkit.Error = "ErrUnknownMode"

// Mode tells how a rule list of predicates is combined.
type Mode string

const (
	// ModeAll is logical conjunction.
	ModeAll Mode = "all"
	// ModeAny is logical disjunction.
	ModeAny Mode = "any"
)

func (m Mode) String() string { return string(m) }

func ParseMode(raw string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case ModeAll, ModeAny:
		return mode, nil
	default:
		return "", ErrUnknownMode.F("%q is not one of %q or %q", raw, ModeAll, ModeAny)
	}
}

// Combine folds the rules into a single predicate.
//
// The rules are evaluated from left to right and the evaluation stops
// as soon as the outcome is decided, so put cheap and selective rules first.
// Nil rules are skipped.
// It panics on an unknown Mode.
func Combine[T any](mode Mode, rules ...Func[T]) Func[T] {
	switch mode {
	case ModeAll:
		return All(rules...)
	case ModeAny:
		return Any(rules...)
	default:
		panic(ErrUnknownMode.Wrap(fmt.Errorf("%q", string(mode))))
	}
}

// All accepts a value when every rule accepts it.
// It stops at the first rule that rejects the value.
// With no rules, it is Always.
func All[T any](rules ...Func[T]) Func[T] {
	rules = compact(rules)
	if len(rules) == 0 {
		return Always[T]()
	}
	return func(v T) bool {
		for _, rule := range rules {
			if !rule(v) {
				return false
			}
		}
		return true
	}
}

// Any accepts a value when at least one rule accepts it.
// It stops at the first rule that accepts the value.
// With no rules, it is Never.
func Any[T any](rules ...Func[T]) Func[T] {
	rules = compact(rules)
	if len(rules) == 0 {
		return Never[T]()
	}
	return func(v T) bool {
		for _, rule := range rules {
			if rule(v) {
				return true
			}
		}
		return false
	}
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
