package catalog

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/cmpkit/pkg/compare"
	"go.llib.dev/cmpkit/pkg/predicate"
)

func IsUnavailable() predicate.Func[Product] {
	return predicate.Is(func(p Product) bool { return p.Unavailable })
}

func IsReviewed() predicate.Func[Product] {
	return predicate.By(
		predicate.Compared(compare.Numbers[int], 0, compare.IsMore),
		func(p Product) int { return len(p.Reviews) },
	)
}

func InCategory(name string) predicate.Func[Product] {
	return predicate.By(predicate.Equal(name), func(p Product) string { return p.Category.Name })
}

func PriceAtLeast(price float64) predicate.Func[Product] {
	return predicate.By(
		predicate.Compared(compare.Numbers[float64], price, compare.IsMoreOrEqual),
		func(p Product) float64 { return p.Price },
	)
}

func PriceAtMost(price float64) predicate.Func[Product] {
	return predicate.By(
		predicate.Compared(compare.Numbers[float64], price, compare.IsLessOrEqual),
		func(p Product) float64 { return p.Price },
	)
}

func RatingAtLeast(rating float64) predicate.Func[Product] {
	return predicate.By(
		predicate.Compared(compare.Numbers[float64], rating, compare.IsMoreOrEqual),
		Product.AverageRating,
	)
}

// Filtering is the set of named product filters.
//
// A filter expression is either a flag name like "available",
// or a name and an argument separated by "=", like "category=Tools".
type Filtering struct {
	flags  map[string]predicate.Func[Product]
	params map[string]func(arg string) (predicate.Func[Product], error)
}

func NewFiltering() Filtering {
	return Filtering{
		flags: map[string]predicate.Func[Product]{
			"available":   predicate.Not(IsUnavailable()),
			"unavailable": IsUnavailable(),
			"reviewed":    IsReviewed(),
		},
		params: map[string]func(string) (predicate.Func[Product], error){
			"category": func(arg string) (predicate.Func[Product], error) {
				return InCategory(arg), nil
			},
			"min-price":  numeric(PriceAtLeast),
			"max-price":  numeric(PriceAtMost),
			"min-rating": numeric(RatingAtLeast),
		},
	}
}

func numeric(mk func(float64) predicate.Func[Product]) func(string) (predicate.Func[Product], error) {
	return func(arg string) (predicate.Func[Product], error) {
		n, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(n) {
			return nil, ErrInvalidFilter.F("not a number: %q", arg)
		}
		return mk(n), nil
	}
}

func (f Filtering) Names() []string {
	var names []string
	for name := range f.flags {
		names = append(names, name)
	}
	for name := range f.params {
		names = append(names, name+"=<value>")
	}
	slices.Sort(names)
	return names
}

func (f Filtering) Parse(expr string) (predicate.Func[Product], error) {
	expr = strings.TrimSpace(expr)
	name, arg, hasArg := strings.Cut(expr, "=")
	if !hasArg {
		if p, ok := f.flags[name]; ok {
			return p, nil
		}
		return nil, ErrInvalidFilter.F("unknown filter: %q", expr)
	}
	mk, ok := f.params[strings.TrimSpace(name)]
	if !ok {
		return nil, ErrInvalidFilter.F("unknown filter: %q", expr)
	}
	p, err := mk(arg)
	if err != nil {
		return nil, ErrInvalidFilter.Wrap(err)
	}
	return p, nil
}

// Predicate parses every expression and combines them with mode.
func (f Filtering) Predicate(mode predicate.Mode, exprs ...string) (predicate.Func[Product], error) {
	mode, err := predicate.ParseMode(mode.String())
	if err != nil {
		return nil, err
	}
	var (
		rules []predicate.Func[Product]
		errs  []error
	)
	for _, expr := range exprs {
		if strings.TrimSpace(expr) == "" {
			continue
		}
		p, err := f.Parse(expr)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rules = append(rules, p)
	}
	if err := errorkit.Merge(errs...); err != nil {
		return nil, err
	}
	return predicate.Combine(mode, rules...), nil
}
