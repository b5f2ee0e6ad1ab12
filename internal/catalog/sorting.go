package catalog

import (
	"slices"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/cmpkit/pkg/compare"
)

func CategoryByName() compare.Func[Category] {
	return compare.By(compare.Strings[string], func(c Category) string { return c.Name })
}

func ProductByCategoryName() compare.Func[Product] {
	return compare.By(CategoryByName(), func(p Product) Category { return p.Category })
}

func ProductByName() compare.Func[Product] {
	return compare.By(compare.Strings[string], func(p Product) string { return p.Name })
}

// ProductByUnavailable puts available products first.
func ProductByUnavailable() compare.Func[Product] {
	return compare.By(compare.Bools[bool], func(p Product) bool { return p.Unavailable })
}

func ProductByPrice() compare.Func[Product] {
	return compare.By(compare.Numbers[float64], func(p Product) float64 { return p.Price })
}

// ProductByRating puts the best rated products first.
func ProductByRating() compare.Func[Product] {
	return compare.Reverse(compare.By(compare.Numbers[float64], Product.AverageRating))
}

func ProductByID() compare.Func[Product] {
	return compare.ByKey(func(p Product) string { return p.ID })
}

// Sorting is the set of named product orderings a rule list can refer to.
type Sorting struct {
	rules map[string]compare.Func[Product]
}

func NewSorting() Sorting {
	return Sorting{rules: map[string]compare.Func[Product]{
		"category":    ProductByCategoryName(),
		"name":        ProductByName(),
		"unavailable": ProductByUnavailable(),
		"price":       ProductByPrice(),
		"rating":      ProductByRating(),
		"id":          ProductByID(),
	}}
}

func (s Sorting) Names() []string {
	var names []string
	for name := range s.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s Sorting) Lookup(name string) (compare.Func[Product], bool) {
	rule, ok := s.rules[name]
	return rule, ok
}

// Ordering resolves a rule list from rule names in priority order.
// A name with a "-" prefix reverses the rule.
// Empty names are ignored.
func (s Sorting) Ordering(names ...string) (compare.Rules[Product], error) {
	var (
		rules []compare.Func[Product]
		errs  []error
	)
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		reverse := strings.HasPrefix(name, "-")
		rule, ok := s.Lookup(strings.TrimPrefix(name, "-"))
		if !ok {
			errs = append(errs, ErrUnknownRule.F("%q", name))
			continue
		}
		if reverse {
			rule = compare.Reverse(rule)
		}
		rules = append(rules, rule)
	}
	if err := errorkit.Merge(errs...); err != nil {
		return compare.Rules[Product]{}, err
	}
	return compare.NewRules(rules...), nil
}
