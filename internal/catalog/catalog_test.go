package catalog_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/cmpkit/internal/catalog"
	"go.llib.dev/cmpkit/pkg/compare"
	"go.llib.dev/cmpkit/pkg/predicate"
)

var (
	widget = catalog.Product{ID: "p-widget", Name: "Widget", Category: catalog.Category{Name: "Tools"}}
	anvil  = catalog.Product{ID: "p-anvil", Name: "Anvil", Category: catalog.Category{Name: "Tools"}, Unavailable: true}
	bolt   = catalog.Product{ID: "p-bolt", Name: "Bolt", Category: catalog.Category{Name: "Hardware"}}
)

func names(ps []catalog.Product) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestCatalog_Sorted_scenarios(t *testing.T) {
	s := testcase.NewSpec(t)

	c := catalog.Catalog{Products: []catalog.Product{widget, anvil, bolt}}

	s.Test("A: by category name then product name", func(t *testcase.T) {
		got := c.Sorted(compare.Combine(
			catalog.ProductByCategoryName(),
			catalog.ProductByName(),
		))
		assert.Equal(t, []string{"Bolt", "Anvil", "Widget"}, names(got))
	})

	s.Test("B: availability breaks the tie before the name", func(t *testcase.T) {
		got := c.Sorted(compare.Combine(
			catalog.ProductByCategoryName(),
			catalog.ProductByUnavailable(),
			catalog.ProductByName(),
		))
		assert.Equal(t, []string{"Bolt", "Widget", "Anvil"}, names(got))
	})

	s.Test("C: removing the availability rule restores the order of A", func(t *testcase.T) {
		rules := compare.NewRules(
			catalog.ProductByCategoryName(),
			catalog.ProductByUnavailable(),
			catalog.ProductByName(),
		)
		got := c.Sorted(rules.Without(1).Func())
		assert.Equal(t, []string{"Bolt", "Anvil", "Widget"}, names(got))
		assert.Equal(t, []string{"Bolt", "Widget", "Anvil"}, names(c.Sorted(rules.Func())))
	})

	s.Test("the catalog itself is not reordered", func(t *testcase.T) {
		c.Sorted(catalog.ProductByName())
		assert.Equal(t, []string{"Widget", "Anvil", "Bolt"}, names(c.Products))
	})
}

func TestCatalog_Filtered(t *testing.T) {
	c := catalog.Catalog{Products: []catalog.Product{widget, anvil, bolt}}

	got := c.Filtered(predicate.All(
		catalog.InCategory("Tools"),
		predicate.Not(catalog.IsUnavailable()),
	))
	assert.Equal(t, []string{"Widget"}, names(got))
	none := c.Filtered(predicate.Never[catalog.Product]())
	assert.Empty(t, none)
	assert.NotNil(t, none)
	assert.Equal(t, names(c.Products), names(c.Filtered(predicate.Always[catalog.Product]())))
}

func TestProduct_AverageRating(t *testing.T) {
	assert.Equal(t, 0.0, catalog.Product{}.AverageRating())
	assert.Equal(t, 4.5, catalog.Product{Reviews: []catalog.Review{{Rating: 4}, {Rating: 5}}}.AverageRating())
}

func TestLoad(t *testing.T) {
	s := testcase.NewSpec(t)

	input := testcase.Let(s, func(t *testcase.T) string {
		data, err := os.ReadFile("testdata/catalog.yaml")
		assert.NoError(t, err)
		return string(data)
	})
	act := func(t *testcase.T) (catalog.Catalog, error) {
		return catalog.Load(strings.NewReader(input.Get(t)))
	}

	s.Then("the products are decoded", func(t *testcase.T) {
		c, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Widget", "Anvil", "Bolt"}, names(c.Products))
		assert.Equal(t, "Tools", c.Products[0].Category.Name)
		assert.Equal(t, 12.5, c.Products[0].Price)
		assert.Equal(t, 4.5, c.Products[0].AverageRating())
		assert.True(t, c.Products[1].Unavailable)
	})

	s.When("the input is JSON", func(s *testcase.Spec) {
		input.LetValue(s, `{"products": [{"id": "x", "name": "Bolt", "category": {"name": "Hardware"}, "price": 0.5}]}`)

		s.Then("it is decoded just the same", func(t *testcase.T) {
			c, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, []string{"Bolt"}, names(c.Products))
			assert.Equal(t, "Hardware", c.Products[0].Category.Name)
		})
	})

	s.When("a product has no ID", func(s *testcase.Spec) {
		input.LetValue(s, "products:\n  - name: Bolt\n  - name: Anvil\n")

		s.Then("an ID is generated for it", func(t *testcase.T) {
			c, err := act(t)
			assert.NoError(t, err)
			assert.NotEmpty(t, c.Products[0].ID)
			assert.NotEmpty(t, c.Products[1].ID)
			assert.NotEqual(t, c.Products[0].ID, c.Products[1].ID)
		})
	})

	s.When("a product has no name", func(s *testcase.Spec) {
		input.LetValue(s, "products:\n  - id: p-1\n")

		s.Then("the catalog is rejected", func(t *testcase.T) {
			_, err := act(t)
			assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog))
		})
	})

	s.When("the input is empty", func(s *testcase.Spec) {
		input.LetValue(s, "")

		s.Then("the catalog is empty", func(t *testcase.T) {
			c, err := act(t)
			assert.NoError(t, err)
			assert.Empty(t, c.Products)
		})
	})

	s.When("the input is malformed", func(s *testcase.Spec) {
		input.LetValue(s, "products: [{name: ")

		s.Then("an invalid catalog error is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog))
		})
	})
}
