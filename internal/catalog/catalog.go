// Package catalog is the product catalog of the catalogsort tool.
// Its orderings and filters are built from field level rules with the compare and predicate packages.
package catalog

import (
	"errors"
	"io"
	"slices"

	"github.com/google/uuid"
	"go.llib.dev/frameless/pkg/errorkit"
	"gopkg.in/yaml.v3"

	"go.llib.dev/cmpkit/pkg/compare"
	"go.llib.dev/cmpkit/pkg/predicate"
)

const (
	ErrInvalidCatalog errorkit.Error = "ErrInvalidCatalog"
	ErrUnknownRule    errorkit.Error = "ErrUnknownRule"
	ErrInvalidFilter  errorkit.Error = "ErrInvalidFilter"
)

type Category struct {
	ID   string `yaml:"id,omitempty" json:"id,omitempty"`
	Name string `yaml:"name" json:"name"`
}

type Review struct {
	Author string `yaml:"author,omitempty" json:"author,omitempty"`
	Rating int    `yaml:"rating" json:"rating"`
	Body   string `yaml:"body,omitempty" json:"body,omitempty"`
}

type Product struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Category    Category `yaml:"category" json:"category"`
	Price       float64  `yaml:"price" json:"price"`
	Unavailable bool     `yaml:"unavailable,omitempty" json:"unavailable,omitempty"`
	Reviews     []Review `yaml:"reviews,omitempty" json:"reviews,omitempty"`
}

// AverageRating is zero for a product without reviews.
func (p Product) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(p.Reviews))
}

type Catalog struct {
	Products []Product `yaml:"products" json:"products"`
}

// Load decodes a YAML or JSON catalog.
// Products without an ID receive a generated one.
func Load(r io.Reader) (Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, nil
		}
		return Catalog{}, ErrInvalidCatalog.Wrap(err)
	}
	for i := range c.Products {
		if c.Products[i].Name == "" {
			return Catalog{}, ErrInvalidCatalog.F("product #%d has no name", i+1)
		}
		if c.Products[i].ID == "" {
			c.Products[i].ID = uuid.NewString()
		}
	}
	return c, nil
}

// Sorted returns the products in the order of cmp.
// Products that cmp considers equal keep their catalog order.
func (c Catalog) Sorted(cmp compare.Func[Product]) []Product {
	products := slices.Clone(c.Products)
	slices.SortStableFunc(products, cmp)
	return products
}

// Filtered returns the products that p accepts, in catalog order.
func (c Catalog) Filtered(p predicate.Func[Product]) []Product {
	products := make([]Product, 0, len(c.Products))
	for _, product := range c.Products {
		if p(product) {
			products = append(products, product)
		}
	}
	return products
}
