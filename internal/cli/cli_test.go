package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/cmpkit/internal/catalog"
	"go.llib.dev/cmpkit/internal/cli"
	"go.llib.dev/cmpkit/pkg/predicate"
)

var defaultConfig = cli.Config{
	LogLevel: "info",
	Sort:     []string{"category", "name"},
	Mode:     "all",
	Format:   "text",
}

type run struct {
	Out    bytes.Buffer
	ErrOut bytes.Buffer
	Log    bytes.Buffer
}

func execute(tb testing.TB, config cli.Config, stdin string, args ...string) (*run, error) {
	tb.Helper()
	r := &run{}
	cmd := cli.NewRootCommand(cli.Options{
		Config: config,
		Logger: &logging.Logger{Out: &r.Log, Level: logging.LevelDebug},
	})
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&r.Out)
	cmd.SetErr(&r.ErrOut)
	return r, cmd.ExecuteContext(context.Background())
}

func TestSort_golden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))

	for name, args := range map[string][]string{
		"sort_default":             {"sort", "testdata/catalog.yaml"},
		"sort_by_availability":     {"sort", "--by", "category,unavailable,name", "testdata/catalog.yaml"},
		"sort_available_by_rating": {"sort", "--by", "rating", "--where", "available", "testdata/catalog.yaml"},
		"sort_tools_by_price_json": {"sort", "--by", "price", "--where", "category=Tools", "--format", "json", "testdata/catalog.yaml"},
		"sort_no_match_json":       {"sort", "--where", "category=Nope", "--format", "json", "testdata/catalog.yaml"},
		"rules":                    {"rules"},
	} {
		t.Run(name, func(t *testing.T) {
			r, err := execute(t, defaultConfig, "", args...)
			assert.NoError(t, err)
			g.Assert(t, name, r.Out.Bytes())
		})
	}
}

func TestSort_stdin(t *testing.T) {
	r, err := execute(t, defaultConfig,
		`{"products": [{"name": "Widget", "category": {"name": "Tools"}}, {"name": "Bolt", "category": {"name": "Hardware"}}]}`,
		"sort")
	assert.NoError(t, err)
	assert.Equal(t, "Bolt (Hardware)\nWidget (Tools)\n", r.Out.String())
}

func TestSort_configDefaults(t *testing.T) {
	config := defaultConfig
	config.Sort = []string{"-name"}
	config.Mode = "any"

	r, err := execute(t, config, "", "sort", "--where", "unavailable", "--where", "category=Hardware", "testdata/catalog.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "Bolt (Hardware)\nAnvil (Tools, unavailable)\n", r.Out.String())
}

func TestSort_noMatch(t *testing.T) {
	r, err := execute(t, defaultConfig, "", "sort", "--where", "category=Nope", "--format", "yaml", "testdata/catalog.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "products: []\n", r.Out.String())
}

func TestSort_yamlRoundTrip(t *testing.T) {
	r, err := execute(t, defaultConfig, "", "sort", "--format", "yaml", "testdata/catalog.yaml")
	assert.NoError(t, err)

	c, err := catalog.Load(&r.Out)
	assert.NoError(t, err)
	var names []string
	for _, p := range c.Products {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Bolt", "Anvil", "Widget"}, names)
}

func TestSort_logging(t *testing.T) {
	r, err := execute(t, defaultConfig, "", "sort", "--where", "available", "testdata/catalog.yaml")
	assert.NoError(t, err)
	assert.Contains(t, r.Log.String(), "catalog loaded")
	assert.Contains(t, r.Log.String(), "catalog filtered")
}

func TestSort_errors(t *testing.T) {
	t.Run("unknown sort rule", func(t *testing.T) {
		_, err := execute(t, defaultConfig, "", "sort", "--by", "colour", "testdata/catalog.yaml")
		assert.True(t, errors.Is(err, catalog.ErrUnknownRule))
	})
	t.Run("unknown filter", func(t *testing.T) {
		_, err := execute(t, defaultConfig, "", "sort", "--where", "shiny", "testdata/catalog.yaml")
		assert.True(t, errors.Is(err, catalog.ErrInvalidFilter))
	})
	t.Run("unknown mode", func(t *testing.T) {
		_, err := execute(t, defaultConfig, "", "sort", "--mode", "xor", "testdata/catalog.yaml")
		assert.True(t, errors.Is(err, predicate.ErrUnknownMode))
	})
	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, defaultConfig, "", "sort", "--format", "xml", "testdata/catalog.yaml")
		assert.True(t, errors.Is(err, cli.ErrUnknownFormat))
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, defaultConfig, "", "sort", "testdata/missing.yaml")
		assert.Error(t, err)
	})
	t.Run("invalid catalog", func(t *testing.T) {
		_, err := execute(t, defaultConfig, "products: [{name: ", "sort")
		assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog))
	})
}
