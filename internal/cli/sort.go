package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/cmpkit/internal/catalog"
	"go.llib.dev/cmpkit/pkg/predicate"
)

type sortOptions struct {
	By     []string
	Where  []string
	Mode   string
	Format string
}

func NewSortCommand(opts Options) *cobra.Command {
	var so sortOptions
	cmd := &cobra.Command{
		Use:   "sort [catalog-file]",
		Short: "Print the products of a catalog in rule order",
		Long: `Print the products of a catalog in rule order.

The catalog is read from the given file, or from the standard input when no file is given.
Sort rules are applied in the order they are listed; prefix a rule with "-" to reverse it.
Filters are combined according to --mode: "all" keeps products matching every filter,
"any" keeps products matching at least one.`,
		Example: `  catalogsort sort --by category,unavailable,name catalog.yaml
  catalogsort sort --by -rating --where category=Tools --where available catalog.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (rErr error) {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer errorkit.Finish(&rErr, f.Close)
				in = f
			}
			return runSort(cmd, opts, so, in)
		},
	}
	flags := cmd.Flags()
	flags.StringSliceVar(&so.By, "by", opts.Config.Sort, "comma separated sort rules in priority order")
	flags.StringArrayVar(&so.Where, "where", nil, "filter expression, can be repeated")
	flags.StringVar(&so.Mode, "mode", defaultString(opts.Config.Mode, string(predicate.ModeAll)), "filter combination: all or any")
	flags.StringVar(&so.Format, "format", defaultString(opts.Config.Format, formatText), "output format: text, yaml or json")
	return cmd
}

func runSort(cmd *cobra.Command, opts Options, so sortOptions, in io.Reader) error {
	ctx := contextOf(cmd)

	write, err := lookupWriter(so.Format)
	if err != nil {
		return err
	}
	mode, err := predicate.ParseMode(so.Mode)
	if err != nil {
		return err
	}
	rules, err := catalog.NewSorting().Ordering(so.By...)
	if err != nil {
		return err
	}

	c, err := catalog.Load(in)
	if err != nil {
		return err
	}
	opts.Logger.Debug(ctx, "catalog loaded",
		logging.Field("products", len(c.Products)),
		logging.Field("rules", rules.Len()))

	if len(so.Where) > 0 {
		keep, err := catalog.NewFiltering().Predicate(mode, so.Where...)
		if err != nil {
			return err
		}
		c = catalog.Catalog{Products: c.Filtered(keep)}
		opts.Logger.Debug(ctx, "catalog filtered",
			logging.Field("products", len(c.Products)),
			logging.Field("mode", mode.String()))
	}

	return write(cmd.OutOrStdout(), c.Sorted(rules.Func()))
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
