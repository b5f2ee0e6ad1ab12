// Package cli implements the catalogsort command line interface.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"
)

type Options struct {
	Config Config
	Logger *logging.Logger
}

func NewRootCommand(opts Options) *cobra.Command {
	if opts.Logger == nil {
		opts.Logger = &logging.Logger{Out: io.Discard}
	}
	cmd := &cobra.Command{
		Use:   "catalogsort",
		Short: "Sort and filter a product catalog with composable rules",
		Long: `catalogsort reads a YAML or JSON product catalog and prints its products
ordered by a prioritised list of sort rules, optionally filtered by predicates.

The first sort rule decides the order, every following rule only breaks ties.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		NewSortCommand(opts),
		NewRulesCommand(),
	)
	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
