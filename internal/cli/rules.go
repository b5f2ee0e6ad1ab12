package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.llib.dev/cmpkit/internal/catalog"
)

func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available sort rules and filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, "sort rules:"); err != nil {
				return err
			}
			for _, name := range catalog.NewSorting().Names() {
				if _, err := fmt.Fprintf(out, "  %s\n", name); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(out, "filters:"); err != nil {
				return err
			}
			for _, name := range catalog.NewFiltering().Names() {
				if _, err := fmt.Fprintf(out, "  %s\n", name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
