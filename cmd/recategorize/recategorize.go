// Package recategorize handles the recategorize command
package recategorize

import (
	"context"
	"fmt"
	"io"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/categorizer"

	"github.com/spf13/cobra"
)

// Cmd represents the recategorize command
var Cmd = &cobra.Command{
	Use:   "recategorize",
	Short: "Recategorize every uncategorized transaction",
	Long: `Run every uncategorized transaction through the categorizer again and save
the ones that now resolve to a category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Container()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c.GetCategorizer(), cmd.OutOrStdout())
	},
}

// Run executes one recategorization pass and reports the update count.
func Run(ctx context.Context, cat *categorizer.Categorizer, out io.Writer) error {
	updated, err := cat.RecategorizeUncategorized(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Recategorized %d transaction(s)\n", updated)
	return err
}
