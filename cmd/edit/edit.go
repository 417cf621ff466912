// Package edit handles the edit command
package edit

import (
	"context"
	"fmt"
	"io"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/categorizer"

	"github.com/spf13/cobra"
)

var (
	id       int64
	category string
)

// Cmd represents the edit command
var Cmd = &cobra.Command{
	Use:   "edit",
	Short: "Change the category of a transaction",
	Long: `Change the category of a transaction. The new category is learned for the
transaction's merchant and, unless disabled in the configuration, applied to
every uncategorized transaction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Container()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c.GetWorkflow(), cmd.OutOrStdout(), id, category)
	},
}

func init() {
	Cmd.Flags().Int64VarP(&id, "id", "i", 0, "Transaction id")
	Cmd.Flags().StringVarP(&category, "category", "g", "", "New category, empty for Uncategorized")
	_ = Cmd.MarkFlagRequired("id")
}

// Run applies the edit and reports what changed.
func Run(ctx context.Context, workflow *categorizer.Workflow, out io.Writer, id int64, category string) error {
	result, err := workflow.EditCategory(ctx, id, category)
	if err != nil {
		return err
	}

	if !result.Changed {
		_, err = fmt.Fprintf(out, "Transaction %d already in %s\n", id, result.Previous)
		return err
	}

	if _, err := fmt.Fprintf(out, "Transaction %d: %s -> %s\n", id, result.Previous, result.Transaction.Category); err != nil {
		return err
	}
	if result.Recategorized > 0 {
		_, err = fmt.Fprintf(out, "Recategorized %d other transaction(s)\n", result.Recategorized)
	}
	return err
}
