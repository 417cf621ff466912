// Package categorize handles the categorize command
package categorize

import (
	"context"
	"fmt"
	"io"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/categorizer"

	"github.com/spf13/cobra"
)

var (
	description string
	amount      string
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description",
	Long: `Categorize a transaction description using the merchant directory.
Positive amounts are income. Otherwise the normalized merchant key is looked up
exactly, then fuzzily against every known merchant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Container()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c.GetCategorizer(), cmd.OutOrStdout(), description, amount)
	},
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description as printed on the statement")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "0", "Signed transaction amount, positive for income")
	_ = Cmd.MarkFlagRequired("description")
}

// Run prints the category for description and amount.
func Run(ctx context.Context, cat *categorizer.Categorizer, out io.Writer, description, amount string) error {
	value, err := common.ParseAmount(amount)
	if err != nil {
		return err
	}

	category, err := cat.Categorize(ctx, description, value)
	if err != nil {
		return fmt.Errorf("error categorizing transaction: %w", err)
	}

	_, err = fmt.Fprintf(out, "Category: %s\n", category)
	return err
}
