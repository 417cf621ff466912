// Package learn handles the learn command
package learn

import (
	"context"
	"fmt"
	"io"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/merchant"

	"github.com/spf13/cobra"
)

var (
	description  string
	category     string
	recategorize bool
)

// Cmd represents the learn command
var Cmd = &cobra.Command{
	Use:   "learn",
	Short: "Teach the merchant directory a category",
	Long: `Record a category for the merchant behind a description. By default the
uncategorized transactions are then recategorized with the new knowledge.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Container()
		if err != nil {
			return err
		}
		pass := c.GetConfig().Categorization.AutoRecategorize
		if cmd.Flags().Changed("recategorize") {
			pass = recategorize
		}
		return Run(cmd.Context(), c.GetCategorizer(), cmd.OutOrStdout(), description, category, pass)
	},
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description or merchant name")
	Cmd.Flags().StringVarP(&category, "category", "g", "", "Category to assign")
	Cmd.Flags().BoolVarP(&recategorize, "recategorize", "r", true, "Recategorize uncategorized transactions afterwards (default from config)")
	_ = Cmd.MarkFlagRequired("description")
	_ = Cmd.MarkFlagRequired("category")
}

// Run records the choice and optionally runs the recategorization pass.
func Run(ctx context.Context, cat *categorizer.Categorizer, out io.Writer, description, category string, recategorize bool) error {
	if err := cat.RecordCategoryChoice(ctx, description, category); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Learned %s -> %s\n", merchant.Normalize(description), category); err != nil {
		return err
	}

	if !recategorize {
		return nil
	}
	updated, err := cat.RecategorizeUncategorized(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Recategorized %d transaction(s)\n", updated)
	return err
}
