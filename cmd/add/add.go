// Package add handles the add command
package add

import (
	"context"
	"io"
	"time"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

// Options holds the raw flag values of a transaction to add.
type Options struct {
	Date        string
	Description string
	Amount      string
	Category    string
	DateLayout  string
}

var opts Options

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction to the ledger",
	Long: `Add a transaction to the ledger. Without --category the transaction is
categorized from the merchant directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Container()
		if err != nil {
			return err
		}
		o := opts
		o.DateLayout = c.GetConfig().Import.DateFormat
		return Run(cmd.Context(), c.GetWorkflow(), cmd.OutOrStdout(), o)
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.Date, "date", "t", "", "Transaction date (default today)")
	Cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Transaction description")
	Cmd.Flags().StringVarP(&opts.Amount, "amount", "a", "", "Signed amount, negative for expenses")
	Cmd.Flags().StringVarP(&opts.Category, "category", "g", "", "Category (optional)")
	_ = Cmd.MarkFlagRequired("description")
	_ = Cmd.MarkFlagRequired("amount")
}

// Run builds the transaction from o, adds it and prints the stored row.
func Run(ctx context.Context, workflow *categorizer.Workflow, out io.Writer, o Options) error {
	layout := o.DateLayout
	if layout == "" {
		layout = models.DateLayout
	}
	date := o.Date
	if date == "" {
		date = time.Now().Format(layout)
	}

	tx, err := models.NewTransactionBuilder().
		WithDate(date, layout).
		WithDescription(o.Description).
		WithAmountFromString(o.Amount).
		WithCategory(o.Category).
		Build()
	if err != nil {
		return err
	}

	added, err := workflow.AddTransaction(ctx, tx)
	if err != nil {
		return err
	}
	common.PrintTransaction(out, added)
	return nil
}
