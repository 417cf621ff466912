// Package importcmd handles the import and export commands
package importcmd

import (
	"context"
	"fmt"
	"io"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/importer"
	"fjacquet/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

// Lister returns ledger transactions.
type Lister interface {
	List(ctx context.Context) ([]models.Transaction, error)
	GetAllByCategory(ctx context.Context, category string) ([]models.Transaction, error)
}

var (
	input    string
	output   string
	category string
)

// ImportCmd represents the import command
var ImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a CSV statement",
	Long: `Import a CSV statement with the columns date, description, amount and an
optional category. Rows without a category are categorized from the merchant
directory. A malformed row aborts the import before anything is stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Container()
		if err != nil {
			return err
		}
		return RunImport(cmd.Context(), c.GetImporter(), cmd.OutOrStdout(), input)
	},
}

// ExportCmd represents the export command
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions as CSV",
	Long:  `Export the ledger, or the transactions of one category, as CSV to a file or stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Container()
		if err != nil {
			return err
		}
		return RunExport(cmd.Context(), c.GetTransactions(), c.GetImporter(), cmd.OutOrStdout(), output, category)
	},
}

func init() {
	ImportCmd.Flags().StringVarP(&input, "input", "i", "", "CSV statement to import")
	_ = ImportCmd.MarkFlagRequired("input")

	ExportCmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (default stdout)")
	ExportCmd.Flags().StringVarP(&category, "category", "g", "", "Only export this category")
}

// RunImport imports the file at path and reports how the rows were categorized.
func RunImport(ctx context.Context, imp *importer.Importer, out io.Writer, path string) error {
	added, err := imp.ImportFile(ctx, path)
	if err != nil {
		return err
	}

	uncategorized := 0
	for _, tx := range added {
		if tx.IsUncategorized() {
			uncategorized++
		}
	}
	_, err = fmt.Fprintf(out, "Imported %d transaction(s), %d uncategorized\n", len(added), uncategorized)
	return err
}

// RunExport writes the selected transactions to path, or to out when path is empty.
func RunExport(ctx context.Context, ledger Lister, imp *importer.Importer, out io.Writer, path, category string) error {
	var (
		transactions []models.Transaction
		err          error
	)
	if category != "" {
		transactions, err = ledger.GetAllByCategory(ctx, category)
	} else {
		transactions, err = ledger.List(ctx)
	}
	if err != nil {
		return err
	}

	if path == "" {
		return importer.Export(out, transactions)
	}
	if err := imp.ExportFile(path, transactions); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Exported %d transaction(s) to %s\n", len(transactions), path)
	return err
}
