// Package merchants handles the merchant directory commands
package merchants

import (
	"context"
	"fmt"
	"io"
	"sort"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/merchant"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/store"

	"github.com/spf13/cobra"
)

var (
	file         string
	recategorize bool
)

// Cmd represents the merchants command
var Cmd = &cobra.Command{
	Use:   "merchants",
	Short: "Inspect and seed the merchant directory",
	Long: `Inspect and seed the merchant directory. Mappings are exchanged as YAML,
either a bare map of merchant to category or the same map under "merchants:".`,
}

// ListCmd represents the merchants list command
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the merchant directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Container()
		if err != nil {
			return err
		}
		return RunList(cmd.Context(), c.GetMerchants(), cmd.OutOrStdout())
	},
}

// ImportCmd represents the merchants import command
var ImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Load merchant categories from YAML",
	Long: `Load merchant categories from YAML. Keys are normalized the same way
transaction descriptions are, so raw statement text can be used as keys.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Container()
		if err != nil {
			return err
		}
		mappings := mappingFile(c.GetMappingFile(), c.GetLogger())
		if err := RunImport(cmd.Context(), c.GetMerchants(), mappings, cmd.OutOrStdout()); err != nil {
			return err
		}
		if !recategorize {
			return nil
		}
		updated, err := c.GetCategorizer().RecategorizeUncategorized(cmd.Context())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Recategorized %d transaction(s)\n", updated)
		return err
	},
}

// ExportCmd represents the merchants export command
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the merchant directory to YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.Container()
		if err != nil {
			return err
		}
		mappings := mappingFile(c.GetMappingFile(), c.GetLogger())
		return RunExport(cmd.Context(), c.GetMerchants(), mappings, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.PersistentFlags().StringVarP(&file, "file", "f", "", "YAML mapping file (default data.mappings_file)")
	ImportCmd.Flags().BoolVarP(&recategorize, "recategorize", "r", false, "Recategorize uncategorized transactions after the import")

	Cmd.AddCommand(ListCmd)
	Cmd.AddCommand(ImportCmd)
	Cmd.AddCommand(ExportCmd)
}

func mappingFile(fallback *store.MappingFile, logger logging.Logger) *store.MappingFile {
	if file == "" {
		return fallback
	}
	return store.NewMappingFile(file, logger)
}

// RunList prints every merchant key with its category.
func RunList(ctx context.Context, directory categorizer.MerchantDirectory, out io.Writer) error {
	entries, err := directory.GetAllEntries(ctx)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(out, "%-40s %s\n", entry.MerchantKey, entry.Category); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "%d merchant(s)\n", len(entries))
	return err
}

// RunImport upserts every mapping of the file into the directory. Keys that
// normalize to nothing are skipped.
func RunImport(ctx context.Context, directory categorizer.MerchantDirectory, mappings *store.MappingFile, out io.Writer) error {
	loaded, err := mappings.Load()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(loaded))
	for key := range loaded {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	imported, skipped := 0, 0
	for _, raw := range keys {
		key := merchant.Normalize(raw)
		if key == "" {
			skipped++
			continue
		}
		entry := models.MerchantCategory{MerchantKey: key, Category: loaded[raw]}
		if err := directory.SetCategory(ctx, entry); err != nil {
			return err
		}
		imported++
	}

	_, err = fmt.Fprintf(out, "Imported %d merchant(s), skipped %d from %s\n", imported, skipped, mappings.Path)
	return err
}

// RunExport writes the whole directory to the mapping file.
func RunExport(ctx context.Context, directory categorizer.MerchantDirectory, mappings *store.MappingFile, out io.Writer) error {
	entries, err := directory.GetAllEntries(ctx)
	if err != nil {
		return err
	}

	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		result[entry.MerchantKey] = entry.Category
	}
	if err := mappings.Save(result); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "Exported %d merchant(s) to %s\n", len(entries), mappings.Path)
	return err
}
