// Package importer reads bank statements exported as CSV into the ledger
// and writes ledger transactions back out as CSV.
//
// The expected columns are date, description, amount and an optional
// category. Header names are matched case-sensitively.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/expense-tracker/internal/apperror"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/gocarina/gocsv"
)

// CSVRow is one statement line.
type CSVRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
}

// TransactionAdder stores a transaction, categorizing it when needed.
type TransactionAdder interface {
	AddTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
}

// Importer converts CSV statements into ledger transactions.
type Importer struct {
	adder      TransactionAdder
	dateLayout string
	logger     logging.Logger
}

// NewImporter creates an Importer. An empty dateLayout means models.DateLayout.
func NewImporter(adder TransactionAdder, dateLayout string, logger logging.Logger) *Importer {
	if dateLayout == "" {
		dateLayout = models.DateLayout
	}
	return &Importer{adder: adder, dateLayout: dateLayout, logger: logging.OrDefault(logger)}
}

// Parse reads every row from r. The first bad row aborts with a ParseError;
// rows with no content at all are skipped.
func (i *Importer) Parse(r io.Reader, source string) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	var rows []CSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading CSV %s: %w", source, err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for idx, row := range rows {
		if row == (CSVRow{}) {
			continue
		}
		// Line 1 is the header.
		tx, err := i.rowToTransaction(row, source, idx+2)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (i *Importer) rowToTransaction(row CSVRow, source string, line int) (models.Transaction, error) {
	builder := models.NewTransactionBuilder().WithDate(row.Date, i.dateLayout)
	if _, err := builder.Build(); err != nil {
		return models.Transaction{}, &apperror.ParseError{Source: source, Row: line, Field: "date", Value: row.Date, Err: err}
	}

	tx, err := builder.
		WithAmountFromString(row.Amount).
		WithDescription(row.Description).
		WithCategory(row.Category).
		Build()
	if err != nil {
		return models.Transaction{}, &apperror.ParseError{Source: source, Row: line, Field: "amount", Value: row.Amount, Err: err}
	}
	return tx, nil
}

// Import parses r and adds every transaction. Nothing is added when a row
// fails to parse.
func (i *Importer) Import(ctx context.Context, r io.Reader, source string) ([]models.Transaction, error) {
	parsed, err := i.Parse(r, source)
	if err != nil {
		i.logger.WithError(err).Error("Failed to parse statement")
		return nil, err
	}

	added := make([]models.Transaction, 0, len(parsed))
	for _, tx := range parsed {
		stored, err := i.adder.AddTransaction(ctx, tx)
		if err != nil {
			return added, err
		}
		added = append(added, stored)
	}

	i.logger.Info("Imported statement",
		logging.Field{Key: logging.FieldFile, Value: source},
		logging.Field{Key: logging.FieldCount, Value: len(added)})
	return added, nil
}

// ImportFile imports the CSV statement at path.
func (i *Importer) ImportFile(ctx context.Context, path string) ([]models.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			i.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return i.Import(ctx, file, path)
}

// Export writes transactions to w with a header row. Amounts keep two
// decimals and dates use the storage layout.
func Export(w io.Writer, transactions []models.Transaction) error {
	rows := make([]CSVRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, CSVRow{
			Date:        tx.FormattedDate(),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Category:    tx.Category,
		})
	}

	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(w))
	if err := gocsv.MarshalCSV(rows, writer); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ExportFile writes transactions to a CSV file at path, creating the parent
// directory when needed.
func (i *Importer) ExportFile(path string, transactions []models.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionExport)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			i.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := Export(file, transactions); err != nil {
		return err
	}

	i.logger.Info("Exported transactions",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}
