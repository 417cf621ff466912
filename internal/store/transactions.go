package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fjacquet/expense-tracker/internal/apperror"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

const transactionsSchema = `
CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY,
	date TEXT NOT NULL,
	amount TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT 'Uncategorized',
	description TEXT
);
CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
`

const selectTransaction = `SELECT id, date, amount, category, COALESCE(description, '') FROM transactions`

// TransactionRepository is the SQLite-backed transaction store.
type TransactionRepository struct {
	db     *sql.DB
	logger logging.Logger
}

// NewTransactionRepository opens the ledger database at path.
func NewTransactionRepository(ctx context.Context, path string, logger logging.Logger) (*TransactionRepository, error) {
	logger = logging.OrDefault(logger)

	db, err := openDatabase(ctx, path, transactionsSchema)
	if err != nil {
		return nil, &apperror.StoreError{Op: "open transactions", Err: err}
	}
	logger.Debug("Initialized transactions schema", logging.Field{Key: logging.FieldDatabase, Value: path})

	return &TransactionRepository{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (r *TransactionRepository) Close() error {
	return r.db.Close()
}

// Add inserts tx and returns it with its assigned id. A blank category is
// stored as uncategorized.
func (r *TransactionRepository) Add(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	tx.Category = models.NormalizeCategory(tx.Category)

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (date, amount, category, description) VALUES (?, ?, ?, ?)`,
		tx.FormattedDate(), tx.Amount.String(), tx.Category, tx.Description)
	if err != nil {
		return models.Transaction{}, &apperror.StoreError{Op: "add transaction", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Transaction{}, &apperror.StoreError{Op: "add transaction", Err: err}
	}
	tx.ID = id
	return tx, nil
}

// Get returns the transaction with the given id or a NotFoundError.
func (r *TransactionRepository) Get(ctx context.Context, id int64) (models.Transaction, error) {
	row := r.db.QueryRowContext(ctx, selectTransaction+` WHERE id = ?`, id)
	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, &apperror.NotFoundError{Entity: "transaction", ID: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return models.Transaction{}, &apperror.StoreError{Op: "get transaction", Err: err}
	}
	return tx, nil
}

// List returns every transaction, newest first.
func (r *TransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	return r.query(ctx, "list transactions", selectTransaction+` ORDER BY date DESC, id DESC`)
}

// GetAllByCategory returns the transactions currently at category, newest first.
func (r *TransactionRepository) GetAllByCategory(ctx context.Context, category string) ([]models.Transaction, error) {
	return r.query(ctx, "list transactions by category",
		selectTransaction+` WHERE category = ? ORDER BY date DESC, id DESC`, category)
}

// UpdateCategory sets the category of one transaction.
func (r *TransactionRepository) UpdateCategory(ctx context.Context, id int64, category string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET category = ? WHERE id = ?`, models.NormalizeCategory(category), id)
	if err != nil {
		return &apperror.StoreError{Op: "update category", Err: err}
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &apperror.StoreError{Op: "update category", Err: err}
	}
	if affected == 0 {
		return &apperror.NotFoundError{Entity: "transaction", ID: strconv.FormatInt(id, 10)}
	}
	return nil
}

// Count returns the number of stored transactions.
func (r *TransactionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, &apperror.StoreError{Op: "count transactions", Err: err}
	}
	return count, nil
}

func (r *TransactionRepository) query(ctx context.Context, op, query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &apperror.StoreError{Op: op, Err: err}
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, &apperror.StoreError{Op: op, Err: err}
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperror.StoreError{Op: op, Err: err}
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var (
		tx     models.Transaction
		date   string
		amount string
	)
	if err := row.Scan(&tx.ID, &date, &amount, &tx.Category, &tx.Description); err != nil {
		return models.Transaction{}, err
	}

	parsedDate, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %d: bad date %q: %w", tx.ID, date, err)
	}
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %d: bad amount %q: %w", tx.ID, amount, err)
	}
	tx.Date = parsedDate
	tx.Amount = parsedAmount
	return tx, nil
}
