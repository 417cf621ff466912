package store

import (
	"context"
	"database/sql"
	"errors"

	"fjacquet/expense-tracker/internal/apperror"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

const merchantsSchema = `
CREATE TABLE IF NOT EXISTS merchant_categories (
	merchant_key TEXT PRIMARY KEY,
	category TEXT NOT NULL
);
`

// MerchantRepository is the SQLite-backed merchant directory.
type MerchantRepository struct {
	db     *sql.DB
	logger logging.Logger
}

// NewMerchantRepository opens the merchant directory database at path.
func NewMerchantRepository(ctx context.Context, path string, logger logging.Logger) (*MerchantRepository, error) {
	logger = logging.OrDefault(logger)

	db, err := openDatabase(ctx, path, merchantsSchema)
	if err != nil {
		return nil, &apperror.StoreError{Op: "open merchant directory", Err: err}
	}
	logger.Debug("Initialized merchant category schema", logging.Field{Key: logging.FieldDatabase, Value: path})

	return &MerchantRepository{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (r *MerchantRepository) Close() error {
	return r.db.Close()
}

// GetCategory looks up a merchant key. A missing key is reported through
// the bool, not as an error.
func (r *MerchantRepository) GetCategory(ctx context.Context, key string) (models.MerchantCategory, bool, error) {
	var entry models.MerchantCategory
	err := r.db.QueryRowContext(ctx,
		`SELECT merchant_key, category FROM merchant_categories WHERE merchant_key = ?`, key).
		Scan(&entry.MerchantKey, &entry.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MerchantCategory{}, false, nil
	}
	if err != nil {
		return models.MerchantCategory{}, false, &apperror.StoreError{Op: "get merchant category", Err: err}
	}
	return entry, true, nil
}

// GetAllEntries returns the whole directory ordered by key.
func (r *MerchantRepository) GetAllEntries(ctx context.Context) ([]models.MerchantCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT merchant_key, category FROM merchant_categories ORDER BY merchant_key`)
	if err != nil {
		return nil, &apperror.StoreError{Op: "list merchant categories", Err: err}
	}
	defer rows.Close()

	var entries []models.MerchantCategory
	for rows.Next() {
		var entry models.MerchantCategory
		if err := rows.Scan(&entry.MerchantKey, &entry.Category); err != nil {
			return nil, &apperror.StoreError{Op: "list merchant categories", Err: err}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperror.StoreError{Op: "list merchant categories", Err: err}
	}
	return entries, nil
}

// SetCategory inserts the entry or replaces the category of an existing key.
func (r *MerchantRepository) SetCategory(ctx context.Context, entry models.MerchantCategory) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO merchant_categories (merchant_key, category)
		VALUES (?, ?)
		ON CONFLICT(merchant_key) DO UPDATE SET category = excluded.category`,
		entry.MerchantKey, entry.Category)
	if err != nil {
		return &apperror.StoreError{Op: "set merchant category", Err: err}
	}
	r.logger.Debug("Stored merchant category",
		logging.Field{Key: logging.FieldMerchantKey, Value: entry.MerchantKey},
		logging.Field{Key: logging.FieldCategory, Value: entry.Category})
	return nil
}
