package categorizer

import (
	"context"

	"fjacquet/expense-tracker/internal/models"
)

// MerchantDirectory is the persistent map from merchant key to category.
// An unknown key is reported through the bool, never as an error.
type MerchantDirectory interface {
	GetCategory(ctx context.Context, key string) (models.MerchantCategory, bool, error)
	GetAllEntries(ctx context.Context) ([]models.MerchantCategory, error)
	SetCategory(ctx context.Context, entry models.MerchantCategory) error
}

// TransactionStore is the part of the ledger the recategorization pass needs.
type TransactionStore interface {
	GetAllByCategory(ctx context.Context, category string) ([]models.Transaction, error)
	UpdateCategory(ctx context.Context, id int64, category string) error
}

// Ledger is the transaction store used by the edit and add workflows.
type Ledger interface {
	TransactionStore
	Add(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	Get(ctx context.Context, id int64) (models.Transaction, error)
}
