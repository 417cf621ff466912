package store

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"fjacquet/expense-tracker/internal/apperror"
	"fjacquet/expense-tracker/internal/models"
)

// MemoryDirectory is an in-memory merchant directory for tests.
type MemoryDirectory struct {
	mu      sync.Mutex
	entries map[string]string

	// Call counters
	GetCategoryCalls   int
	GetAllEntriesCalls int
	SetCategoryCalls   int

	// Error flags for testing error conditions
	GetCategoryError   error
	GetAllEntriesError error
	SetCategoryError   error
}

// NewMemoryDirectory creates a directory seeded with mappings.
func NewMemoryDirectory(mappings map[string]string) *MemoryDirectory {
	d := &MemoryDirectory{entries: make(map[string]string, len(mappings))}
	for k, v := range mappings {
		d.entries[k] = v
	}
	return d
}

func (d *MemoryDirectory) GetCategory(_ context.Context, key string) (models.MerchantCategory, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.GetCategoryCalls++
	if d.GetCategoryError != nil {
		return models.MerchantCategory{}, false, d.GetCategoryError
	}
	category, ok := d.entries[key]
	if !ok {
		return models.MerchantCategory{}, false, nil
	}
	return models.MerchantCategory{MerchantKey: key, Category: category}, true, nil
}

// GetAllEntries returns entries sorted by key.
func (d *MemoryDirectory) GetAllEntries(_ context.Context) ([]models.MerchantCategory, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.GetAllEntriesCalls++
	if d.GetAllEntriesError != nil {
		return nil, d.GetAllEntriesError
	}
	entries := make([]models.MerchantCategory, 0, len(d.entries))
	for k, v := range d.entries {
		entries = append(entries, models.MerchantCategory{MerchantKey: k, Category: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].MerchantKey < entries[j].MerchantKey })
	return entries, nil
}

func (d *MemoryDirectory) SetCategory(_ context.Context, entry models.MerchantCategory) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.SetCategoryCalls++
	if d.SetCategoryError != nil {
		return d.SetCategoryError
	}
	if d.entries == nil {
		d.entries = make(map[string]string)
	}
	d.entries[entry.MerchantKey] = entry.Category
	return nil
}

// Mappings returns a copy of the current entries.
func (d *MemoryDirectory) Mappings() map[string]string {
	d.mu.Lock()
	defer d.mu.Unlock()
	result := make(map[string]string, len(d.entries))
	for k, v := range d.entries {
		result[k] = v
	}
	return result
}

// MemoryLedger is an in-memory transaction store for tests.
type MemoryLedger struct {
	mu           sync.Mutex
	transactions []models.Transaction
	nextID       int64

	UpdateCategoryCalls int

	AddError            error
	GetAllByCategoryErr error
	UpdateCategoryError error
}

// NewMemoryLedger creates a ledger holding txs. Transactions without an id get one.
func NewMemoryLedger(txs ...models.Transaction) *MemoryLedger {
	l := &MemoryLedger{}
	for _, tx := range txs {
		l.insert(tx)
	}
	return l
}

func (l *MemoryLedger) insert(tx models.Transaction) models.Transaction {
	if tx.ID == 0 {
		l.nextID++
		tx.ID = l.nextID
	} else if tx.ID > l.nextID {
		l.nextID = tx.ID
	}
	tx.Category = models.NormalizeCategory(tx.Category)
	l.transactions = append(l.transactions, tx)
	return tx
}

func (l *MemoryLedger) Add(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.AddError != nil {
		return models.Transaction{}, l.AddError
	}
	tx.ID = 0
	return l.insert(tx), nil
}

func (l *MemoryLedger) Get(_ context.Context, id int64) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return models.Transaction{}, &apperror.NotFoundError{Entity: "transaction", ID: strconv.FormatInt(id, 10)}
}

// List returns transactions in insertion order.
func (l *MemoryLedger) List(_ context.Context) ([]models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Transaction(nil), l.transactions...), nil
}

func (l *MemoryLedger) GetAllByCategory(_ context.Context, category string) ([]models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.GetAllByCategoryErr != nil {
		return nil, l.GetAllByCategoryErr
	}
	var out []models.Transaction
	for _, tx := range l.transactions {
		if tx.Category == category {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (l *MemoryLedger) UpdateCategory(_ context.Context, id int64, category string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.UpdateCategoryCalls++
	if l.UpdateCategoryError != nil {
		return l.UpdateCategoryError
	}
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			l.transactions[i].Category = models.NormalizeCategory(category)
			return nil
		}
	}
	return &apperror.NotFoundError{Entity: "transaction", ID: strconv.FormatInt(id, 10)}
}

// Count returns the number of stored transactions.
func (l *MemoryLedger) Count(_ context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.transactions), nil
}
