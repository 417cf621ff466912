package categorizer

import (
	"context"
	"fmt"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

// EditResult describes the outcome of a manual category edit.
type EditResult struct {
	Transaction   models.Transaction
	Previous      string
	Changed       bool
	Recategorized int
}

// Workflow ties the categorizer to the ledger for adding and editing
// transactions.
type Workflow struct {
	categorizer      *Categorizer
	ledger           Ledger
	autoRecategorize bool
	logger           logging.Logger
}

// NewWorkflow creates a Workflow. With autoRecategorize set, every manual
// category change is followed by a recategorization pass.
func NewWorkflow(categorizer *Categorizer, ledger Ledger, autoRecategorize bool, logger logging.Logger) *Workflow {
	return &Workflow{
		categorizer:      categorizer,
		ledger:           ledger,
		autoRecategorize: autoRecategorize,
		logger:           logging.OrDefault(logger),
	}
}

// Suggest proposes a category for tx. Only uncategorized transactions get a
// fresh suggestion; others keep the category they have.
func (w *Workflow) Suggest(ctx context.Context, tx models.Transaction) (string, error) {
	if !tx.IsUncategorized() {
		return tx.Category, nil
	}
	return w.categorizer.CategorizeTransaction(ctx, tx)
}

// AddTransaction stores tx, categorizing it first when it has no category.
func (w *Workflow) AddTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if tx.IsUncategorized() {
		category, err := w.categorizer.CategorizeTransaction(ctx, tx)
		if err != nil {
			return models.Transaction{}, err
		}
		tx.Category = category
	}

	added, err := w.ledger.Add(ctx, tx)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}

	w.logger.Debug("Added transaction",
		logging.Field{Key: logging.FieldTransactionID, Value: added.ID},
		logging.Field{Key: logging.FieldCategory, Value: added.Category})
	return added, nil
}

// EditCategory sets the category of transaction id. A blank category means
// uncategorized. When the category actually changes, the choice is learned
// for the transaction's merchant and, if enabled, the uncategorized backlog
// is recategorized.
func (w *Workflow) EditCategory(ctx context.Context, id int64, category string) (EditResult, error) {
	tx, err := w.ledger.Get(ctx, id)
	if err != nil {
		return EditResult{}, err
	}

	category = models.NormalizeCategory(category)
	result := EditResult{Transaction: tx, Previous: tx.Category}
	if category == tx.Category {
		return result, nil
	}

	if err := w.ledger.UpdateCategory(ctx, id, category); err != nil {
		return result, fmt.Errorf("update transaction %d: %w", id, err)
	}
	result.Transaction.Category = category
	result.Changed = true

	w.logger.Info("Transaction category changed",
		logging.Field{Key: logging.FieldTransactionID, Value: id},
		logging.Field{Key: logging.FieldPrevious, Value: tx.Category},
		logging.Field{Key: logging.FieldCategory, Value: category})

	if err := w.categorizer.RecordCategoryChoice(ctx, tx.Description, category); err != nil {
		return result, err
	}

	if !w.autoRecategorize {
		return result, nil
	}

	updated, err := w.categorizer.RecategorizeUncategorized(ctx)
	result.Recategorized = updated
	if err != nil {
		return result, err
	}
	return result, nil
}
