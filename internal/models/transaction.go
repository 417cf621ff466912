// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry. A positive amount is income,
// a negative amount is an expense.
type Transaction struct {
	ID          int64
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	Description string
}

// IsIncome reports whether the transaction credits the account.
// A zero amount is not income.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsUncategorized reports whether no category has been determined yet.
func (t Transaction) IsUncategorized() bool {
	return t.Category == "" || t.Category == CategoryUncategorized
}

// FormattedDate returns the date in storage layout.
func (t Transaction) FormattedDate() string {
	return t.Date.Format(DateLayout)
}

// NormalizeCategory maps a blank category to the uncategorized sentinel.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return CategoryUncategorized
	}
	return category
}
