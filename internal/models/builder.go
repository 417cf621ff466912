package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionBuilder provides a fluent API for constructing transactions
type TransactionBuilder struct {
	tx  Transaction
	err error
}

// NewTransactionBuilder creates a new TransactionBuilder with default values
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		tx: Transaction{
			Category: CategoryUncategorized,
			Amount:   decimal.Zero,
		},
	}
}

// WithID sets the transaction ID
func (b *TransactionBuilder) WithID(id int64) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.ID = id
	return b
}

// WithDate parses the date with the given layout. An empty layout means DateLayout.
func (b *TransactionBuilder) WithDate(dateStr, layout string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		b.err = errors.New("date cannot be empty")
		return b
	}
	if layout == "" {
		layout = DateLayout
	}
	date, err := time.Parse(layout, dateStr)
	if err != nil {
		b.err = fmt.Errorf("invalid date %q: %w", dateStr, err)
		return b
	}
	b.tx.Date = date
	return b
}

// WithDateFromTime sets the transaction date from a time.Time
func (b *TransactionBuilder) WithDateFromTime(date time.Time) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if date.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.tx.Date = date
	return b
}

// WithAmount sets the signed amount
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Amount = amount
	return b
}

// WithAmountFromString parses a signed amount such as "-12.50" or "1,024.00".
func (b *TransactionBuilder) WithAmountFromString(amount string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	dec, err := ParseAmount(amount)
	if err != nil {
		b.err = err
		return b
	}
	b.tx.Amount = dec
	return b
}

// WithDescription sets the raw statement description
func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Description = description
	return b
}

// WithCategory sets the category; blank means uncategorized
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Category = NormalizeCategory(category)
	return b
}

// Build returns the transaction or the first error recorded by a With* call.
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, b.err
	}
	if b.tx.Date.IsZero() {
		return Transaction{}, errors.New("transaction date is required")
	}
	return b.tx, nil
}
