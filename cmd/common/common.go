// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// ErrNotInitialized is returned when a command runs without the root setup.
var ErrNotInitialized = errors.New("application container is not initialized")

// Container returns the container built by the root command.
func Container() (*container.Container, error) {
	if root.AppContainer == nil {
		return nil, ErrNotInitialized
	}
	return root.AppContainer, nil
}

// ParseAmount reads a signed amount flag such as "-12.50" or "1,024.00".
func ParseAmount(value string) (decimal.Decimal, error) {
	return models.ParseAmount(value)
}

// PrintTransaction writes one transaction as a single line.
func PrintTransaction(out io.Writer, tx models.Transaction) {
	_, _ = fmt.Fprintf(out, "%6d  %s  %12s  %-20s  %s\n",
		tx.ID, tx.FormattedDate(), tx.Amount.StringFixed(2), tx.Category, tx.Description)
}
