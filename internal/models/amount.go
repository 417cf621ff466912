package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a signed amount as printed on statements: "-12.50",
// "1,024.00", "$5" or the accounting form "(12.50)" for a debit.
func ParseAmount(amount string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(amount), ",", "")
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + strings.Trim(cleaned, "()")
	}
	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return dec, nil
}
