package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	// AmountPrecision is the number of fractional digits shown for amounts.
	AmountPrecision = 4
	MaxAmount       = "1000000000000" // 1 trillion
)

var maxAmount = decimal.RequireFromString(MaxAmount)

// ParseAmount parses a decimal amount and validates it.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ValidateAmount checks that amount is positive and within limits.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(maxAmount) {
		return ErrAmountTooLarge
	}
	return nil
}

// FormatAmount renders an amount with AmountPrecision fractional digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountPrecision)
}
