package money

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidMoney = errors.New("invalid money amount")
)

// CentsPerUnit is the number of minor units in one unit of currency.
const CentsPerUnit = 100

// DefaultCurrency is the currency recorded when a caller does not supply one.
const DefaultCurrency = "KSH"

// ToCents converts a decimal currency value (like 12.34) to cents as int64 safely.
// Use ONLY when you must parse user-entered decimal amounts.
// Prefer sending cents directly from callers.
func ToCents(units float64) (int64, error) {
	if math.IsNaN(units) || math.IsInf(units, 0) {
		return 0, ErrInvalidMoney
	}
	if units < 0 {
		return 0, ErrInvalidMoney
	}
	// Prevent overflow: int64 max ~9e18 => units max ~9e16
	if units > 9e16 {
		return 0, fmt.Errorf("%w: too large", ErrInvalidMoney)
	}
	cents := int64(math.Round(units * float64(CentsPerUnit)))
	if cents < 0 {
		return 0, ErrInvalidMoney
	}
	return cents, nil
}

func FormatCents(cents int64) string {
	// Lightweight formatting without float: 123.45 style string
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := cents / CentsPerUnit
	frac := cents % CentsPerUnit
	return fmt.Sprintf("%s%d.%02d", sign, whole, frac)
}
