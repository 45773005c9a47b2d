/*
Package generic provides the domain-agnostic building blocks of the deposit engine.

PURPOSE:
  Calendar dates, date ranges, decimal helpers and the error taxonomy that
  every deposit product shares. Products (package deposit) own the accrual
  algorithms; this package owns the vocabulary they are written in.

KEY CONCEPTS:
  - TimePoint: A calendar date (time.go)
  - Period: The half-open [open, close) term of a deposit (period.go)
  - Money: decimal.Decimal at a fixed 3-digit scale (this file)
  - Errors: Sentinels plus structured errors (errors.go)

DESIGN PRINCIPLES:
  1. Precision: Money and rates are decimal.Decimal, never float64
  2. Explicit failure: Every invalid input is a typed error

SEE ALSO:
  - deposit/accrual.go: The accrual engine built on these types
*/
package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - decimal amounts at a fixed scale
// =============================================================================

// MoneyScale is the number of fractional digits kept on every amount and
// running balance.
const MoneyScale int32 = 3

// ParseDecimal parses a decimal string, wrapping failures in ErrInvalidInput.
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: decimal %q", ErrInvalidInput, s)
	}
	return d, nil
}

func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TruncateMoney cuts d to MoneyScale digits toward zero.
func TruncateMoney(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(MoneyScale)
}

// QuoMoney returns num/den cut to MoneyScale digits toward zero. The
// division is exact: no intermediate rounding happens before the cut.
func QuoMoney(num, den decimal.Decimal) decimal.Decimal {
	q, _ := num.QuoRem(den, MoneyScale)
	return q
}

// FormatMoney renders d with exactly MoneyScale fractional digits.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyScale)
}
