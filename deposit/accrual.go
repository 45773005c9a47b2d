/*
accrual.go - Capitalizing interest accrual engine

PURPOSE:
  Turns (principal, open date, close date, annual rate) into the ordered
  list of month-boundary payments of a capitalizing deposit.

ALGORITHM:
  1. Walk the term day by day. A day d is a boundary when d and d+1 fall in
     different months and d+1 is still before the closing date.
  2. At each boundary, charge
         amount = rate / 100 / 365 * balance * day_of_month(d)
     against the current running balance.
  3. Cut the amount to 3 fractional digits. Add the exact amount to the
     balance and cut the balance to 3 digits. The new balance is the
     principal of the next boundary (capitalization).

ROUNDING:
  Digits are cut toward zero (truncated) at every boundary, never only at
  the end. Results are path-dependent: changing the order of operations or
  the rounding mode changes the totals.

  The formula is evaluated as rate * balance * day / 36500 with a single
  exact division, so no digit is lost before the cut.

APPROXIMATION:
  day_of_month(d) stands in for "days accrued since the previous boundary".
  A deposit opened on the 15th is charged a full month for its first
  boundary. This is the product's published formula and is reproduced
  as is.

EXAMPLE:
  1000 @ 12%, 2024-01-15 -> 2024-04-15:
    January   31  10.191  1010.191
    February  29   9.631  1019.822
    March     31  10.393  1030.215

SEE ALSO:
  - generic/period.go: MonthBoundaries walk
  - plans.go: CapitalizationPlan wraps this engine
*/
package deposit

import (
	"github.com/shopspring/decimal"
	"github.com/warp/deposit-engine/generic"
)

// daysPercentBase is 100 (percent) * 365 (days per year).
var daysPercentBase = decimal.NewFromInt(36500)

// Accrue computes the capitalizing payment schedule for the given inputs.
// It returns an *generic.InvalidPeriodError, and no payments, unless close is
// after open. A term without any month boundary yields an empty schedule.
func Accrue(principal decimal.Decimal, open, close generic.TimePoint, rate decimal.Decimal) ([]Payment, error) {
	period := generic.Period{Start: open, End: close}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	boundaries := period.MonthBoundaries()
	payments := make([]Payment, 0, len(boundaries))
	balance := principal
	for _, day := range boundaries {
		var payment Payment
		balance, payment = accrueBoundary(balance, day, rate)
		payments = append(payments, payment)
	}
	return payments, nil
}

// accrueBoundary is one step of the fold: it charges interest for the
// boundary day against balance and returns the capitalized balance along
// with the payment it produced.
func accrueBoundary(balance decimal.Decimal, day generic.TimePoint, rate decimal.Decimal) (decimal.Decimal, Payment) {
	units := decimal.NewFromInt(int64(day.Day()))
	interest := rate.Mul(balance).Mul(units)

	amount := generic.QuoMoney(interest, daysPercentBase)
	// balance + interest/36500, cut once, without rounding interest first
	next := generic.QuoMoney(balance.Mul(daysPercentBase).Add(interest), daysPercentBase)

	return next, Payment{
		Month: PaymentMonth{
			Month:       day.Month(),
			BoundaryDay: day.Day(),
		},
		Amount: amount,
		Total:  next,
	}
}
