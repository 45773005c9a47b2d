// Package deposit implements deposit products on top of the generic engine.
// A product is a Plan: an immutable, eagerly computed schedule of payments.
package deposit

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/deposit-engine/generic"
)

// =============================================================================
// PAYMENTS
// =============================================================================

// PaymentMonth identifies the calendar month a payment was accrued in.
//
// BoundaryDay is the day-of-month of the boundary day, i.e. the last day of
// Month. It is also the number of daily-rate units the accrual formula
// charges for this payment, whatever the opening date was. It is not the
// length of the accrued period.
type PaymentMonth struct {
	Month       time.Month
	BoundaryDay int
}

// Name returns the English month name, e.g. "January".
func (pm PaymentMonth) Name() string { return pm.Month.String() }

// Payment is the interest accrued up to one month boundary.
// Amount is the interest of this period; Total is the running balance after
// the interest was capitalized. Both carry at most generic.MoneyScale digits.
type Payment struct {
	Month  PaymentMonth
	Amount decimal.Decimal
	Total  decimal.Decimal
}

// =============================================================================
// PLAN INPUTS
// =============================================================================

// Params are the four validated inputs every deposit plan is built from.
// Rate is an annual percentage: 7.5 means 7.5% per year.
type Params struct {
	Principal decimal.Decimal
	Open      generic.TimePoint
	Close     generic.TimePoint
	Rate      decimal.Decimal
}

// Period returns the deposit term [Open, Close).
func (p Params) Period() generic.Period {
	return generic.Period{Start: p.Open, End: p.Close}
}

// Validate checks the preconditions shared by all plan types.
func (p Params) Validate() error {
	if p.Principal.IsNegative() {
		return generic.ErrNegativePrincipal
	}
	if p.Rate.IsNegative() {
		return generic.ErrNegativeRate
	}
	return p.Period().Validate()
}

// =============================================================================
// PLAN TYPES
// =============================================================================

// PlanType discriminates deposit products.
type PlanType string

const (
	// PlanFixed capitalizes interest at every month boundary.
	PlanFixed PlanType = "fixed"
	// PlanSave is the non-capitalizing product. It has no algorithm yet.
	PlanSave PlanType = "save"
)

// DefaultPlanType is used when a caller does not name a plan type.
const DefaultPlanType = PlanFixed

// PlanTypes lists every known plan type in display order.
var PlanTypes = []PlanType{PlanFixed, PlanSave}

// ParsePlanType matches s exactly (case-sensitive) against the known plan types.
func ParsePlanType(s string) (PlanType, error) {
	switch PlanType(s) {
	case PlanFixed:
		return PlanFixed, nil
	case PlanSave:
		return PlanSave, nil
	default:
		return "", &generic.UnknownPlanTypeError{Value: s}
	}
}

func (t PlanType) String() string { return string(t) }

// Supported reports whether the plan type has an accrual algorithm.
func (t PlanType) Supported() bool { return t == PlanFixed }

func (t PlanType) MarshalText() ([]byte, error) { return []byte(t), nil }

func (t *PlanType) UnmarshalText(b []byte) error {
	parsed, err := ParsePlanType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// =============================================================================
// PLAN
// =============================================================================

// Plan exposes a payment schedule that was fully computed at construction.
type Plan interface {
	Type() PlanType

	// Payments returns the schedule in chronological order. Callers receive
	// a copy and cannot alter the plan.
	Payments() []Payment
}
