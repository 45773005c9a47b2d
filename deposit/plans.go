package deposit

import (
	"github.com/shopspring/decimal"
	"github.com/warp/deposit-engine/generic"
)

// =============================================================================
// PLAN CONSTRUCTION
// =============================================================================

// NewPlan builds the plan of the given type. It is the single dispatch point
// over the closed set of plan types.
func NewPlan(planType PlanType, params Params) (Plan, error) {
	switch planType {
	case PlanFixed:
		plan, err := NewCapitalizationPlan(params)
		if err != nil {
			return nil, err
		}
		return plan, nil
	case PlanSave:
		plan, err := NewSavePlan(params)
		if err != nil {
			return nil, err
		}
		return plan, nil
	default:
		return nil, &generic.UnknownPlanTypeError{Value: string(planType)}
	}
}

// =============================================================================
// CAPITALIZATION PLAN ("fixed")
// =============================================================================

// CapitalizationPlan is a deposit whose interest is added to the balance at
// every month boundary.
type CapitalizationPlan struct {
	params   Params
	payments []Payment
}

// Compile-time check that CapitalizationPlan implements Plan
var _ Plan = (*CapitalizationPlan)(nil)

// NewCapitalizationPlan validates params and computes the whole schedule.
func NewCapitalizationPlan(params Params) (*CapitalizationPlan, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	payments, err := Accrue(params.Principal, params.Open, params.Close, params.Rate)
	if err != nil {
		return nil, err
	}
	return &CapitalizationPlan{params: params, payments: payments}, nil
}

func (p *CapitalizationPlan) Type() PlanType { return PlanFixed }

func (p *CapitalizationPlan) Params() Params { return p.params }

func (p *CapitalizationPlan) Payments() []Payment {
	out := make([]Payment, len(p.payments))
	copy(out, p.payments)
	return out
}

// FinalAmount is the balance after the last boundary, or the principal when
// the term crosses no boundary.
func (p *CapitalizationPlan) FinalAmount() decimal.Decimal {
	return FinalAmount(p.params.Principal, p.payments)
}

// TotalInterest is FinalAmount minus the principal.
func (p *CapitalizationPlan) TotalInterest() decimal.Decimal {
	return p.FinalAmount().Sub(p.params.Principal)
}

// FinalAmount returns the total of the last payment, or principal when
// there is none.
func FinalAmount(principal decimal.Decimal, payments []Payment) decimal.Decimal {
	if len(payments) == 0 {
		return principal
	}
	return payments[len(payments)-1].Total
}

// =============================================================================
// SAVE PLAN (non-capitalizing)
// =============================================================================

// SavePlan is the non-capitalizing product. It is declared so callers can
// select it, but it has no accrual algorithm: construction always fails.
type SavePlan struct{}

// Compile-time check that SavePlan implements Plan
var _ Plan = (*SavePlan)(nil)

// NewSavePlan always returns an *generic.UnsupportedPlanError.
func NewSavePlan(params Params) (*SavePlan, error) {
	return nil, &generic.UnsupportedPlanError{Type: string(PlanSave)}
}

func (p *SavePlan) Type() PlanType { return PlanSave }

func (p *SavePlan) Payments() []Payment { return nil }
