/*
Package factory provides JSON to Go deposit plan conversion.

PURPOSE:
  Converts JSON plan definitions into deposit.Plan objects. The HTTP API,
  the CLI and the scenario catalog all describe deposits this way, so input
  parsing and validation live in one place.

JSON SCHEMA:
  {
    "type": "fixed",
    "principal": "1000.000",
    "open_date": "2024-01-15",
    "close_date": "2024-04-15",
    "rate": "12"
  }

  - type: "fixed" (capitalizing) or "save"; empty means the factory default
  - principal, rate: decimal strings or JSON numbers, parsed without floats
  - open_date, close_date: YYYY-MM-DD

KEY FEATURES:
  - Every field except type is required
  - Malformed numbers and dates wrap generic.ErrInvalidInput
  - Unknown types wrap generic.ErrUnknownPlanType
  - "save" surfaces generic.ErrUnsupportedPlan from the deposit package

USAGE:
  f := NewPlanFactory(deposit.DefaultPlanType)
  plan, err := f.ParsePlan(jsonString)

SEE ALSO:
  - deposit/plans.go: Plan implementations
  - api/handlers.go: POST /api/plans
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/deposit-engine/deposit"
	"github.com/warp/deposit-engine/generic"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// PlanJSON is the JSON representation of a deposit plan request.
type PlanJSON struct {
	Type      string              `json:"type,omitempty"`
	Principal decimal.NullDecimal `json:"principal"`
	OpenDate  string              `json:"open_date"`
	CloseDate string              `json:"close_date"`
	Rate      decimal.NullDecimal `json:"rate"`
}

// NewPlanJSON builds a PlanJSON from already typed values.
func NewPlanJSON(planType deposit.PlanType, params deposit.Params) PlanJSON {
	return PlanJSON{
		Type:      planType.String(),
		Principal: decimal.NewNullDecimal(params.Principal),
		OpenDate:  params.Open.String(),
		CloseDate: params.Close.String(),
		Rate:      decimal.NewNullDecimal(params.Rate),
	}
}

// =============================================================================
// PLAN FACTORY
// =============================================================================

// PlanFactory converts JSON plans to deposit plans.
type PlanFactory struct {
	DefaultType deposit.PlanType
}

// NewPlanFactory creates a factory that falls back to defaultType when a
// definition does not name one.
func NewPlanFactory(defaultType deposit.PlanType) *PlanFactory {
	return &PlanFactory{DefaultType: defaultType}
}

// ParsePlan parses a JSON string into a computed Plan.
func (f *PlanFactory) ParsePlan(jsonStr string) (deposit.Plan, error) {
	var pj PlanJSON
	if err := json.Unmarshal([]byte(jsonStr), &pj); err != nil {
		return nil, fmt.Errorf("%w: failed to parse plan JSON: %v", generic.ErrInvalidInput, err)
	}
	return f.FromJSON(pj)
}

// FromJSON validates pj and builds the plan it describes.
func (f *PlanFactory) FromJSON(pj PlanJSON) (deposit.Plan, error) {
	planType, params, err := f.Resolve(pj)
	if err != nil {
		return nil, err
	}
	return deposit.NewPlan(planType, params)
}

// Resolve turns pj into typed inputs without building the plan.
func (f *PlanFactory) Resolve(pj PlanJSON) (deposit.PlanType, deposit.Params, error) {
	planType, err := f.parseType(pj.Type)
	if err != nil {
		return "", deposit.Params{}, err
	}

	if !pj.Principal.Valid {
		return "", deposit.Params{}, fmt.Errorf("%w: principal is required", generic.ErrInvalidInput)
	}
	if !pj.Rate.Valid {
		return "", deposit.Params{}, fmt.Errorf("%w: rate is required", generic.ErrInvalidInput)
	}

	open, err := parseRequiredDate("open_date", pj.OpenDate)
	if err != nil {
		return "", deposit.Params{}, err
	}
	closeDate, err := parseRequiredDate("close_date", pj.CloseDate)
	if err != nil {
		return "", deposit.Params{}, err
	}

	params := deposit.Params{
		Principal: pj.Principal.Decimal,
		Open:      open,
		Close:     closeDate,
		Rate:      pj.Rate.Decimal,
	}
	if err := params.Validate(); err != nil {
		return "", deposit.Params{}, err
	}
	return planType, params, nil
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func (f *PlanFactory) parseType(s string) (deposit.PlanType, error) {
	if s == "" {
		if f.DefaultType == "" {
			return deposit.DefaultPlanType, nil
		}
		return f.DefaultType, nil
	}
	return deposit.ParsePlanType(s)
}

func parseRequiredDate(field, s string) (generic.TimePoint, error) {
	if s == "" {
		return generic.TimePoint{}, fmt.Errorf("%w: %s is required", generic.ErrInvalidInput, field)
	}
	tp, err := generic.ParseTimePoint(s)
	if err != nil {
		return generic.TimePoint{}, fmt.Errorf("%s: %w", field, err)
	}
	return tp, nil
}
