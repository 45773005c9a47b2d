/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Money is always sent
  as a decimal string with exactly three fractional digits so clients never
  see a binary float.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients (factory.PlanJSON for plans)

SEE ALSO:
  - handlers.go: Uses these types
  - factory/plan.go: PlanJSON request type
*/
package api

import (
	"github.com/warp/deposit-engine/deposit"
	"github.com/warp/deposit-engine/generic"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// PaymentDTO is one month-boundary payment.
type PaymentDTO struct {
	Month       string `json:"month"`
	MonthNumber int    `json:"month_number"`
	BoundaryDay int    `json:"boundary_day"`
	Amount      string `json:"amount"`
	Total       string `json:"total"`
}

// ScheduleDTO is a computed deposit plan.
type ScheduleDTO struct {
	ID            string       `json:"id"`
	Type          string       `json:"type"`
	Principal     string       `json:"principal"`
	OpenDate      string       `json:"open_date"`
	CloseDate     string       `json:"close_date"`
	Rate          string       `json:"rate"`
	Payments      []PaymentDTO `json:"payments"`
	FinalAmount   string       `json:"final_amount"`
	TotalInterest string       `json:"total_interest"`
}

// PlanTypeDTO describes a selectable plan type.
type PlanTypeDTO struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Supported   bool   `json:"supported"`
	Default     bool   `json:"default"`
}

// ScenarioDTO represents a built-in sample deposit.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HealthDTO is the health check response.
type HealthDTO struct {
	Status string `json:"status"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

// NewScheduleDTO renders a computed plan for clients.
func NewScheduleDTO(id string, plan deposit.Plan, params deposit.Params) ScheduleDTO {
	payments := plan.Payments()
	dtos := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		dtos[i] = PaymentDTO{
			Month:       p.Month.Name(),
			MonthNumber: int(p.Month.Month),
			BoundaryDay: p.Month.BoundaryDay,
			Amount:      generic.FormatMoney(p.Amount),
			Total:       generic.FormatMoney(p.Total),
		}
	}

	final := deposit.FinalAmount(params.Principal, payments)
	return ScheduleDTO{
		ID:            id,
		Type:          plan.Type().String(),
		Principal:     params.Principal.String(),
		OpenDate:      params.Open.String(),
		CloseDate:     params.Close.String(),
		Rate:          params.Rate.String(),
		Payments:      dtos,
		FinalAmount:   generic.FormatMoney(final),
		TotalInterest: generic.FormatMoney(final.Sub(params.Principal)),
	}
}
