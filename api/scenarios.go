/*
scenarios.go - Built-in sample deposits for demos and smoke tests

PURPOSE:
  Provides pre-built deposits that exercise the interesting corners of the
  accrual rules: leap-year February, year end, terms without any month
  boundary, and the unsupported "save" product.

USAGE VIA API:
	GET /api/scenarios
	GET /api/scenarios/quarter-leap-year

ADDING NEW SCENARIOS:
 1. Add an entry to 'scenarios' with its ID, name, description and plan

SEE ALSO:
  - handlers.go: computeAndWrite shared with POST /api/plans
  - factory/plan.go: PlanJSON definitions
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/warp/deposit-engine/factory"
	"github.com/warp/deposit-engine/generic"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

type scenario struct {
	ScenarioDTO
	Plan factory.PlanJSON
}

var scenarios = []scenario{
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "quarter-leap-year",
			Name:        "Quarter in a Leap Year",
			Description: "1000 at 12% from mid-January to mid-April 2024, three capitalizations",
		},
		Plan: samplePlan("fixed", "1000.000", "2024-01-15", "2024-04-15", "12"),
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "year-end",
			Name:        "Across Year End",
			Description: "50000 at 9.5% from November to March, crossing into a new year",
		},
		Plan: samplePlan("fixed", "50000", "2024-11-10", "2025-03-10", "9.5"),
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "two-years",
			Name:        "Two-Year Term",
			Description: "250000 at 7.5% for two full years",
		},
		Plan: samplePlan("fixed", "250000", "2024-03-01", "2026-03-01", "7.5"),
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "no-boundary",
			Name:        "Within One Month",
			Description: "A term that never crosses a month end: empty schedule",
		},
		Plan: samplePlan("fixed", "1000", "2024-06-03", "2024-06-28", "10"),
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "save",
			Name:        "Save Deposit",
			Description: "Non-capitalizing product, not yet available",
		},
		Plan: samplePlan("save", "1000", "2024-01-15", "2024-04-15", "12"),
	},
}

func samplePlan(planType, principal, open, close, rate string) factory.PlanJSON {
	return factory.PlanJSON{
		Type:      planType,
		Principal: decimal.NewNullDecimal(generic.MustParseDecimal(principal)),
		OpenDate:  open,
		CloseDate: close,
		Rate:      decimal.NewNullDecimal(generic.MustParseDecimal(rate)),
	}
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns the sample deposits.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = s.ScenarioDTO
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetScenario computes one sample deposit.
// GET /api/scenarios/{id}
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, s := range scenarios {
		if s.ID == id {
			h.computeAndWrite(w, r, s.Plan)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Scenario not found", nil)
}
