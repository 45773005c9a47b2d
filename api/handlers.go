/*
handlers.go - HTTP API handlers for the deposit engine

PURPOSE:
  Exposes deposit plan computation via REST API. Handles HTTP
  request/response and JSON serialization, and delegates to the factory
  and the deposit package. Nothing is stored: every request computes a
  fresh schedule.

ENDPOINTS:
  GET    /api/health              Liveness
  GET    /api/plan-types          Selectable plan types
  POST   /api/plans               Compute a plan from factory.PlanJSON
  GET    /api/scenarios           List sample deposits
  GET    /api/scenarios/{id}      Compute a sample deposit

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid input, invalid period, unknown plan type
  - 404: Unknown scenario
  - 501: Plan type without an algorithm ("save")
  - 500: Anything else

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Sample deposits
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/oklog/ulid/v2"
	"github.com/warp/deposit-engine/deposit"
	"github.com/warp/deposit-engine/factory"
	"github.com/warp/deposit-engine/generic"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	PlanFactory *factory.PlanFactory
	Logger      *slog.Logger

	// newID issues schedule identifiers; replaced in tests
	newID func() string
}

// NewHandler creates a new handler whose factory falls back to defaultType.
func NewHandler(defaultType deposit.PlanType, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		PlanFactory: factory.NewPlanFactory(defaultType),
		Logger:      logger,
		newID:       func() string { return ulid.Make().String() },
	}
}

// =============================================================================
// PLAN HANDLERS
// =============================================================================

// Health reports that the server is up.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthDTO{Status: "ok"})
}

// ListPlanTypes returns every known plan type.
// GET /api/plan-types
func (h *Handler) ListPlanTypes(w http.ResponseWriter, r *http.Request) {
	dtos := make([]PlanTypeDTO, len(deposit.PlanTypes))
	for i, pt := range deposit.PlanTypes {
		dtos[i] = PlanTypeDTO{
			Type:        pt.String(),
			Description: planTypeDescriptions[pt],
			Supported:   pt.Supported(),
			Default:     pt == h.PlanFactory.DefaultType,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

var planTypeDescriptions = map[deposit.PlanType]string{
	deposit.PlanFixed: "Interest capitalized at every month end",
	deposit.PlanSave:  "Interest paid out without capitalization (not yet available)",
}

// CreatePlan computes a deposit plan.
// POST /api/plans
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req factory.PlanJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.computeAndWrite(w, r, req)
}

func (h *Handler) computeAndWrite(w http.ResponseWriter, r *http.Request, req factory.PlanJSON) {
	planType, params, err := h.PlanFactory.Resolve(req)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	plan, err := deposit.NewPlan(planType, params)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	schedule := NewScheduleDTO(h.newID(), plan, params)
	h.Logger.InfoContext(r.Context(), "plan computed",
		"id", schedule.ID,
		"type", schedule.Type,
		"payments", len(schedule.Payments),
		"final_amount", schedule.FinalAmount,
	)
	writeJSON(w, http.StatusOK, schedule)
}

// writePlanError maps the engine's error taxonomy to HTTP statuses.
func (h *Handler) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case generic.IsUnsupported(err):
		writeError(w, http.StatusNotImplemented, "Plan type not supported", err)
	case generic.IsClientError(err):
		writeError(w, http.StatusBadRequest, "Invalid plan", err)
	default:
		h.Logger.ErrorContext(r.Context(), "plan computation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to compute plan", err)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
