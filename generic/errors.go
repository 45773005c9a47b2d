/*
errors.go - Centralized error types for the deposit engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Outer layers (factory, api, cmd) classify these with errors.Is/errors.As
  and translate them into HTTP statuses or exit codes. Nothing in the
  engine swallows or logs an error.

ERROR CATEGORIES:
  1. Input errors - Malformed numbers, dates, negative amounts
  2. Period errors - Closing date not after opening date
  3. Plan errors - Unknown plan type, plan type without an algorithm

USAGE:
    if errors.Is(err, generic.ErrUnsupportedPlan) {
        // report "not supported", do not retry
    }

SEE ALSO:
  - period.go: Returns InvalidPeriodError
  - deposit/plans.go: Returns UnknownPlanTypeError, UnsupportedPlanError
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned when a raw value cannot be parsed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPeriod is returned when the closing date is not after the opening date.
	ErrInvalidPeriod = errors.New("invalid period: close date must be after open date")

	// ErrNegativePrincipal is returned for a principal below zero.
	ErrNegativePrincipal = errors.New("principal must not be negative")

	// ErrNegativeRate is returned for an annual rate below zero.
	ErrNegativeRate = errors.New("rate must not be negative")

	// ErrUnknownPlanType is returned when a plan discriminator does not name a plan.
	ErrUnknownPlanType = errors.New("unknown plan type")

	// ErrUnsupportedPlan is returned for a plan type that has no accrual algorithm.
	ErrUnsupportedPlan = errors.New("plan type not supported")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidPeriodError provides the offending dates.
type InvalidPeriodError struct {
	Start TimePoint
	End   TimePoint
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period: close date %s is not after open date %s", e.End, e.Start)
}

func (e *InvalidPeriodError) Unwrap() error {
	return ErrInvalidPeriod
}

// UnknownPlanTypeError carries the discriminator that failed to parse.
type UnknownPlanTypeError struct {
	Value string
}

func (e *UnknownPlanTypeError) Error() string {
	return fmt.Sprintf("failed to parse plan type %q", e.Value)
}

func (e *UnknownPlanTypeError) Unwrap() error {
	return ErrUnknownPlanType
}

// UnsupportedPlanError names a plan type that is declared but unimplemented.
type UnsupportedPlanError struct {
	Type string
}

func (e *UnsupportedPlanError) Error() string {
	return fmt.Sprintf("plan type %q not supported: unimplemented", e.Type)
}

func (e *UnsupportedPlanError) Unwrap() error {
	return ErrUnsupportedPlan
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrNegativePrincipal) ||
		errors.Is(err, ErrNegativeRate) ||
		errors.Is(err, ErrUnknownPlanType)
}

// IsUnsupported returns true if the error marks a known but unimplemented feature.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedPlan)
}
