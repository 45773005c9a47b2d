package generic

// =============================================================================
// PERIOD - The date range a deposit is open for
// =============================================================================

// Period is the half-open deposit term [Start, End): Start is the opening
// date and End the closing (maturity or prolongation) date.
type Period struct {
	Start TimePoint
	End   TimePoint
}

// Validate returns an *InvalidPeriodError unless End is strictly after Start.
func (p Period) Validate() error {
	if !p.End.After(p.Start) {
		return &InvalidPeriodError{Start: p.Start, End: p.End}
	}
	return nil
}

// Contains returns true if the time point is within [Start, End).
func (p Period) Contains(t TimePoint) bool {
	return t.AfterOrEqual(p.Start) && t.Before(p.End)
}

// Days returns the length of the period in days (End - Start).
func (p Period) Days() int {
	return DaysBetween(p.Start, p.End)
}

// MonthBoundaries returns, in ascending order, every day d of the period
// for which d and d+1 fall in different calendar months and d+1 is still
// before End. The walk starts the day before Start and steps over offsets
// 1..Days()-1, so a period of one day has no boundaries.
//
// The period must be valid; an invalid period yields no boundaries.
func (p Period) MonthBoundaries() []TimePoint {
	var boundaries []TimePoint
	reference := p.Start.AddDays(-1)
	for offset := 1; offset < p.Days(); offset++ {
		day := reference.AddDays(offset)
		if day.IsLastDayOfMonth() {
			boundaries = append(boundaries, day)
		}
	}
	return boundaries
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + ")"
}
