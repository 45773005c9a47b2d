package generic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/deposit-engine/generic"
)

func TestPeriod_Validate(t *testing.T) {
	valid := generic.Period{Start: date(2024, time.January, 1), End: date(2024, time.January, 2)}
	assert.NoError(t, valid.Validate())

	same := generic.Period{Start: date(2024, time.January, 1), End: date(2024, time.January, 1)}
	err := same.Validate()
	assert.ErrorIs(t, err, generic.ErrInvalidPeriod)
	assert.Contains(t, err.Error(), "2024-01-01")

	reversed := generic.Period{Start: date(2024, time.January, 2), End: date(2024, time.January, 1)}
	assert.ErrorIs(t, reversed.Validate(), generic.ErrInvalidPeriod)
}

func TestPeriod_ContainsIsHalfOpen(t *testing.T) {
	p := generic.Period{Start: date(2024, time.January, 15), End: date(2024, time.April, 15)}
	assert.True(t, p.Contains(p.Start))
	assert.True(t, p.Contains(date(2024, time.April, 14)))
	assert.False(t, p.Contains(p.End))
	assert.Equal(t, 91, p.Days())
	assert.Equal(t, "[2024-01-15, 2024-04-15)", p.String())
}

func TestPeriod_MonthBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		start generic.TimePoint
		end   generic.TimePoint
		want  []string
	}{
		{
			name:  "three month ends",
			start: date(2024, time.January, 15),
			end:   date(2024, time.April, 15),
			want:  []string{"2024-01-31", "2024-02-29", "2024-03-31"},
		},
		{
			name:  "start on month end counts",
			start: date(2024, time.January, 31),
			end:   date(2024, time.February, 2),
			want:  []string{"2024-01-31"},
		},
		{
			name:  "end on first of month excludes last month end",
			start: date(2024, time.January, 15),
			end:   date(2024, time.February, 1),
			want:  nil,
		},
		{
			name:  "end two days after month end includes it",
			start: date(2024, time.January, 15),
			end:   date(2024, time.February, 2),
			want:  []string{"2024-01-31"},
		},
		{
			name:  "one day term",
			start: date(2024, time.January, 31),
			end:   date(2024, time.February, 1),
			want:  nil,
		},
		{
			name:  "invalid period",
			start: date(2024, time.March, 1),
			end:   date(2024, time.January, 1),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := generic.Period{Start: tt.start, End: tt.end}
			var got []string
			for _, d := range p.MonthBoundaries() {
				got = append(got, d.String())
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, generic.IsClientError(&generic.UnknownPlanTypeError{Value: "x"}))
	assert.False(t, generic.IsUnsupported(&generic.UnknownPlanTypeError{Value: "x"}))
	assert.True(t, generic.IsUnsupported(&generic.UnsupportedPlanError{Type: "save"}))
	assert.False(t, generic.IsClientError(&generic.UnsupportedPlanError{Type: "save"}))
}
