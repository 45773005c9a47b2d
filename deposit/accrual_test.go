package deposit_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/deposit-engine/deposit"
	"github.com/warp/deposit-engine/generic"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) generic.TimePoint {
	return generic.NewTimePoint(year, month, day)
}

func dec(s string) decimal.Decimal {
	return generic.MustParseDecimal(s)
}

type expectedPayment struct {
	month  time.Month
	day    int
	amount string
	total  string
}

func assertPayments(t *testing.T, want []expectedPayment, got []deposit.Payment) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		p := got[i]
		assert.Equal(t, w.month, p.Month.Month, "payment %d month", i)
		assert.Equal(t, w.day, p.Month.BoundaryDay, "payment %d boundary day", i)
		assert.True(t, dec(w.amount).Equal(p.Amount), "payment %d amount: want %s, got %s", i, w.amount, p.Amount)
		assert.True(t, dec(w.total).Equal(p.Total), "payment %d total: want %s, got %s", i, w.total, p.Total)
	}
}

func render(payments []deposit.Payment) []string {
	out := make([]string, len(payments))
	for i, p := range payments {
		out[i] = p.Month.Name() + " " + generic.FormatMoney(p.Amount) + " " + generic.FormatMoney(p.Total)
	}
	return out
}

// =============================================================================
// ACCRUAL ENGINE TESTS
// =============================================================================

func TestAccrue_ThreeMonthDeposit(t *testing.T) {
	// GIVEN: 1000.000 at 12%/year from 2024-01-15 to 2024-04-15
	// WHEN: Accruing
	// THEN: One payment per month end (Jan, Feb, Mar), each cut to 3 digits
	payments, err := deposit.Accrue(dec("1000.000"), date(2024, time.January, 15), date(2024, time.April, 15), dec("12"))
	require.NoError(t, err)

	assertPayments(t, []expectedPayment{
		{time.January, 31, "10.191", "1010.191"},
		{time.February, 29, "9.631", "1019.822"},
		{time.March, 31, "10.393", "1030.215"},
	}, payments)

	assert.Equal(t, "January", payments[0].Month.Name())
}

func TestAccrue_CrossesYearEnd(t *testing.T) {
	// GIVEN: 50000 at 9.5% over a term spanning a new year
	payments, err := deposit.Accrue(dec("50000"), date(2024, time.November, 10), date(2025, time.March, 10), dec("9.5"))
	require.NoError(t, err)

	// THEN: Nov, Dec, Jan, Feb (non-leap February ends on the 28th)
	assertPayments(t, []expectedPayment{
		{time.November, 30, "390.410", "50390.410"},
		{time.December, 31, "406.574", "50796.984"},
		{time.January, 31, "409.855", "51206.839"},
		{time.February, 28, "373.178", "51580.017"},
	}, payments)
}

func TestAccrue_TotalCutsExactSum(t *testing.T) {
	// GIVEN: A principal with more than 3 fractional digits
	// WHEN: The first boundary is capitalized
	// THEN: The total is cut(principal + exact interest), not principal + cut(interest)
	payments, err := deposit.Accrue(dec("1000.12345"), date(2023, time.December, 1), date(2024, time.January, 5), dec("5"))
	require.NoError(t, err)

	assertPayments(t, []expectedPayment{
		{time.December, 31, "4.247", "1004.370"},
	}, payments)
}

func TestAccrue_OpenOnLastDayOfMonth(t *testing.T) {
	// GIVEN: Deposit opened on Jan 31 and closed on Feb 2
	// THEN: Jan 31 itself is a boundary, charged for 31 daily units
	payments, err := deposit.Accrue(dec("1000"), date(2024, time.January, 31), date(2024, time.February, 2), dec("7.5"))
	require.NoError(t, err)

	assertPayments(t, []expectedPayment{
		{time.January, 31, "6.369", "1006.369"},
	}, payments)
}

func TestAccrue_CloseOnFirstOfMonth_NoBoundary(t *testing.T) {
	// GIVEN: Close date is the first of the next month
	// THEN: The walk stops before the last month end, no payment
	payments, err := deposit.Accrue(dec("1000"), date(2024, time.January, 15), date(2024, time.February, 1), dec("7.5"))
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestAccrue_OneDayTerm_Empty(t *testing.T) {
	payments, err := deposit.Accrue(dec("1000"), date(2024, time.March, 10), date(2024, time.March, 11), dec("7.5"))
	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}

func TestAccrue_InvalidPeriod(t *testing.T) {
	tests := []struct {
		name  string
		open  generic.TimePoint
		close generic.TimePoint
	}{
		{"same day", date(2024, time.March, 10), date(2024, time.March, 10)},
		{"close before open", date(2024, time.March, 10), date(2024, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments, err := deposit.Accrue(dec("1000"), tt.open, tt.close, dec("7.5"))
			require.Error(t, err)
			assert.ErrorIs(t, err, generic.ErrInvalidPeriod)
			assert.Nil(t, payments)

			var periodErr *generic.InvalidPeriodError
			require.ErrorAs(t, err, &periodErr)
			assert.Equal(t, tt.open, periodErr.Start)
		})
	}
}

func TestAccrue_ZeroRate_TotalsStayAtPrincipal(t *testing.T) {
	payments, err := deposit.Accrue(dec("250.5"), date(2024, time.January, 1), date(2024, time.June, 1), decimal.Zero)
	require.NoError(t, err)
	require.Len(t, payments, 4)
	for _, p := range payments {
		assert.True(t, p.Amount.IsZero())
		assert.True(t, dec("250.5").Equal(p.Total))
	}
}

// =============================================================================
// PROPERTIES
// =============================================================================

func TestAccrue_Properties(t *testing.T) {
	// GIVEN: A spread of terms and rates
	// THEN: Count matches month transitions, totals never decrease,
	//       every amount and total has at most 3 fractional digits,
	//       and repeated runs are identical.
	cases := []struct {
		open, close generic.TimePoint
		principal   string
		rate        string
		transitions int
	}{
		{date(2024, time.January, 15), date(2024, time.April, 15), "1000", "12", 3},
		{date(2023, time.February, 27), date(2025, time.February, 27), "12345.6789", "3.33", 24},
		{date(2020, time.February, 28), date(2020, time.March, 2), "0", "10", 1},
		{date(2021, time.June, 1), date(2021, time.June, 30), "999.999", "0.01", 0},
		{date(2022, time.December, 30), date(2023, time.January, 2), "100", "100", 1},
	}

	for _, c := range cases {
		t.Run(c.open.String()+"_"+c.close.String(), func(t *testing.T) {
			first, err := deposit.Accrue(dec(c.principal), c.open, c.close, dec(c.rate))
			require.NoError(t, err)
			second, err := deposit.Accrue(dec(c.principal), c.open, c.close, dec(c.rate))
			require.NoError(t, err)

			assert.Len(t, first, c.transitions)
			assert.Equal(t, render(first), render(second))

			previous := dec(c.principal).Truncate(generic.MoneyScale)
			for i, p := range first {
				assert.True(t, p.Total.GreaterThanOrEqual(previous), "payment %d total decreased", i)
				assert.True(t, p.Amount.Equal(p.Amount.Truncate(generic.MoneyScale)), "payment %d amount scale", i)
				assert.True(t, p.Total.Equal(p.Total.Truncate(generic.MoneyScale)), "payment %d total scale", i)
				previous = p.Total
			}
		})
	}
}
