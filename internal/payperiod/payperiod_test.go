package payperiod_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronharel02/hilan-attendance/internal/model"
	"github.com/ronharel02/hilan-attendance/internal/payperiod"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestContaining(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		startDay  int
		wantStart time.Time
		wantEnd   time.Time
		wantLabel string
	}{
		{
			name:      "on or after start day rolls into next month's period",
			ref:       date(2024, time.December, 21),
			startDay:  20,
			wantStart: date(2024, time.December, 20),
			wantEnd:   date(2025, time.January, 19),
			wantLabel: "January 2025",
		},
		{
			name:      "before start day stays in current month's period",
			ref:       date(2024, time.December, 19),
			startDay:  20,
			wantStart: date(2024, time.November, 20),
			wantEnd:   date(2024, time.December, 19),
			wantLabel: "December 2024",
		},
		{
			name:      "start day 1 is the calendar month",
			ref:       date(2025, time.February, 10),
			startDay:  1,
			wantStart: date(2025, time.February, 1),
			wantEnd:   date(2025, time.February, 28),
			wantLabel: "February 2025",
		},
		{
			name:      "january start crosses the year boundary backward",
			ref:       date(2025, time.January, 5),
			startDay:  15,
			wantStart: date(2024, time.December, 15),
			wantEnd:   date(2025, time.January, 14),
			wantLabel: "January 2025",
		},
		{
			name:      "leap february",
			ref:       date(2024, time.February, 28),
			startDay:  28,
			wantStart: date(2024, time.February, 28),
			wantEnd:   date(2024, time.March, 27),
			wantLabel: "March 2024",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := payperiod.Containing(tt.ref, tt.startDay)
			require.NoError(t, err)
			assert.True(t, p.Start.Equal(tt.wantStart), "start = %s", p.Start)
			assert.True(t, p.End.Equal(tt.wantEnd), "end = %s", p.End)
			assert.Equal(t, tt.wantLabel, p.Label())
			assert.True(t, p.Contains(tt.ref))
		})
	}
}

func TestContainingInvalidStartDay(t *testing.T) {
	for _, day := range []int{0, -1, 29, 31} {
		_, err := payperiod.Containing(date(2024, time.June, 1), day)
		require.Error(t, err, "start day %d", day)
		assert.ErrorIs(t, err, model.ErrConfig)
	}
}

// Every calendar date belongs to exactly one period, and consecutive
// periods are contiguous and non-overlapping.
func TestPeriodsPartitionTheYear(t *testing.T) {
	for _, startDay := range []int{1, 15, 20, 28} {
		var prev payperiod.PayPeriod
		// 2024 is a leap year.
		for d := date(2024, time.January, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
			p, err := payperiod.Containing(d, startDay)
			require.NoError(t, err)
			require.True(t, p.Contains(d), "start day %d: period %s does not contain %s", startDay, p.Label(), d)
			require.False(t, p.End.Before(p.Start))

			switch {
			case prev.Start.IsZero():
			case p.Start.Equal(prev.Start):
				require.True(t, p.End.Equal(prev.End), "same period must have same end")
			default:
				require.True(t, p.Start.Equal(prev.End.AddDate(0, 0, 1)),
					"start day %d: gap between %s and %s", startDay, prev.End, p.Start)
			}
			prev = p
		}
	}
}

func TestForLabel(t *testing.T) {
	p, err := payperiod.ForLabel(time.January, 2025, 20)
	require.NoError(t, err)
	assert.Equal(t, "January 2025", p.Label())
	assert.Equal(t, 20, p.Start.Day())
	assert.Equal(t, time.December, p.Start.Month())
	assert.Equal(t, 2024, p.Start.Year())
	assert.Equal(t, 19, p.End.Day())
	assert.Equal(t, time.January, p.End.Month())
	assert.Equal(t, 2025, p.End.Year())

	// Start day 1 labels the calendar month itself.
	p, err = payperiod.ForLabel(time.February, 2025, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Start.Day())
	assert.Equal(t, time.February, p.Start.Month())
	assert.Equal(t, 28, p.End.Day())
	assert.Equal(t, time.February, p.End.Month())
}

func TestForLabelInvalid(t *testing.T) {
	_, err := payperiod.ForLabel(time.Month(13), 2025, 20)
	assert.ErrorIs(t, err, model.ErrConfig)

	_, err = payperiod.ForLabel(time.January, 2025, 29)
	assert.ErrorIs(t, err, model.ErrConfig)
}

func TestDays(t *testing.T) {
	p, err := payperiod.ForLabel(time.January, 2025, 20)
	require.NoError(t, err)

	days := p.Days()
	require.Len(t, days, 31) // Dec 20-31 plus Jan 1-19
	assert.True(t, days[0].Equal(p.Start))
	assert.True(t, days[len(days)-1].Equal(p.End))
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].Equal(days[i-1].AddDate(0, 0, 1)), "days must be consecutive")
	}
}
