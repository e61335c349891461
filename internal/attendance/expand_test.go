package attendance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronharel02/hilan-attendance/internal/attendance"
	"github.com/ronharel02/hilan-attendance/internal/model"
	"github.com/ronharel02/hilan-attendance/internal/payperiod"
)

func testPattern() model.WorkPattern {
	return model.WorkPattern{
		EntryTime: model.TimeOfDay{Hour: 9},
		ExitTime:  model.TimeOfDay{Hour: 18},
		Days: map[time.Weekday]model.WorkType{
			time.Sunday:    model.WorkOffice,
			time.Monday:    model.WorkHome,
			time.Tuesday:   model.WorkOffice,
			time.Wednesday: model.WorkOffice,
			time.Thursday:  model.WorkOffice,
		},
	}
}

func TestExpand(t *testing.T) {
	// Nov 20 - Dec 19 2024 holds eight Fridays/Saturdays, leaving 22
	// working days for a Sunday-Thursday pattern.
	period, err := payperiod.ForLabel(time.December, 2024, 20)
	require.NoError(t, err)

	targets := attendance.Expand(testPattern(), period)
	require.Len(t, targets, 22)

	for i, target := range targets {
		assert.NotEqual(t, time.Friday, target.Date.Weekday())
		assert.NotEqual(t, time.Saturday, target.Date.Weekday())
		assert.True(t, period.Contains(target.Date))
		if target.Date.Weekday() == time.Monday {
			assert.Equal(t, model.WorkHome, target.WorkType)
		} else {
			assert.Equal(t, model.WorkOffice, target.WorkType)
		}
		assert.Equal(t, 9, target.Entry.Hour())
		assert.Equal(t, 18, target.Exit.Hour())
		assert.True(t, model.SameDate(target.Entry, target.Date))
		if i > 0 {
			assert.True(t, targets[i-1].Date.Before(target.Date), "targets must be ascending")
		}
	}
}

func TestExpandIsPure(t *testing.T) {
	period, err := payperiod.ForLabel(time.December, 2024, 20)
	require.NoError(t, err)

	first := attendance.Expand(testPattern(), period)
	second := attendance.Expand(testPattern(), period)
	assert.Equal(t, first, second)
}

func TestExpandSkipAndWeekendProduceNothing(t *testing.T) {
	pattern := testPattern()
	pattern.Days[time.Thursday] = model.WorkSkip

	period, err := payperiod.ForLabel(time.December, 2024, 20)
	require.NoError(t, err)

	for _, target := range attendance.Expand(pattern, period) {
		assert.NotEqual(t, time.Thursday, target.Date.Weekday(), "skip day expanded")
		assert.NotEqual(t, time.Friday, target.Date.Weekday(), "weekend expanded")
	}
}

func TestExpandOutputLengthMatchesWorkdayCount(t *testing.T) {
	pattern := testPattern()
	period, err := payperiod.ForLabel(time.December, 2024, 20)
	require.NoError(t, err)

	var workdays int
	for _, day := range period.Days() {
		if pattern.TypeFor(day.Weekday()).Fillable() {
			workdays++
		}
	}
	assert.Len(t, attendance.Expand(pattern, period), workdays)
}
