// Package payperiod computes the pay-period boundaries the portal groups
// attendance records by. Periods are anchored to a configurable start-of-
// month day rather than the 1st, and are named after the month they end in:
// with start day 20, the period Dec 20 - Jan 19 is "January".
package payperiod

import (
	"fmt"
	"time"

	"github.com/ronharel02/hilan-attendance/internal/model"
)

// PayPeriod is an inclusive date range. Consecutive periods are
// contiguous and non-overlapping; every calendar date belongs to exactly
// one period.
type PayPeriod struct {
	Start time.Time
	End   time.Time
	// Month and Year name the period (the month it ends in).
	Month time.Month
	Year  int
}

// Label returns the human label, e.g. "January 2025".
func (p PayPeriod) Label() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// Contains reports whether the date falls within [Start, End].
func (p PayPeriod) Contains(t time.Time) bool {
	d := model.StartOfDay(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days returns every date in [Start, End] in ascending order.
func (p PayPeriod) Days() []time.Time {
	var days []time.Time
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Containing returns the pay period that contains the given date.
// cycleStartDay must be between 1 and 28 so the start day exists in
// every month.
func Containing(date time.Time, cycleStartDay int) (PayPeriod, error) {
	if err := validStartDay(cycleStartDay); err != nil {
		return PayPeriod{}, err
	}
	year, month, day := date.Date()
	if day < cycleStartDay {
		month-- // time.Date normalizes month 0 to December of year-1
	}
	return fromStart(time.Date(year, month, cycleStartDay, 0, 0, 0, 0, date.Location())), nil
}

// ForLabel returns the pay period named after the given month and year,
// for explicit month/year requests. It reconstructs the end-month
// boundary and works backward.
func ForLabel(month time.Month, year, cycleStartDay int) (PayPeriod, error) {
	if err := validStartDay(cycleStartDay); err != nil {
		return PayPeriod{}, err
	}
	if month < time.January || month > time.December {
		return PayPeriod{}, &model.ConfigError{
			Field:  "month",
			Reason: fmt.Sprintf("must be between 1 and 12, got %d", int(month)),
		}
	}
	start := month - 1
	if cycleStartDay == 1 {
		// Start day 1 makes the period the labelled calendar month itself.
		start = month
	}
	return fromStart(time.Date(year, start, cycleStartDay, 0, 0, 0, 0, time.Local)), nil
}

// fromStart derives the full period from its start date. The end is the
// day before the next period starts, which clamps naturally to short
// months (e.g. start day 1 ends on Feb 28/29).
func fromStart(start time.Time) PayPeriod {
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return PayPeriod{Start: start, End: end, Month: end.Month(), Year: end.Year()}
}

func validStartDay(day int) error {
	if day < 1 || day > 28 {
		return &model.ConfigError{
			Field:  "pay_period_start_day",
			Reason: fmt.Sprintf("must be between 1 and 28, got %d", day),
		}
	}
	return nil
}
