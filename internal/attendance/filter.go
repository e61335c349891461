package attendance

import (
	"time"

	"github.com/ronharel02/hilan-attendance/internal/model"
)

// DateFilter restricts which to-fill days a run attempts. Days outside
// the filter are reported as skipped, never silently dropped.
type DateFilter struct {
	only *time.Time
	upTo *time.Time
}

// AllDates places no restriction on the run.
func AllDates() DateFilter { return DateFilter{} }

// OnlyDate restricts the run to a single day.
func OnlyDate(day time.Time) DateFilter {
	d := model.StartOfDay(day)
	return DateFilter{only: &d}
}

// UpToDate restricts the run to days on or before the given day.
func UpToDate(day time.Time) DateFilter {
	d := model.StartOfDay(day)
	return DateFilter{upTo: &d}
}

// Includes reports whether the filter selects the given date.
func (f DateFilter) Includes(day time.Time) bool {
	switch {
	case f.only != nil:
		return model.SameDate(day, *f.only)
	case f.upTo != nil:
		return !model.StartOfDay(day).After(*f.upTo)
	}
	return true
}
