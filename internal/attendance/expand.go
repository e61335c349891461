package attendance

import (
	"github.com/ronharel02/hilan-attendance/internal/model"
	"github.com/ronharel02/hilan-attendance/internal/payperiod"
)

// Expand turns the weekly pattern into the ordered list of target days
// within the period. Each in-range date whose weekday maps to a fillable
// type yields one TargetDay carrying the pattern's entry and exit times
// on that date; skipped and unmapped (weekend) weekdays yield nothing.
//
// Expand is a pure function of its inputs. It does not consult the
// clock; callers restrict the range, or the planner filters afterwards.
func Expand(pattern model.WorkPattern, period payperiod.PayPeriod) []model.TargetDay {
	var targets []model.TargetDay
	for day := period.Start; !day.After(period.End); day = day.AddDate(0, 0, 1) {
		wt := pattern.TypeFor(day.Weekday())
		if !wt.Fillable() {
			continue
		}
		targets = append(targets, model.TargetDay{
			Date:     day,
			WorkType: wt,
			Entry:    pattern.EntryTime.On(day),
			Exit:     pattern.ExitTime.On(day),
		})
	}
	return targets
}
