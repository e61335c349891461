// Package report renders attendance status, fill plans and action
// reports as plain text tables.
package report

import (
	"fmt"
	"io"

	"github.com/ronharel02/hilan-attendance/internal/attendance"
	"github.com/ronharel02/hilan-attendance/internal/model"
	"github.com/ronharel02/hilan-attendance/internal/payperiod"
)

const rowFormat = "%-7s %-4s %-22s %s\n"

func recordsByDate(existing []model.ExistingRecord) map[string]model.ExistingRecord {
	byDate := make(map[string]model.ExistingRecord, len(existing))
	for _, rec := range existing {
		byDate[model.DateKey(rec.Date)] = rec
	}
	return byDate
}

// currentState describes what the portal currently shows for a day.
func currentState(rec model.ExistingRecord, found bool) string {
	switch {
	case !found:
		return "-"
	case rec.Note != "":
		return model.TranslateNote(rec.Note)
	case rec.IsComplete():
		return fmt.Sprintf("%s (%s-%s)", rec.WorkType.Label(), rec.Entry, rec.Exit)
	case rec.HasEntry():
		return fmt.Sprintf("%s (%s-?)", rec.WorkType.Label(), rec.Entry)
	default:
		return "-"
	}
}

// WriteStatus renders the per-day attendance table for a period plus
// summary counts.
func WriteStatus(w io.Writer, period payperiod.PayPeriod, pattern model.WorkPattern, existing []model.ExistingRecord, result attendance.Result) {
	byDate := recordsByDate(existing)

	fmt.Fprintf(w, "Attendance for %s (%s - %s)\n",
		period.Label(), period.Start.Format("02/01"), period.End.Format("02/01/2006"))
	fmt.Fprintf(w, rowFormat, "Date", "Day", "Current", "Status")

	var partial int
	for _, day := range period.Days() {
		wt := pattern.TypeFor(day.Weekday())
		rec, found := byDate[model.DateKey(day)]

		var status string
		switch {
		case found && rec.IsComplete():
			status = "Filled"
		case found && rec.Note != "":
			status = model.TranslateNote(rec.Note)
		case found && rec.HasEntry():
			status = "Partial"
			if wt.Fillable() {
				partial++
			}
		case wt == model.WorkWeekend:
			status = "Weekend"
		case wt == model.WorkSkip:
			status = "Skip"
		default:
			status = "Empty"
		}

		fmt.Fprintf(w, rowFormat,
			day.Format("02/01"), day.Format("Mon"), currentState(rec, found), status)
	}

	fmt.Fprintf(w, "\nSummary:\n")
	fmt.Fprintf(w, "  Filled:    %d\n", len(result.AlreadyFilled))
	if partial > 0 {
		fmt.Fprintf(w, "  Partial:   %d\n", partial)
	}
	fmt.Fprintf(w, "  To fill:   %d\n", len(result.ToFill))
	if len(result.Conflicts) > 0 {
		fmt.Fprintf(w, "  Conflicts: %d\n", len(result.Conflicts))
	}
}

// WriteFillPlan renders what a fill run intends to do for each day the
// filter selects.
func WriteFillPlan(w io.Writer, period payperiod.PayPeriod, pattern model.WorkPattern, result attendance.Result, filter attendance.DateFilter) {
	toFill := make(map[string]model.TargetDay, len(result.ToFill))
	for _, t := range result.ToFill {
		toFill[model.DateKey(t.Date)] = t
	}
	filled := make(map[string]bool, len(result.AlreadyFilled))
	for _, t := range result.AlreadyFilled {
		filled[model.DateKey(t.Date)] = true
	}
	conflicts := make(map[string]attendance.Conflict, len(result.Conflicts))
	for _, c := range result.Conflicts {
		conflicts[model.DateKey(c.Target.Date)] = c
	}

	fmt.Fprintf(w, "Fill plan for %s\n", period.Label())
	fmt.Fprintf(w, rowFormat, "Date", "Day", "Current", "Action")

	for _, day := range period.Days() {
		if !filter.Includes(day) {
			continue
		}
		key := model.DateKey(day)
		wt := pattern.TypeFor(day.Weekday())
		c, isConflict := conflicts[key]

		var action string
		current := "-"
		switch {
		case filled[key]:
			action = "Skip (filled)"
			current = wt.Label()
		case isConflict:
			current = currentState(c.Existing, true)
			if c.Existing.Note != "" {
				action = fmt.Sprintf("Skip (%s)", model.TranslateNote(c.Existing.Note))
			} else {
				action = fmt.Sprintf("Conflict (want %s)", c.Target.WorkType.Label())
			}
		case wt == model.WorkWeekend:
			action = "Skip (weekend)"
		case wt == model.WorkSkip:
			action = "Skip (non-work day)"
		default:
			t, ok := toFill[key]
			if !ok {
				action = "Skip"
				break
			}
			action = fmt.Sprintf("Fill %s (%s-%s)",
				t.WorkType.Label(), t.Entry.Format("15:04"), t.Exit.Format("15:04"))
		}

		fmt.Fprintf(w, rowFormat, day.Format("02/01"), day.Format("Mon"), current, action)
	}
}

// WriteActions renders the action report returned by the planner,
// followed by summary counts.
func WriteActions(w io.Writer, actions []attendance.Action) {
	if len(actions) == 0 {
		fmt.Fprintln(w, "Nothing to fill.")
		return
	}

	counts := map[attendance.Outcome]int{}
	for _, a := range actions {
		counts[a.Outcome]++
		date := a.Target.Date.Format("02/01/2006")
		switch a.Outcome {
		case attendance.OutcomeApplied:
			fmt.Fprintf(w, "  + Filled:     %s %s (%s-%s)\n", date, a.Target.WorkType.Label(),
				a.Target.Entry.Format("15:04"), a.Target.Exit.Format("15:04"))
		case attendance.OutcomeWouldApply:
			fmt.Fprintf(w, "  ~ Would fill: %s %s (%s-%s)\n", date, a.Target.WorkType.Label(),
				a.Target.Entry.Format("15:04"), a.Target.Exit.Format("15:04"))
		case attendance.OutcomeSkipped:
			fmt.Fprintf(w, "  - Skipped:    %s (%s)\n", date, a.Reason)
		case attendance.OutcomeFailed:
			fmt.Fprintf(w, "  ! Failed:     %s (%s)\n", date, a.Reason)
		case attendance.OutcomeConflict:
			existing := "unknown"
			if a.Existing != nil {
				existing = currentState(*a.Existing, true)
			}
			fmt.Fprintf(w, "  ! Conflict:   %s existing %s, target %s\n", date, existing,
				a.Target.WorkType.Label())
		}
	}

	fmt.Fprintln(w)
	if n := counts[attendance.OutcomeApplied]; n > 0 {
		fmt.Fprintf(w, "Filled: %d\n", n)
	}
	if n := counts[attendance.OutcomeWouldApply]; n > 0 {
		fmt.Fprintf(w, "Would fill: %d\n", n)
	}
	if n := counts[attendance.OutcomeSkipped]; n > 0 {
		fmt.Fprintf(w, "Skipped: %d\n", n)
	}
	if n := counts[attendance.OutcomeFailed]; n > 0 {
		fmt.Fprintf(w, "Failed: %d\n", n)
	}
	if n := counts[attendance.OutcomeConflict]; n > 0 {
		fmt.Fprintf(w, "Conflicts: %d (review manually)\n", n)
	}
}
