package attendance

import "github.com/ronharel02/hilan-attendance/internal/model"

// Conflict pairs a target day with an existing record the engine refuses
// to touch. Conflicts are surfaced for operator review, never resolved.
type Conflict struct {
	Target   model.TargetDay
	Existing model.ExistingRecord
}

// Result partitions the target days of a period into the three disjoint
// outcomes of reconciliation. Within each bucket, ascending date order
// mirrors the target ordering.
type Result struct {
	ToFill        []model.TargetDay
	AlreadyFilled []model.TargetDay
	Conflicts     []Conflict
}

// Total returns the number of target days the result covers. It always
// equals the number of targets reconciled.
func (r Result) Total() int {
	return len(r.ToFill) + len(r.AlreadyFilled) + len(r.Conflicts)
}

// Reconcile diffs target days against the portal's existing records.
// Every target lands in exactly one bucket:
//
//   - no record, or a record missing times and carrying no note: ToFill
//   - a complete record of the same work type: AlreadyFilled
//   - anything else: Conflicts
//
// A conflicted day is never filled. The engine must not overwrite a
// record it cannot confirm it owns, which also makes re-running on an
// already-filled period a no-op.
func Reconcile(targets []model.TargetDay, existing []model.ExistingRecord) Result {
	byDate := make(map[string]model.ExistingRecord, len(existing))
	for _, rec := range existing {
		byDate[model.DateKey(rec.Date)] = rec
	}

	var result Result
	for _, target := range targets {
		rec, ok := byDate[model.DateKey(target.Date)]
		switch {
		case !ok:
			result.ToFill = append(result.ToFill, target)
		case rec.Note != "":
			// Sick, vacation and similar notes mark the day as handled
			// elsewhere; requires operator judgment.
			result.Conflicts = append(result.Conflicts, Conflict{Target: target, Existing: rec})
		case !rec.IsComplete():
			// A partial record keeps its observed entry time, so filling
			// only completes what is missing.
			if rec.HasEntry() {
				target.Entry = rec.Entry.On(target.Date)
			}
			result.ToFill = append(result.ToFill, target)
		case rec.WorkType == target.WorkType:
			result.AlreadyFilled = append(result.AlreadyFilled, target)
		default:
			// Mismatched or unrecognised work type: not ours to overwrite.
			result.Conflicts = append(result.Conflicts, Conflict{Target: target, Existing: rec})
		}
	}
	return result
}
