package attendance

import (
	"context"

	"github.com/ronharel02/hilan-attendance/internal/model"
)

// Outcome is the per-day result of a fill run.
type Outcome string

const (
	OutcomeApplied    Outcome = "applied"
	OutcomeSkipped    Outcome = "skipped"
	OutcomeFailed     Outcome = "failed"
	OutcomeWouldApply Outcome = "would-apply"
	OutcomeConflict   Outcome = "conflict"
)

// Action records what happened (or would happen) to a single day. Actions
// are created by the planner and never mutated afterwards.
type Action struct {
	Target  model.TargetDay
	Outcome Outcome
	// Reason is set for skipped and failed days.
	Reason string
	// Existing is set for conflict days, carrying the record found on
	// the portal for comparison against the target.
	Existing *model.ExistingRecord
}

// Options control a fill run.
type Options struct {
	// DryRun previews every selected day as would-apply with no side
	// effects.
	DryRun bool
	// Filter implements the today / up-to-today semantics.
	Filter DateFilter
}

// Planner drives the portal to apply a reconciliation result. The
// service is injected so tests substitute an in-memory fake.
type Planner struct {
	svc Service
}

func NewPlanner(svc Service) *Planner { return &Planner{svc: svc} }

// Run applies (or previews) a reconciliation result day by day. A failed
// submission marks that day failed and the run continues: one day's
// failure never aborts the rest. Cancelling ctx stops before the next
// submission starts but never interrupts one already in flight, so the
// remote session is not left in an indeterminate state.
//
// The report is total: every ToFill day gets an outcome, and every
// conflict is surfaced regardless of mode.
func (p *Planner) Run(ctx context.Context, result Result, opts Options) []Action {
	actions := make([]Action, 0, len(result.ToFill)+len(result.Conflicts))
	for _, day := range result.ToFill {
		switch {
		case !opts.Filter.Includes(day.Date):
			actions = append(actions, Action{Target: day, Outcome: OutcomeSkipped, Reason: "outside requested dates"})
		case opts.DryRun:
			actions = append(actions, Action{Target: day, Outcome: OutcomeWouldApply})
		case ctx.Err() != nil:
			actions = append(actions, Action{Target: day, Outcome: OutcomeSkipped, Reason: "run cancelled"})
		default:
			// An in-flight submission is allowed to finish even if the
			// run is cancelled meanwhile.
			if err := p.svc.Submit(context.WithoutCancel(ctx), day); err != nil {
				actions = append(actions, Action{Target: day, Outcome: OutcomeFailed, Reason: err.Error()})
			} else {
				actions = append(actions, Action{Target: day, Outcome: OutcomeApplied})
			}
		}
	}
	for _, c := range result.Conflicts {
		rec := c.Existing
		actions = append(actions, Action{Target: c.Target, Outcome: OutcomeConflict, Existing: &rec})
	}
	return actions
}
