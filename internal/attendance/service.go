// Package attendance implements the pay-period reconciliation and
// fill-planning engine: expanding the weekly work pattern into target
// days for a period, diffing them against the portal's existing records,
// and applying (or previewing) the minimal safe set of fill actions.
package attendance

import (
	"context"

	"github.com/ronharel02/hilan-attendance/internal/model"
	"github.com/ronharel02/hilan-attendance/internal/payperiod"
)

// Service is the remote attendance portal as the engine sees it. The
// portal session is a single stateful resource, so implementations are
// driven by exactly one caller at a time; the engine never issues
// overlapping calls.
type Service interface {
	// FetchRecords returns a snapshot of the existing records covering
	// the full period. Failures are SessionErrors and abort the run.
	FetchRecords(ctx context.Context, period payperiod.PayPeriod) ([]model.ExistingRecord, error)

	// Submit writes a single day's record. Submission is best-effort and
	// per-day: a failure is a SubmissionError and does not abort the run.
	Submit(ctx context.Context, day model.TargetDay) error
}
