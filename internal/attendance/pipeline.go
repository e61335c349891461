package attendance

import (
	"context"
	"fmt"

	"github.com/ronharel02/hilan-attendance/internal/model"
	"github.com/ronharel02/hilan-attendance/internal/payperiod"
)

// Reconciled runs the read-only half of the pipeline: validate the
// pattern, fetch the period's existing records, expand the pattern and
// reconcile the two. The raw records are returned alongside the result
// for status rendering.
//
// Pattern validation happens first so configuration errors abort before
// any remote call.
func Reconciled(ctx context.Context, svc Service, pattern model.WorkPattern, period payperiod.PayPeriod) (Result, []model.ExistingRecord, error) {
	if err := pattern.Validate(); err != nil {
		return Result{}, nil, err
	}
	existing, err := svc.FetchRecords(ctx, period)
	if err != nil {
		return Result{}, nil, fmt.Errorf("fetching records for %s: %w", period.Label(), err)
	}
	return Reconcile(Expand(pattern, period), existing), existing, nil
}
