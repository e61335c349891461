package attendance

import (
	"errors"
	"fmt"
	"time"

	"github.com/ronharel02/hilan-attendance/internal/model"
)

var (
	// ErrSession matches any session error via errors.Is.
	ErrSession = errors.New("session error")
	// ErrSubmission matches any per-day submission error via errors.Is.
	ErrSubmission = errors.New("submission failed")
)

// SessionError means the portal could not be authenticated against or
// reached. It is fatal for the run: nothing has been submitted and no
// partial report exists.
type SessionError struct {
	Op  string
	Err error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session error: %s: %v", e.Op, e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }

func (e *SessionError) Is(target error) bool { return target == ErrSession }

// SubmissionError is a per-day remote failure. The planner records it as
// a failed outcome and continues with the next day.
type SubmissionError struct {
	Date   time.Time
	Reason string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submitting %s: %s", model.DateKey(e.Date), e.Reason)
}

func (e *SubmissionError) Unwrap() error { return ErrSubmission }
