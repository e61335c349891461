package model

import "time"

// ExistingRecord is a single attendance day as reported by the portal.
// A missing record for a date means the day has not been filled yet.
type ExistingRecord struct {
	Date  time.Time
	Entry *TimeOfDay
	Exit  *TimeOfDay
	// WorkType is empty when the portal reports no type, or one this
	// tool does not recognise.
	WorkType WorkType
	// Note carries special-day markers such as sick or vacation.
	Note string
}

// HasEntry reports whether an entry time was recorded.
func (r ExistingRecord) HasEntry() bool { return r.Entry != nil }

// HasExit reports whether an exit time was recorded.
func (r ExistingRecord) HasExit() bool { return r.Exit != nil }

// IsComplete reports whether both entry and exit times are recorded.
func (r ExistingRecord) IsComplete() bool { return r.Entry != nil && r.Exit != nil }

// IsEmpty reports whether no times are recorded.
func (r ExistingRecord) IsEmpty() bool { return r.Entry == nil && r.Exit == nil }

// TargetDay is one day the pattern says should carry an attendance
// record: a date, a fillable work type and the concrete entry/exit
// timestamps to report. Values are immutable once created.
type TargetDay struct {
	Date     time.Time
	WorkType WorkType
	Entry    time.Time
	Exit     time.Time
}
