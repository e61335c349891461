package model

import (
	"fmt"
	"time"
)

// WorkPattern is the recurring weekly template used to generate expected
// attendance. Weekdays absent from Days are weekends and never filled.
type WorkPattern struct {
	EntryTime TimeOfDay
	ExitTime  TimeOfDay
	Days      map[time.Weekday]WorkType
}

// Validate checks the pattern invariants: entry before exit, and only
// configurable work types in the weekday mapping.
func (p WorkPattern) Validate() error {
	if !p.EntryTime.Before(p.ExitTime) {
		return &ConfigError{
			Field:  "pattern",
			Reason: fmt.Sprintf("exit time %s must be after entry time %s", p.ExitTime, p.EntryTime),
		}
	}
	for day, wt := range p.Days {
		if !wt.Fillable() && wt != WorkSkip {
			return &ConfigError{
				Field:  "pattern.days",
				Reason: fmt.Sprintf("%s has invalid work type %q", day, wt),
			}
		}
	}
	return nil
}

// TypeFor returns the work type for a weekday. Unmapped weekdays are
// weekends.
func (p WorkPattern) TypeFor(day time.Weekday) WorkType {
	if wt, ok := p.Days[day]; ok {
		return wt
	}
	return WorkWeekend
}
