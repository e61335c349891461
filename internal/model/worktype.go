package model

import (
	"fmt"
	"strings"
)

// WorkType classifies what a day in the work pattern means.
type WorkType string

const (
	WorkOffice WorkType = "office"
	WorkHome   WorkType = "home"
	WorkAbroad WorkType = "abroad"
	// WorkSkip is a weekday explicitly configured as a non-work day.
	WorkSkip WorkType = "skip"
	// WorkWeekend is a weekday absent from the pattern. Skip and weekend
	// both mean "no record", but are reported separately.
	WorkWeekend WorkType = "weekend"
)

// Fillable reports whether days of this type should have an attendance
// record submitted for them.
func (w WorkType) Fillable() bool {
	switch w {
	case WorkOffice, WorkHome, WorkAbroad:
		return true
	}
	return false
}

// Label returns a human-readable label, e.g. "Office".
func (w WorkType) Label() string {
	if w == "" {
		return "Unknown"
	}
	return strings.ToUpper(string(w)[:1]) + string(w)[1:]
}

// ParseWorkType parses a configured work type. Weekend is not accepted:
// weekends are expressed by leaving a weekday out of the pattern.
func ParseWorkType(s string) (WorkType, error) {
	switch wt := WorkType(strings.ToLower(strings.TrimSpace(s))); wt {
	case WorkOffice, WorkHome, WorkAbroad, WorkSkip:
		return wt, nil
	default:
		return "", fmt.Errorf("unknown work type %q (want office, home, abroad or skip)", s)
	}
}
