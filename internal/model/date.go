package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two times fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateKey formats a date as a location-independent map key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseWeekday parses an English weekday name, e.g. "sunday".
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// ParseMonth parses a month given as a number (1-12) or an English name.
// Names match case-insensitively by unambiguous prefix, so "nov" works.
func ParseMonth(s string) (time.Month, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month must be 1-12, got %d", n)
		}
		return time.Month(n), nil
	}

	prefix := strings.ToLower(strings.TrimSpace(s))
	var matches []time.Month
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), prefix) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return 0, fmt.Errorf("unknown month %q", s)
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = strings.ToLower(m.String())
		}
		return 0, fmt.Errorf("ambiguous month %q: matches %s", s, strings.Join(names, ", "))
	}
}
