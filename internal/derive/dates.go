// Package derive turns raw upstream collections into display-ready
// aggregates: alert sets, KPI counts, kanban buckets and chart series.
// Everything here is pure; inputs are never mutated and no I/O happens.
package derive

import "time"

// Per-entity thresholds. They are deliberately not one shared constant:
// invoices alert a week out, milestones ten days out, and a ticket is
// stale after a week without resolution.
const (
	InvoiceDueSoonDays   = 7
	MilestoneDueSoonDays = 10
	TicketStaleDays      = 7
)

const day = 24 * time.Hour

// ParseDate reads an upstream date string leniently. The backend mixes
// date-only and full timestamps; anything unreadable comes back as the
// zero time, which the predicates below treat as "no date".
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DaysUntil counts whole days from now to target, rounding up: a target
// later today is 0, tomorrow is 1, yesterday is -1.
func DaysUntil(now, target time.Time) int {
	diff := target.Sub(now)
	days := int(diff / day)
	if diff > 0 && diff%day != 0 {
		days++
	}
	return days
}

// DaysSince counts whole elapsed days from t to now, rounding down.
func DaysSince(now, t time.Time) int {
	diff := now.Sub(t)
	days := int(diff / day)
	if diff < 0 && diff%day != 0 {
		days--
	}
	return days
}

// Overdue reports whether target has passed. A missing date is never
// overdue.
func Overdue(now, target time.Time) bool {
	return !target.IsZero() && DaysUntil(now, target) < 0
}

// DueSoon reports whether target falls within the next withinDays days,
// today included. A missing or already-passed date is not due soon.
func DueSoon(now, target time.Time, withinDays int) bool {
	if target.IsZero() {
		return false
	}
	d := DaysUntil(now, target)
	return d >= 0 && d <= withinDays
}
