package derive

import (
	"sort"
	"time"

	"innovati-portal/internal/model"
)

// Recency is updated_at when present, else created_at.

// RecentProjects returns the n most recently touched projects, newest
// first. Input order is preserved; a copy is sorted.
func RecentProjects(projects []model.Project, n int) []model.Project {
	out := make([]model.Project, len(projects))
	copy(out, projects)
	sort.SliceStable(out, func(i, j int) bool {
		return touchedAt(out[i].UpdatedAt, out[i].CreatedAt).After(touchedAt(out[j].UpdatedAt, out[j].CreatedAt))
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// RecentTickets returns the n most recently touched tickets, newest first.
func RecentTickets(tickets []model.Ticket, n int) []model.Ticket {
	out := make([]model.Ticket, len(tickets))
	copy(out, tickets)
	sort.SliceStable(out, func(i, j int) bool {
		return touchedAt(out[i].UpdatedAt, out[i].CreatedAt).After(touchedAt(out[j].UpdatedAt, out[j].CreatedAt))
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// LatestTickets returns the n newest tickets by creation date.
func LatestTickets(tickets []model.Ticket, n int) []model.Ticket {
	out := make([]model.Ticket, len(tickets))
	copy(out, tickets)
	sort.SliceStable(out, func(i, j int) bool {
		return ParseDate(out[i].CreatedAt).After(ParseDate(out[j].CreatedAt))
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func touchedAt(updated, created string) time.Time {
	if d := ParseDate(updated); !d.IsZero() {
		return d
	}
	return ParseDate(created)
}
