package derive

import (
	"math"
	"time"

	"innovati-portal/internal/model"
)

// ProjectKPIs summarizes a (possibly filtered) project list.
type ProjectKPIs struct {
	Total       int `json:"total"`
	InProgress  int `json:"in_progress"`
	OnHold      int `json:"on_hold"`
	Done        int `json:"done"`
	DueSoon     int `json:"due_soon"`
	AvgProgress int `json:"avg_progress"`
}

// ProjectSummary computes the project KPI block. The average is rounded
// to the nearest percent and divides by max(len, 1) so an empty set
// yields 0, never NaN or a panic.
func ProjectSummary(projects []model.Project, now time.Time) ProjectKPIs {
	k := ProjectKPIs{Total: len(projects)}
	sum := 0
	for _, p := range projects {
		switch ClassifyProject(p.Status) {
		case ProjectInProgress:
			k.InProgress++
		case ProjectOnHold:
			k.OnHold++
		case ProjectDone:
			k.Done++
		}
		if d := ParseDate(p.DueDate); !d.IsZero() && DaysUntil(now, d) <= MilestoneDueSoonDays {
			k.DueSoon++
		}
		sum += p.Progress
	}
	k.AvgProgress = int(math.Round(float64(sum) / float64(max(len(projects), 1))))
	return k
}

// TicketCounts is the per-state ticket breakdown.
type TicketCounts struct {
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
}

func TicketSummary(tickets []model.Ticket) TicketCounts {
	var k TicketCounts
	for _, t := range tickets {
		switch ClassifyTicket(t.Status) {
		case TicketOpen:
			k.Open++
		case TicketInProgress:
			k.InProgress++
		case TicketResolved:
			k.Resolved++
		case TicketClosed:
			k.Closed++
		}
	}
	return k
}

// CountOpenTickets counts tickets still needing attention.
func CountOpenTickets(tickets []model.Ticket) int {
	n := 0
	for _, t := range tickets {
		if TicketIsOpen(t.Status) {
			n++
		}
	}
	return n
}

// SumAmount adds up invoice amounts.
func SumAmount(invoices []model.Invoice) float64 {
	var sum float64
	for _, i := range invoices {
		sum += i.Amount
	}
	return sum
}
