package derive

import (
	"time"

	"innovati-portal/internal/model"
)

// MilestoneAlert is an urgent milestone with its project attached.
type MilestoneAlert struct {
	Milestone   model.Milestone `json:"milestone"`
	ProjectCode string          `json:"project_code"`
	ProjectName string          `json:"project_name"`
}

// Alerts is the dashboard alert block.
type Alerts struct {
	OverdueInvoices  []model.Invoice  `json:"overdue_invoices"`
	DueSoonInvoices  []model.Invoice  `json:"due_soon_invoices"`
	StaleTickets     []model.Ticket   `json:"stale_tickets"`
	UrgentMilestones []MilestoneAlert `json:"urgent_milestones"`
}

const maxUrgentMilestones = 5

// BuildAlerts computes the alert sets for the client dashboard.
func BuildAlerts(now time.Time, projects []model.Project, tickets []model.Ticket, invoices []model.Invoice) Alerts {
	var a Alerts

	for _, inv := range invoices {
		if !InvoiceIsUnpaid(inv.Status) {
			continue
		}
		due := ParseDate(inv.DueDate)
		switch {
		case Overdue(now, due):
			a.OverdueInvoices = append(a.OverdueInvoices, inv)
		case DueSoon(now, due, InvoiceDueSoonDays):
			a.DueSoonInvoices = append(a.DueSoonInvoices, inv)
		}
	}

	// Only tickets sitting in "abierto" go stale; once one moves to
	// "en progreso" somebody is on it and the alert drops.
	for _, t := range tickets {
		created := ParseDate(t.CreatedAt)
		if created.IsZero() {
			continue
		}
		if ClassifyTicket(t.Status) == TicketOpen && DaysSince(now, created) >= TicketStaleDays {
			a.StaleTickets = append(a.StaleTickets, t)
		}
	}

	// Urgent includes already-overdue milestones: anything at 10 days or
	// closer, capped for display.
	for _, p := range projects {
		for _, m := range p.Milestones {
			due := ParseDate(m.DueDate)
			if due.IsZero() || DaysUntil(now, due) > MilestoneDueSoonDays {
				continue
			}
			a.UrgentMilestones = append(a.UrgentMilestones, MilestoneAlert{
				Milestone:   m,
				ProjectCode: p.Code,
				ProjectName: p.Name,
			})
			if len(a.UrgentMilestones) == maxUrgentMilestones {
				return a
			}
		}
	}

	return a
}

// UnpaidInvoices filters invoices whose status lacks a paid marker.
func UnpaidInvoices(invoices []model.Invoice) []model.Invoice {
	var out []model.Invoice
	for _, i := range invoices {
		if InvoiceIsUnpaid(i.Status) {
			out = append(out, i)
		}
	}
	return out
}
