package derive

import (
	"strings"
	"time"

	"innovati-portal/internal/model"
)

// MatchText reports whether the query hits the concatenation of the
// record's searchable fields, case-insensitively. An empty or
// whitespace-only query matches everything.
func MatchText(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	hay := strings.ToLower(strings.Join(fields, " "))
	return strings.Contains(hay, q)
}

// FilterProjects keeps projects matching the free-text query over code,
// name, status and PM.
func FilterProjects(projects []model.Project, query string) []model.Project {
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if MatchText(query, p.Code, p.Name, p.Status, p.PMName) {
			out = append(out, p)
		}
	}
	return out
}

// FilterTickets keeps tickets matching the query over title, client and
// project code, optionally narrowed to one status facet ("" = all).
func FilterTickets(tickets []model.Ticket, query, statusFacet string) []model.Ticket {
	out := make([]model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if statusFacet != "" && !strings.Contains(strings.ToLower(t.Status), strings.ToLower(statusFacet)) {
			continue
		}
		if MatchText(query, t.Title, t.ClientName, t.ProjectCode) {
			out = append(out, t)
		}
	}
	return out
}

// InvoiceFilter narrows the invoice list: status facet (pending, paid,
// overdue or "" for all), issue-date age in days (0 = any) and free text
// over number, project code and currency.
type InvoiceFilter struct {
	Status     string
	MaxAgeDays int
	Query      string
}

var invoiceFacets = map[string]string{
	"pending": "pend",
	"paid":    "pag",
	"overdue": "venc",
}

// FilterInvoices applies an InvoiceFilter against now.
func FilterInvoices(invoices []model.Invoice, f InvoiceFilter, now time.Time) []model.Invoice {
	facet := invoiceFacets[strings.ToLower(f.Status)]
	out := make([]model.Invoice, 0, len(invoices))
	for _, i := range invoices {
		if facet != "" && !strings.Contains(strings.ToLower(i.Status), facet) {
			continue
		}
		if f.MaxAgeDays > 0 {
			issued := ParseDate(i.IssueDate)
			if issued.IsZero() || DaysSince(now, issued) > f.MaxAgeDays {
				continue
			}
		}
		if MatchText(f.Query, i.Number, i.ProjectCode, i.Currency) {
			out = append(out, i)
		}
	}
	return out
}
