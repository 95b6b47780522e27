package derive

import "innovati-portal/internal/model"

// Kanban is the project board: four fixed columns, every project in
// exactly one of them.
type Kanban struct {
	Planned    []model.Project `json:"planned"`
	InProgress []model.Project `json:"in_progress"`
	OnHold     []model.Project `json:"on_hold"`
	Done       []model.Project `json:"done"`
}

// KanbanColumns partitions projects by macro state.
func KanbanColumns(projects []model.Project) Kanban {
	var k Kanban
	for _, p := range projects {
		switch ClassifyProject(p.Status) {
		case ProjectInProgress:
			k.InProgress = append(k.InProgress, p)
		case ProjectOnHold:
			k.OnHold = append(k.OnHold, p)
		case ProjectDone:
			k.Done = append(k.Done, p)
		default:
			k.Planned = append(k.Planned, p)
		}
	}
	return k
}

// InvoiceGroups buckets invoices by state with per-group totals.
type InvoiceGroups struct {
	Pending []model.Invoice `json:"pending"`
	Overdue []model.Invoice `json:"overdue"`
	Paid    []model.Invoice `json:"paid"`

	PendingTotal float64 `json:"pending_total"`
	OverdueTotal float64 `json:"overdue_total"`
	PaidTotal    float64 `json:"paid_total"`
}

// GroupInvoices partitions invoices by classified state.
func GroupInvoices(invoices []model.Invoice) InvoiceGroups {
	var g InvoiceGroups
	for _, i := range invoices {
		switch ClassifyInvoice(i.Status) {
		case InvoicePaid:
			g.Paid = append(g.Paid, i)
			g.PaidTotal += i.Amount
		case InvoiceOverdue:
			g.Overdue = append(g.Overdue, i)
			g.OverdueTotal += i.Amount
		default:
			g.Pending = append(g.Pending, i)
			g.PendingTotal += i.Amount
		}
	}
	return g
}
