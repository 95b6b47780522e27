package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"innovati-portal/internal/derive"
	"innovati-portal/internal/model"
	"innovati-portal/internal/upstream"
)

// ClientDashboard is the client portal landing view model.
type ClientDashboard struct {
	KPIs          ClientKPIs           `json:"kpis"`
	Alerts        derive.Alerts        `json:"alerts"`
	Chart         []derive.SeriesPoint `json:"chart"`
	RecentTickets []model.Ticket       `json:"recent_tickets"`
}

type ClientKPIs struct {
	ActiveProjects  int `json:"active_projects"`
	RecentTickets   int `json:"recent_tickets"`
	PendingInvoices int `json:"pending_invoices"`
	Documents       int `json:"documents"`
}

const (
	recentTicketCount = 6
	chartMonths       = 6
)

// Dashboard fires the four collection fetches concurrently under one
// cancellable context, then derives the whole view in memory.
func (h *PortalHandler) Dashboard(c *gin.Context) {
	sess, _ := SessionFrom(c)

	var (
		projects  []model.Project
		tickets   []model.Ticket
		invoices  []model.Invoice
		documents []model.Document
	)
	err := upstream.Gather(c.Request.Context(),
		func(ctx context.Context) error {
			var e error
			projects, e = h.api.Projects(ctx, sess.Token)
			return e
		},
		func(ctx context.Context) error {
			var e error
			tickets, e = h.api.Tickets(ctx, sess.Token)
			return e
		},
		func(ctx context.Context) error {
			var e error
			invoices, e = h.api.Invoices(ctx, sess.Token)
			return e
		},
		func(ctx context.Context) error {
			var e error
			documents, e = h.api.Documents(ctx, sess.Token)
			return e
		},
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	now := time.Now()
	recent := derive.LatestTickets(tickets, recentTicketCount)

	c.JSON(http.StatusOK, ClientDashboard{
		KPIs: ClientKPIs{
			ActiveProjects:  len(projects),
			RecentTickets:   len(recent),
			PendingInvoices: len(derive.UnpaidInvoices(invoices)),
			Documents:       len(documents),
		},
		Alerts:        derive.BuildAlerts(now, projects, tickets, invoices),
		Chart:         derive.TicketMonthlySeries(tickets, chartMonths),
		RecentTickets: recent,
	})
}
