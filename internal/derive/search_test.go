package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"innovati-portal/internal/model"
)

func TestMatchText(t *testing.T) {
	assert.True(t, MatchText("", "cualquier", "cosa"))
	assert.True(t, MatchText("   ", "cualquier", "cosa"))
	assert.True(t, MatchText("erp", "PRJ-1", "Migración ERP"))
	assert.True(t, MatchText("MIGRA", "PRJ-1", "Migración ERP"))
	assert.False(t, MatchText("crm", "PRJ-1", "Migración ERP"))
}

func TestFilterProjects(t *testing.T) {
	projects := []model.Project{
		{Code: "PRJ-1", Name: "Migración ERP", Status: "En Curso", PMName: "Carla Soto"},
		{Code: "PRJ-2", Name: "Soporte Cloud", Status: "Cerrado", PMName: "Diego Rojas"},
	}

	assert.Len(t, FilterProjects(projects, ""), 2)
	assert.Len(t, FilterProjects(projects, "carla"), 1)
	assert.Len(t, FilterProjects(projects, "cloud"), 1)
	assert.Len(t, FilterProjects(projects, "inexistente"), 0)
}

func TestFilterTickets(t *testing.T) {
	tickets := []model.Ticket{
		{Title: "VPN caída", ClientName: "ACME", ProjectCode: "PRJ-1", Status: "Abierto"},
		{Title: "Error en facturación", ClientName: "Globex", ProjectCode: "PRJ-2", Status: "Cerrado"},
	}

	assert.Len(t, FilterTickets(tickets, "", ""), 2)
	assert.Len(t, FilterTickets(tickets, "acme", ""), 1)
	assert.Len(t, FilterTickets(tickets, "", "abierto"), 1)
	assert.Len(t, FilterTickets(tickets, "vpn", "cerrado"), 0)
}

func TestFilterInvoices(t *testing.T) {
	invoices := []model.Invoice{
		{Number: "F-001", Status: "Pendiente", ProjectCode: "PRJ-1", Currency: "CLP", IssueDate: iso(-10)},
		{Number: "F-002", Status: "Pagada", ProjectCode: "PRJ-2", Currency: "CLP", IssueDate: iso(-100)},
		{Number: "F-003", Status: "Vencida", ProjectCode: "PRJ-1", Currency: "USD", IssueDate: iso(-40)},
	}

	all := FilterInvoices(invoices, InvoiceFilter{}, now)
	assert.Len(t, all, 3)

	pending := FilterInvoices(invoices, InvoiceFilter{Status: "pending"}, now)
	assert.Len(t, pending, 1)
	assert.Equal(t, "F-001", pending[0].Number)

	recent := FilterInvoices(invoices, InvoiceFilter{MaxAgeDays: 30}, now)
	assert.Len(t, recent, 1)

	usd := FilterInvoices(invoices, InvoiceFilter{Query: "usd"}, now)
	assert.Len(t, usd, 1)
	assert.Equal(t, "F-003", usd[0].Number)
}
