package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"innovati-portal/internal/model"
)

func TestProjectSummaryEmptySetAverageIsZero(t *testing.T) {
	k := ProjectSummary(nil, now)
	assert.Equal(t, 0, k.Total)
	assert.Equal(t, 0, k.AvgProgress)
}

func TestProjectSummary(t *testing.T) {
	projects := []model.Project{
		{Status: "En Curso", Progress: 80},
		{Status: "En Espera", Progress: 20},
		{Status: "Cerrado", Progress: 100},
		{Status: "Planificado", Progress: 0},
	}

	k := ProjectSummary(projects, now)
	assert.Equal(t, 4, k.Total)
	assert.Equal(t, 1, k.InProgress)
	assert.Equal(t, 1, k.OnHold)
	assert.Equal(t, 1, k.Done)
	assert.Equal(t, 50, k.AvgProgress)
}

func TestProjectSummaryAverageRoundsToNearest(t *testing.T) {
	projects := []model.Project{
		{Status: "En Curso", Progress: 70},
		{Status: "En Curso", Progress: 75},
	}
	// 72.5 rounds up, never truncates.
	assert.Equal(t, 73, ProjectSummary(projects, now).AvgProgress)

	projects[1].Progress = 74
	assert.Equal(t, 72, ProjectSummary(projects, now).AvgProgress)
}

func TestTicketSummary(t *testing.T) {
	tickets := []model.Ticket{
		{Status: "Abierto"},
		{Status: "Abierto"},
		{Status: "En Progreso"},
		{Status: "Resuelto"},
		{Status: "Cerrado"},
	}

	k := TicketSummary(tickets)
	assert.Equal(t, 2, k.Open)
	assert.Equal(t, 1, k.InProgress)
	assert.Equal(t, 1, k.Resolved)
	assert.Equal(t, 1, k.Closed)

	assert.Equal(t, 3, CountOpenTickets(tickets))
}

func TestSumAmount(t *testing.T) {
	invoices := []model.Invoice{
		{Amount: 1200.50},
		{Amount: 799.50},
	}
	assert.Equal(t, 2000.0, SumAmount(invoices))
	assert.Equal(t, 0.0, SumAmount(nil))
}
