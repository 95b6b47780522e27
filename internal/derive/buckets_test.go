package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"innovati-portal/internal/model"
)

func TestKanbanColumnsEveryProjectInExactlyOneBucket(t *testing.T) {
	projects := []model.Project{
		{ID: 1, Status: "Planificado"},
		{ID: 2, Status: "En Curso"},
		{ID: 3, Status: "En Curso (bloqueado)"},
		{ID: 4, Status: "En Espera"},
		{ID: 5, Status: "on hold"},
		{ID: 6, Status: "Cerrado"},
		{ID: 7, Status: "done"},
		{ID: 8, Status: ""},
		{ID: 9, Status: "estado desconocido"},
		{ID: 10, Status: "Implementación"},
	}

	k := KanbanColumns(projects)

	total := len(k.Planned) + len(k.InProgress) + len(k.OnHold) + len(k.Done)
	assert.Equal(t, len(projects), total)

	seen := map[int]int{}
	for _, col := range [][]model.Project{k.Planned, k.InProgress, k.OnHold, k.Done} {
		for _, p := range col {
			seen[p.ID]++
		}
	}
	for _, p := range projects {
		assert.Equal(t, 1, seen[p.ID], "project %d must appear exactly once", p.ID)
	}

	// Unknown and empty statuses land in the default column.
	assert.Len(t, k.Planned, 3)
	assert.Len(t, k.InProgress, 3)
}

func TestGroupInvoices(t *testing.T) {
	invoices := []model.Invoice{
		{ID: 1, Status: "Pendiente", Amount: 100},
		{ID: 2, Status: "Vencida", Amount: 200},
		{ID: 3, Status: "Pagada", Amount: 300},
		{ID: 4, Status: "otra cosa", Amount: 50},
	}

	g := GroupInvoices(invoices)
	assert.Len(t, g.Pending, 2)
	assert.Len(t, g.Overdue, 1)
	assert.Len(t, g.Paid, 1)
	assert.Equal(t, 150.0, g.PendingTotal)
	assert.Equal(t, 200.0, g.OverdueTotal)
	assert.Equal(t, 300.0, g.PaidTotal)
}
