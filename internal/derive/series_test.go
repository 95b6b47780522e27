package derive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innovati-portal/internal/model"
)

func TestTicketMonthlySeriesKeepsMostRecentSixMonths(t *testing.T) {
	// Eight distinct months, one open and one closed ticket each.
	var tickets []model.Ticket
	for m := 1; m <= 8; m++ {
		created := fmt.Sprintf("2025-%02d-10", m)
		tickets = append(tickets,
			model.Ticket{Status: "Abierto", CreatedAt: created},
			model.Ticket{Status: "Cerrado", CreatedAt: created},
		)
	}

	series := TicketMonthlySeries(tickets, 6)
	require.Len(t, series, 6)

	// Oldest two months dropped, rest ascending.
	assert.Equal(t, "2025-03", series[0].Month)
	assert.Equal(t, "2025-08", series[5].Month)
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Month, series[i].Month)
	}
	for _, p := range series {
		assert.Equal(t, 1, p.Open)
		assert.Equal(t, 1, p.Closed)
	}
}

func TestTicketMonthlySeriesClosedSplit(t *testing.T) {
	tickets := []model.Ticket{
		{Status: "Abierto", CreatedAt: "2025-05-01"},
		{Status: "En Progreso", CreatedAt: "2025-05-02"},
		{Status: "Resuelto", CreatedAt: "2025-05-03"},
		{Status: "Cerrado", CreatedAt: "2025-05-04"},
		{Status: "Abierto", CreatedAt: "sin fecha"},
	}

	series := TicketMonthlySeries(tickets, 6)
	require.Len(t, series, 1)
	assert.Equal(t, "2025-05", series[0].Month)
	assert.Equal(t, 2, series[0].Open)
	assert.Equal(t, 2, series[0].Closed)
}
