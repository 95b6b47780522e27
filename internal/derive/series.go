package derive

import (
	"fmt"
	"sort"

	"innovati-portal/internal/model"
)

// SeriesPoint is one month of the ticket activity chart.
type SeriesPoint struct {
	Month  string `json:"month"` // YYYY-MM
	Open   int    `json:"open"`
	Closed int    `json:"closed"`
}

// TicketMonthlySeries bins tickets by creation month into open/closed
// counts and keeps the most recent maxMonths bins, ascending by month
// key. Tickets with unreadable dates are skipped.
func TicketMonthlySeries(tickets []model.Ticket, maxMonths int) []SeriesPoint {
	counts := make(map[string]*SeriesPoint)
	for _, t := range tickets {
		d := ParseDate(t.CreatedAt)
		if d.IsZero() {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
		p, ok := counts[key]
		if !ok {
			p = &SeriesPoint{Month: key}
			counts[key] = p
		}
		if TicketIsClosed(t.Status) {
			p.Closed++
		} else {
			p.Open++
		}
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > maxMonths {
		keys = keys[len(keys)-maxMonths:]
	}

	series := make([]SeriesPoint, 0, len(keys))
	for _, k := range keys {
		series = append(series, *counts[k])
	}
	return series
}
