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

// AdminDashboard is the admin landing view model: global counts, status
// summaries and the two most-recent lists.
type AdminDashboard struct {
	Counts         AdminCounts         `json:"counts"`
	ProjectSummary derive.ProjectKPIs  `json:"project_summary"`
	TicketSummary  derive.TicketCounts `json:"ticket_summary"`
	RecentProjects []model.Project     `json:"recent_projects"`
	RecentTickets  []model.Ticket      `json:"recent_tickets"`
}

type AdminCounts struct {
	Clients     int `json:"clients"`
	ClientUsers int `json:"client_users"`
	Projects    int `json:"projects"`
	OpenTickets int `json:"open_tickets"`
}

const recentListCount = 5

func (h *AdminHandler) Dashboard(c *gin.Context) {
	sess, _ := SessionFrom(c)

	var (
		clients  []model.Client
		users    []model.ClientUser
		projects []model.Project
		tickets  []model.Ticket
	)
	err := upstream.Gather(c.Request.Context(),
		func(ctx context.Context) error {
			var e error
			clients, e = h.api.AdminClients(ctx, sess.Token)
			return e
		},
		func(ctx context.Context) error {
			var e error
			users, e = h.api.AdminClientUsers(ctx, sess.Token)
			return e
		},
		func(ctx context.Context) error {
			var e error
			projects, e = h.api.AdminProjects(ctx, sess.Token)
			return e
		},
		func(ctx context.Context) error {
			var e error
			tickets, e = h.api.AdminTickets(ctx, sess.Token)
			return e
		},
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, AdminDashboard{
		Counts: AdminCounts{
			Clients:     len(clients),
			ClientUsers: len(users),
			Projects:    len(projects),
			OpenTickets: derive.CountOpenTickets(tickets),
		},
		ProjectSummary: derive.ProjectSummary(projects, time.Now()),
		TicketSummary:  derive.TicketSummary(tickets),
		RecentProjects: derive.RecentProjects(projects, recentListCount),
		RecentTickets:  derive.RecentTickets(tickets, recentListCount),
	})
}
