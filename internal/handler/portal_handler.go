package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"innovati-portal/internal/derive"
	"innovati-portal/internal/model"
	"innovati-portal/internal/session"
	"innovati-portal/internal/upstream"
)

// PortalHandler serves the client portal: everything behind the client
// guard. Handlers fetch via the upstream client with the session token,
// run the derive transformations and return view models.
type PortalHandler struct {
	api      *upstream.Client
	sessions *session.Manager
	logger   *zap.Logger
}

func NewPortalHandler(api *upstream.Client, sessions *session.Manager, logger *zap.Logger) *PortalHandler {
	return &PortalHandler{api: api, sessions: sessions, logger: logger}
}

func (h *PortalHandler) fail(c *gin.Context, err error) {
	respondUpstreamError(c, h.sessions, session.DomainClient, err)
}

// Projects returns the filtered project list plus KPIs and the kanban
// board (?q= free text).
func (h *PortalHandler) Projects(c *gin.Context) {
	sess, _ := SessionFrom(c)

	projects, err := h.api.Projects(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err)
		return
	}

	filtered := derive.FilterProjects(projects, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"items":  filtered,
		"kpis":   derive.ProjectSummary(filtered, time.Now()),
		"kanban": derive.KanbanColumns(filtered),
	})
}

func (h *PortalHandler) ProjectDetail(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	detail, err := h.api.ProjectDetail(c.Request.Context(), sess.Token, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Tickets returns the ticket list filtered by ?q= and ?status=.
func (h *PortalHandler) Tickets(c *gin.Context) {
	sess, _ := SessionFrom(c)

	tickets, err := h.api.Tickets(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err)
		return
	}

	filtered := derive.FilterTickets(tickets, c.Query("q"), c.Query("status"))
	c.JSON(http.StatusOK, gin.H{
		"items":   filtered,
		"summary": derive.TicketSummary(filtered),
	})
}

func (h *PortalHandler) TicketDetail(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}

	ticket, err := h.api.Ticket(c.Request.Context(), sess.Token, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	// Internal notes never leave the admin portal.
	visible := make([]model.Comment, 0, len(ticket.Comments))
	for _, cm := range ticket.Comments {
		if !cm.IsInternal {
			visible = append(visible, cm)
		}
	}
	ticket.Comments = visible

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (h *PortalHandler) CreateTicket(c *gin.Context) {
	sess, _ := SessionFrom(c)

	var req model.Ticket
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	if req.Severity == "" {
		req.Severity = "Media"
	}

	created, err := h.api.CreateTicket(c.Request.Context(), sess.Token, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ticket": created})
}

func (h *PortalHandler) AddComment(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}

	var req model.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	// Portal users cannot write internal notes.
	req.IsInternal = false
	req.AuthorName = sess.User.FullName

	comment, err := h.api.AddComment(c.Request.Context(), sess.Token, id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// Invoices returns the filtered invoice list, grouped by state with
// per-group totals (?q=, ?status=, ?days=).
func (h *PortalHandler) Invoices(c *gin.Context) {
	sess, _ := SessionFrom(c)

	invoices, err := h.api.Invoices(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err)
		return
	}

	filter := derive.InvoiceFilter{
		Status: c.Query("status"),
		Query:  c.Query("q"),
	}
	if days := c.Query("days"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			filter.MaxAgeDays = n
		}
	}

	filtered := derive.FilterInvoices(invoices, filter, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"items":  filtered,
		"groups": derive.GroupInvoices(filtered),
		"count":  len(filtered),
	})
}

func (h *PortalHandler) Documents(c *gin.Context) {
	sess, _ := SessionFrom(c)

	documents, err := h.api.Documents(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": documents})
}
