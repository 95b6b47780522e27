package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"innovati-portal/internal/derive"
	"innovati-portal/internal/model"
)

func (h *AdminHandler) Tickets(c *gin.Context) {
	sess, _ := SessionFrom(c)

	tickets, err := h.api.AdminTickets(c.Request.Context(), sess.Token)
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

func (h *AdminHandler) TicketDetail(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	// Admins see every comment, internal notes included.
	ticket, err := h.api.AdminTicket(c.Request.Context(), sess.Token, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (h *AdminHandler) UpdateTicket(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.Ticket
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated, err := h.api.AdminUpdateTicket(c.Request.Context(), sess.Token, id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": updated})
}

func (h *AdminHandler) AddComment(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
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
	if req.AuthorName == "" {
		req.AuthorName = sess.User.FullName
	}

	comment, err := h.api.AdminAddComment(c.Request.Context(), sess.Token, id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
