package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"innovati-portal/internal/model"
	"innovati-portal/internal/session"
	"innovati-portal/internal/upstream"
)

// AdminHandler serves everything behind the admin guard.
type AdminHandler struct {
	api      *upstream.Client
	sessions *session.Manager
	logger   *zap.Logger
}

func NewAdminHandler(api *upstream.Client, sessions *session.Manager, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{api: api, sessions: sessions, logger: logger}
}

func (h *AdminHandler) fail(c *gin.Context, err error) {
	respondUpstreamError(c, h.sessions, session.DomainAdmin, err)
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// Clients

func (h *AdminHandler) Clients(c *gin.Context) {
	sess, _ := SessionFrom(c)
	clients, err := h.api.AdminClients(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *AdminHandler) CreateClient(c *gin.Context) {
	sess, _ := SessionFrom(c)

	var req model.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	created, err := h.api.AdminCreateClient(c.Request.Context(), sess.Token, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": created})
}

func (h *AdminHandler) UpdateClient(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated, err := h.api.AdminUpdateClient(c.Request.Context(), sess.Token, id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": updated})
}

func (h *AdminHandler) DeleteClient(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.api.AdminDeleteClient(c.Request.Context(), sess.Token, id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Client users

func (h *AdminHandler) ClientUsers(c *gin.Context) {
	sess, _ := SessionFrom(c)
	users, err := h.api.AdminClientUsers(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_users": users})
}

func (h *AdminHandler) CreateClientUser(c *gin.Context) {
	sess, _ := SessionFrom(c)

	var req model.ClientUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.ClientID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and client_id are required"})
		return
	}

	created, err := h.api.AdminCreateClientUser(c.Request.Context(), sess.Token, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client_user": created})
}

func (h *AdminHandler) UpdateClientUser(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.ClientUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated, err := h.api.AdminUpdateClientUser(c.Request.Context(), sess.Token, id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_user": updated})
}

func (h *AdminHandler) DeleteClientUser(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.api.AdminDeleteClientUser(c.Request.Context(), sess.Token, id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Invoices and documents (read-only views on the admin side)

func (h *AdminHandler) Invoices(c *gin.Context) {
	sess, _ := SessionFrom(c)
	invoices, err := h.api.AdminInvoices(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *AdminHandler) Documents(c *gin.Context) {
	sess, _ := SessionFrom(c)
	documents, err := h.api.AdminDocuments(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": documents})
}
