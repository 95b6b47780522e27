package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"innovati-portal/internal/model"
	"innovati-portal/internal/upstream"
)

// PublicHandler serves the marketing site data: services catalog, plans
// and the contact form. No authentication involved.
type PublicHandler struct {
	api    *upstream.Client
	logger *zap.Logger
}

func NewPublicHandler(api *upstream.Client, logger *zap.Logger) *PublicHandler {
	return &PublicHandler{api: api, logger: logger}
}

func (h *PublicHandler) Services(c *gin.Context) {
	services, err := h.api.Services(c.Request.Context())
	if err != nil {
		respondPublicError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *PublicHandler) ServiceDetail(c *gin.Context) {
	svc, err := h.api.Service(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondPublicError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

func (h *PublicHandler) Plans(c *gin.Context) {
	plans, err := h.api.Plans(c.Request.Context())
	if err != nil {
		respondPublicError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PublicHandler) Contact(c *gin.Context) {
	var msg model.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}

	if err := h.api.Contact(c.Request.Context(), msg); err != nil {
		respondPublicError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// respondPublicError is respondUpstreamError without the session
// machinery; public routes have no session to clear.
func respondPublicError(c *gin.Context, err error) {
	if ue, ok := err.(*upstream.Error); ok {
		c.JSON(ue.Status, gin.H{"error": ue.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
