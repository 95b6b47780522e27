package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"innovati-portal/internal/model"
	"innovati-portal/internal/session"
	"innovati-portal/internal/upstream"
	"innovati-portal/pkg/logger"
	"innovati-portal/pkg/metrics"
)

// AuthHandler owns login and logout for both portals. Credentials are
// verified by the upstream auth endpoints; the gateway only stores the
// returned token and profile.
type AuthHandler struct {
	api      *upstream.Client
	sessions *session.Manager
	logger   *zap.Logger
}

func NewAuthHandler(api *upstream.Client, sessions *session.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions, logger: logger}
}

func (h *AuthHandler) ClientLogin(c *gin.Context) {
	h.login(c, session.DomainClient)
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, session.DomainAdmin)
}

func (h *AuthHandler) login(c *gin.Context, domain session.Domain) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// Local validation: empty credentials never reach the upstream.
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	var (
		resp model.LoginResponse
		err  error
	)
	if domain == session.DomainAdmin {
		resp, err = h.api.AdminLogin(c.Request.Context(), req.Email, req.Password)
	} else {
		resp, err = h.api.Login(c.Request.Context(), req.Email, req.Password)
	}
	if err != nil {
		metrics.LoginCount.WithLabelValues(string(domain), "failed").Inc()
		respondUpstreamError(c, h.sessions, domain, err)
		return
	}

	cookie, err := h.sessions.Issue(c.Request.Context(), domain, resp.AccessToken, resp.User)
	if err != nil {
		logger.WithRequest(c.Request.Context(), h.logger).Error("failed to issue session",
			zap.String("domain", string(domain)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	metrics.LoginCount.WithLabelValues(string(domain), "ok").Inc()
	metrics.ActiveSessions.WithLabelValues(string(domain)).Inc()
	setSessionCookie(c, domain, cookie, int(h.sessions.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"user": resp.User})
}

func (h *AuthHandler) ClientLogout(c *gin.Context) {
	h.logout(c, session.DomainClient)
}

func (h *AuthHandler) AdminLogout(c *gin.Context) {
	h.logout(c, session.DomainAdmin)
}

// logout clears the session and the cookie. Safe to call with no
// session at all.
func (h *AuthHandler) logout(c *gin.Context, domain session.Domain) {
	cookie, _ := c.Cookie(domain.CookieName())
	if cookie != "" {
		if err := h.sessions.Clear(c.Request.Context(), domain, cookie); err != nil {
			logger.WithRequest(c.Request.Context(), h.logger).Warn("failed to clear session",
				zap.String("domain", string(domain)), zap.Error(err))
		} else {
			metrics.ActiveSessions.WithLabelValues(string(domain)).Dec()
		}
	}
	expireCookie(c, domain)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) ClientMe(c *gin.Context) {
	h.me(c)
}

func (h *AuthHandler) AdminMe(c *gin.Context) {
	h.me(c)
}

func (h *AuthHandler) me(c *gin.Context) {
	sess, ok := SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}
