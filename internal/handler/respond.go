package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"innovati-portal/internal/session"
	"innovati-portal/internal/upstream"
)

// respondUpstreamError maps an upstream failure onto the portal response.
// A 401 means the stored token expired upstream: the session is cleared
// so the next navigation hits the login page. Every other upstream error
// passes through with its normalized message; transport errors become a
// 502. Nothing is swallowed.
func respondUpstreamError(c *gin.Context, sessions *session.Manager, domain session.Domain, err error) {
	if upstream.IsUnauthorized(err) {
		_ = sessions.Clear(c.Request.Context(), domain, CookieFrom(c))
		expireCookie(c, domain)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "login": LoginPath(domain)})
		return
	}

	var ue *upstream.Error
	if errors.As(err, &ue) {
		c.JSON(ue.Status, gin.H{"error": ue.Message})
		return
	}

	if errors.Is(err, context.Canceled) {
		// Caller navigated away; the response goes nowhere anyway.
		c.Status(499)
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

func setSessionCookie(c *gin.Context, domain session.Domain, value string, maxAge int) {
	c.SetCookie(domain.CookieName(), value, maxAge, "/", "", false, true)
}

func expireCookie(c *gin.Context, domain session.Domain) {
	c.SetCookie(domain.CookieName(), "", -1, "/", "", false, true)
}
