package handler

import (
	"github.com/gin-gonic/gin"

	"innovati-portal/internal/session"
)

// Keys the route guard uses to hand the resolved session to handlers.
const (
	CtxSessionKey = "portal_session"
	CtxCookieKey  = "portal_cookie"
)

// Login pages per identity domain, referenced by the guard redirect and
// by 401 responses.
const (
	ClientLoginPath = "/cliente/login"
	AdminLoginPath  = "/admin/login"
)

// LoginPath returns the login page for a domain.
func LoginPath(domain session.Domain) string {
	if domain == session.DomainAdmin {
		return AdminLoginPath
	}
	return ClientLoginPath
}

// SessionFrom returns the session stored by the route guard.
func SessionFrom(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(CtxSessionKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

// CookieFrom returns the raw session cookie stored by the route guard.
func CookieFrom(c *gin.Context) string {
	v, ok := c.Get(CtxCookieKey)
	if !ok {
		return ""
	}
	cookie, _ := v.(string)
	return cookie
}
