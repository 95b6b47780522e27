package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"innovati-portal/internal/handler"
	"innovati-portal/internal/session"
)

// Guard gates a portal route group on its own identity domain. The
// cookie is resolved on every request, never cached, so a session
// cleared elsewhere is honored on the next hit. Unauthenticated browser
// navigation is redirected to the domain's login page; API clients get a
// 401 carrying that path.
func Guard(sessions *session.Manager, domain session.Domain, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(domain.CookieName())
		sess, ok := sessions.Resolve(c.Request.Context(), domain, cookie)
		if !ok {
			if acceptsHTML(c.Request) {
				c.Redirect(http.StatusFound, loginPath)
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated", "login": loginPath})
			}
			c.Abort()
			return
		}

		if domain == session.DomainAdmin && sess.User.Role != "" && sess.User.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}

		c.Set(handler.CtxSessionKey, sess)
		c.Set(handler.CtxCookieKey, cookie)
		c.Next()
	}
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
