package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"innovati-portal/internal/handler"
	"innovati-portal/internal/session"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	public *handler.PublicHandler,
	auth *handler.AuthHandler,
	portal *handler.PortalHandler,
	admin *handler.AdminHandler,
	sessions *session.Manager,
	logger *zap.Logger,
) *Router {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(logger), Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Marketing site, no auth
	pub := r.Group("/api/public")
	{
		pub.GET("/services", public.Services)
		pub.GET("/services/:slug", public.ServiceDetail)
		pub.GET("/plans", public.Plans)
		pub.POST("/contact", public.Contact)
	}

	// Session endpoints live outside the guards: login must be reachable
	// unauthenticated and logout must never redirect.
	r.POST("/portal/api/login", auth.ClientLogin)
	r.POST("/portal/api/logout", auth.ClientLogout)
	r.POST("/admin/api/login", auth.AdminLogin)
	r.POST("/admin/api/logout", auth.AdminLogout)

	// Client portal
	portalGroup := r.Group("/portal/api")
	portalGroup.Use(Guard(sessions, session.DomainClient, handler.ClientLoginPath))
	{
		portalGroup.GET("/me", auth.ClientMe)
		portalGroup.GET("/dashboard", portal.Dashboard)
		portalGroup.GET("/projects", portal.Projects)
		portalGroup.GET("/projects/:id", portal.ProjectDetail)
		portalGroup.GET("/tickets", portal.Tickets)
		portalGroup.POST("/tickets", portal.CreateTicket)
		portalGroup.GET("/tickets/:id", portal.TicketDetail)
		portalGroup.POST("/tickets/:id/comments", portal.AddComment)
		portalGroup.GET("/invoices", portal.Invoices)
		portalGroup.GET("/documents", portal.Documents)
	}

	// Admin portal
	adminGroup := r.Group("/admin/api")
	adminGroup.Use(Guard(sessions, session.DomainAdmin, handler.AdminLoginPath))
	{
		adminGroup.GET("/me", auth.AdminMe)
		adminGroup.GET("/dashboard", admin.Dashboard)

		adminGroup.GET("/clients", admin.Clients)
		adminGroup.POST("/clients", admin.CreateClient)
		adminGroup.PUT("/clients/:id", admin.UpdateClient)
		adminGroup.DELETE("/clients/:id", admin.DeleteClient)

		adminGroup.GET("/client-users", admin.ClientUsers)
		adminGroup.POST("/client-users", admin.CreateClientUser)
		adminGroup.PUT("/client-users/:id", admin.UpdateClientUser)
		adminGroup.DELETE("/client-users/:id", admin.DeleteClientUser)

		adminGroup.GET("/projects", admin.Projects)
		adminGroup.POST("/projects", admin.CreateProject)
		adminGroup.GET("/projects/:id", admin.ProjectDetail)
		adminGroup.PUT("/projects/:id", admin.UpdateProject)
		adminGroup.DELETE("/projects/:id", admin.DeleteProject)

		adminGroup.POST("/projects/:id/milestones", admin.CreateMilestone)
		adminGroup.PUT("/milestones/:id", admin.UpdateMilestone)
		adminGroup.DELETE("/milestones/:id", admin.DeleteMilestone)

		adminGroup.POST("/projects/:id/tasks", admin.CreateTask)
		adminGroup.PUT("/tasks/:id", admin.UpdateTask)
		adminGroup.DELETE("/tasks/:id", admin.DeleteTask)

		adminGroup.GET("/tickets", admin.Tickets)
		adminGroup.GET("/tickets/:id", admin.TicketDetail)
		adminGroup.PUT("/tickets/:id", admin.UpdateTicket)
		adminGroup.POST("/tickets/:id/comments", admin.AddComment)

		adminGroup.GET("/invoices", admin.Invoices)
		adminGroup.GET("/documents", admin.Documents)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
