package main

import (
	"innovati-portal/internal/config"
	"innovati-portal/internal/handler"
	"innovati-portal/internal/httpserver"
	"innovati-portal/internal/session"
	"innovati-portal/internal/upstream"
	"innovati-portal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// Session store: Redis when configured, in-memory otherwise (dev).
	var store session.Store
	if cfg.Redis.Addr != "" {
		redisStore := session.NewRedisStore(cfg.Redis)
		defer redisStore.Close()
		store = redisStore
	} else {
		log.Warn("no redis configured, sessions will not survive restarts")
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, cfg.Session.Secret, cfg.Session.TTL)

	// Upstream core API client.
	api := upstream.NewClient(cfg.Upstream.BaseURL, log)

	// Handlers.
	publicHandler := handler.NewPublicHandler(api, log)
	authHandler := handler.NewAuthHandler(api, sessions, log)
	portalHandler := handler.NewPortalHandler(api, sessions, log)
	adminHandler := handler.NewAdminHandler(api, sessions, log)

	// Router.
	router := httpserver.NewRouter(publicHandler, authHandler, portalHandler, adminHandler, sessions, log)

	log.Info("portal gateway starting",
		zap.String("port", cfg.Server.Port),
		zap.String("upstream", cfg.Upstream.BaseURL),
	)
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
