package main

import (
	"github.com/gin-gonic/gin"
	"github.com/pawtel/pawtel_api/config"
	"github.com/pawtel/pawtel_api/routers"
	"github.com/pawtel/pawtel_api/routers/middleware"
	"go.uber.org/zap"
)

// NewServer builds the gin engine with the middleware chain and every route mounted
func NewServer(logger *zap.Logger, cfg *config.AppConfig, mainRouter routers.MainRouter) *gin.Engine {
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := gin.New()
	// handlers see the request context, so a client disconnect cancels database calls
	server.ContextWithFallback = true

	server.Use(middleware.RequestLogging(logger)...)
	server.Use(middleware.SecurityHeaders(cfg)...)
	server.Use(middleware.CORS(cfg))

	mainRouter.RegisterRoutes(&server.RouterGroup)
	server.NoRoute(mainRouter.NotFound)

	return server
}
