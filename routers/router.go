package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/pawtel/pawtel_api/routers/api/bookings"
	"github.com/pawtel/pawtel_api/routers/api/diagnostics"
	"github.com/pawtel/pawtel_api/routers/api/models"
	"github.com/pawtel/pawtel_api/routers/api/users"
	"go.uber.org/zap"
)

// MainRouter mounts every router of the API
type MainRouter interface {
	models.Router
	Welcome(ctx *gin.Context)
	NotFound(ctx *gin.Context)
}

type mainRouter struct {
	models.BaseRouter
	logger            *zap.Logger
	diagnosticsRouter diagnostics.Router
	bookingsRouter    bookings.Router
	usersRouter       users.Router
}

func NewMainRouter(logger *zap.Logger, diagnosticsRouter diagnostics.Router, bookingsRouter bookings.Router,
	usersRouter users.Router) MainRouter {
	return &mainRouter{
		logger:            logger,
		diagnosticsRouter: diagnosticsRouter,
		bookingsRouter:    bookingsRouter,
		usersRouter:       usersRouter,
	}
}

// RegisterRoutes mounts the API on routerGroup.
// Unmatched paths are answered by NotFound, which the server installs as its NoRoute handler.
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Welcome)

	r.diagnosticsRouter.RegisterRoutes(routerGroup)
	r.bookingsRouter.RegisterRoutes(routerGroup.Group("/bookings"))
	r.usersRouter.RegisterRoutes(routerGroup.Group("/users"))
}
