package models

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	welcomeMessage  = "Welcome to Pawtel API!"
	notFoundMessage = "No route with that path found!"
)

// Router is a group of routes that can be mounted on a gin router group
type Router interface {
	RegisterRoutes(routerGroup *gin.RouterGroup)
}

// BaseRouter holds the handlers shared by every router
type BaseRouter struct{}

// GET: /
// Response: message string
//           attemtedPath string
func (r *BaseRouter) Welcome(ctx *gin.Context) {
	ctx.JSON(http.StatusTeapot, welcomeRes{
		Message:      welcomeMessage,
		AttemtedPath: ctx.Request.URL.Path,
	})
}

// NotFound answers every request no registered route matched
func (r *BaseRouter) NotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, notFoundRes{
		Message:       notFoundMessage,
		AttemptedPath: ctx.Request.URL.Path,
	})
}
