package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawtel/pawtel_api/routers/api/models"
	"github.com/pawtel/pawtel_api/services"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Router serves read access to users, mounted on /users
type Router interface {
	models.Router
	GetUsers(ctx *gin.Context)
	GetUser(ctx *gin.Context)
}

type usersRouter struct {
	models.BaseRouter
	logger      *zap.Logger
	userService services.UserService
}

type getUsersRes struct {
	Users []bson.M `json:"users"`
}

type getUserRes struct {
	User bson.M `json:"user"`
}

func NewRouter(logger *zap.Logger, userService services.UserService) Router {
	return &usersRouter{
		logger:      logger,
		userService: userService,
	}
}

func (r *usersRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.GetUsers)
	routerGroup.GET("/:id", r.GetUser)
}

// GET: /users
// Response: users []object
func (r *usersRouter) GetUsers(ctx *gin.Context) {
	users, err := r.userService.GetUsers(ctx)
	if err != nil {
		r.logger.Error("could not fetch users", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, models.InternalErrorMessage)
		return
	}

	ctx.JSON(http.StatusOK, getUsersRes{
		Users: users,
	})
}

// GET: /users/:id
// Response: user object
func (r *usersRouter) GetUser(ctx *gin.Context) {
	id := ctx.Param("id")

	user, err := r.userService.GetUserWithID(ctx, id)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid user id", zap.String("id", id))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid user id provided")
		case services.ErrNotFound:
			r.logger.Debug("user not found", zap.String("id", id))
			models.SendAPIError(ctx, http.StatusNotFound, "user not found")
		default:
			r.logger.Error("could not fetch user", zap.String("id", id), zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, models.InternalErrorMessage)
		}
		return
	}

	ctx.JSON(http.StatusOK, getUserRes{
		User: user,
	})
}
