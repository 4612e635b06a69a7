package diagnostics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawtel/pawtel_api/config"
	"github.com/pawtel/pawtel_api/entities"
	"github.com/pawtel/pawtel_api/routers/api/models"
	"github.com/pawtel/pawtel_api/routers/middleware"
	"github.com/pawtel/pawtel_api/services"
	"github.com/pawtel/pawtel_api/utils"
	"go.uber.org/zap"
)

// Router serves the database introspection endpoints
type Router interface {
	models.Router
	GetDatabaseHealth(ctx *gin.Context)
	GetDatabaseDump(ctx *gin.Context)
}

type diagnosticsRouter struct {
	models.BaseRouter
	logger             *zap.Logger
	cfg                *config.AppConfig
	diagnosticsService services.DiagnosticsService
	dumpLimiter        *middleware.RateLimiter
}

func NewRouter(logger *zap.Logger, cfg *config.AppConfig, diagnosticsService services.DiagnosticsService,
	timeProvider utils.TimeProvider) Router {
	return &diagnosticsRouter{
		logger:             logger,
		cfg:                cfg,
		diagnosticsService: diagnosticsService,
		dumpLimiter:        middleware.NewRateLimiter(logger, cfg.Diagnostics.DumpRateLimit, timeProvider),
	}
}

func (r *diagnosticsRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/databaseHealth", r.GetDatabaseHealth)

	if r.cfg.Diagnostics.DumpEnabled {
		routerGroup.GET("/databaseDump", r.dumpLimiter.Middleware(), r.GetDatabaseDump)
	}
}

// GET: /databaseHealth
// Response: readyState int
//           dbName string
//           dbModels []string
//           dbHost string
//           bootState string
func (r *diagnosticsRouter) GetDatabaseHealth(ctx *gin.Context) {
	health, err := r.diagnosticsService.GetDatabaseHealth(ctx)
	if err != nil {
		r.logger.Error("could not get database health", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, models.InternalErrorMessage)
		return
	}

	ctx.JSON(http.StatusOK, health)
}

// GET: /databaseDump
// Request:  limit int (query, optional)
//           skip int (query, optional)
// Response: data map[string][]object
//           truncated []string
func (r *diagnosticsRouter) GetDatabaseDump(ctx *gin.Context) {
	var params entities.DumpParams
	err := ctx.ShouldBindQuery(&params)
	if err != nil {
		r.logger.Debug("could not parse dump parameters", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "limit and skip must be non-negative integers")
		return
	}

	dump, err := r.diagnosticsService.GetDatabaseDump(ctx, params)
	if err != nil {
		r.logger.Error("could not dump database", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, models.InternalErrorMessage)
		return
	}

	ctx.JSON(http.StatusOK, dump)
}
