//go:build wireinject
// +build wireinject

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/pawtel/pawtel_api/config"
	"github.com/pawtel/pawtel_api/database"
	"github.com/pawtel/pawtel_api/environment"
	"github.com/pawtel/pawtel_api/lifecycle"
	"github.com/pawtel/pawtel_api/repositories"
	"github.com/pawtel/pawtel_api/routers"
	"github.com/pawtel/pawtel_api/routers/api/bookings"
	"github.com/pawtel/pawtel_api/routers/api/diagnostics"
	"github.com/pawtel/pawtel_api/routers/api/users"
	"github.com/pawtel/pawtel_api/services/mongo"
	"github.com/pawtel/pawtel_api/utils"
)

func InitializeSequencer() (*lifecycle.Sequencer, error) {
	wire.Build(
		lifecycle.NewSequencer,
		lifecycle.NewTracker,
		wire.Bind(new(http.Handler), new(*gin.Engine)),
		wire.Bind(new(lifecycle.DatabaseConnector), new(*database.Connection)),
		NewServer,
		routers.NewMainRouter,
		diagnostics.NewRouter,
		bookings.NewRouter,
		users.NewRouter,
		mongo.NewMongoDiagnosticsService,
		mongo.NewMongoBookingService,
		mongo.NewMongoUserService,
		repositories.NewDatabaseRepository,
		repositories.NewBookingRepository,
		repositories.NewUserRepository,
		database.NewConnection,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return nil, nil
}
