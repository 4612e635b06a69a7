package utils

import (
	"os"

	"github.com/pawtel/pawtel_api/environment"
	"go.uber.org/zap"
)

// NewLogger creates the application logger.
// ENVIRONMENT=prod selects the JSON production encoder.
func NewLogger() (*zap.Logger, error) {
	var logger *zap.Logger
	var err error
	if os.Getenv(environment.Environment) == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return logger.Named("pawtel"), nil
}
