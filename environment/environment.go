package environment

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// names of env vars
const (
	Environment = "ENVIRONMENT"
	Port        = "PORT"
	DatabaseURI = "DB_URI"
)

// dotEnvFile is loaded before the process environment is read.
// Variables already set in the environment take precedence.
const dotEnvFile = ".env"

// NewEnv creates an Env with loaded environment variables
func NewEnv(logger *zap.Logger) *Env {
	if err := godotenv.Load(dotEnvFile); err != nil {
		logger.Debug("no .env file loaded", zap.String("file", dotEnvFile), zap.Error(err))
	}

	env := Env{
		vars: map[string]string{
			Environment: valueOfEnvVar(logger, Environment),
			Port:        valueOfEnvVar(logger, Port),
			DatabaseURI: valueOfEnvVar(logger, DatabaseURI),
		},
	}
	return &env
}

// Env is a struct to store environment variables in an immutable collection
type Env struct {
	vars map[string]string
}

// Get returns an environment variable with the specified name
func (env *Env) Get(variableName string) string {
	return env.vars[variableName]
}

func valueOfEnvVar(logger *zap.Logger, varName string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		logger.Warn("expected environment variable not defined", zap.String("var", varName))
	}

	return envVar
}
