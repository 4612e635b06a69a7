package config

import (
	"bytes"
	"embed"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pawtel/pawtel_api/environment"
	"github.com/pkg/errors"
	"go.uber.org/config"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

//go:embed base.yaml development.yaml test.yaml production.yaml
var configFiles embed.FS

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name        string            `yaml:"name" validate:"required"`
	DefaultPort int               `yaml:"default_port" validate:"min=1,max=65535"`
	CORS        CORSConfig        `yaml:"cors"`
	Database    DatabaseConfig    `yaml:"database"`
	Server      ServerConfig      `yaml:"server"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`

	// resolved from the environment at boot
	Environment string `yaml:"-"`
	Port        int    `yaml:"-" validate:"min=1,max=65535"`
	DatabaseURL string `yaml:"-" validate:"required"`
}

// CORSConfig stores the cross-origin policy of the server
type CORSConfig struct {
	AllowedOrigins       []string `yaml:"allowed_origins" validate:"required,min=1,dive,url"`
	OptionsSuccessStatus int      `yaml:"options_success_status" validate:"min=200,max=299"`
}

// DatabaseConfig stores the database connection policy
type DatabaseConfig struct {
	DefaultURL     string        `yaml:"default_url" validate:"required"`
	DefaultName    string        `yaml:"default_name" validate:"required"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" validate:"gt=0"`
	Retry          RetryConfig   `yaml:"retry"`
}

// RetryConfig is the backoff policy used while connecting to the database.
// MaxAttempts of 1 disables retrying.
type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts" validate:"min=1"`
	InitialBackoff time.Duration `yaml:"initial_backoff" validate:"gte=0"`
	MaxBackoff     time.Duration `yaml:"max_backoff" validate:"gte=0"`
}

type ServerConfig struct {
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// DiagnosticsConfig controls the database introspection endpoints
type DiagnosticsConfig struct {
	DumpEnabled     bool            `yaml:"dump_enabled"`
	LogDump         bool            `yaml:"log_dump"`
	DumpPageSize    int64           `yaml:"dump_page_size" validate:"min=1"`
	DumpMaxPageSize int64           `yaml:"dump_max_page_size" validate:"min=1"`
	DumpConcurrency int             `yaml:"dump_concurrency" validate:"min=1"`
	DumpRateLimit   RateLimitConfig `yaml:"dump_rate_limit"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" validate:"min=1"`
	Burst             int `yaml:"burst" validate:"min=1"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env, logger *zap.Logger) (*AppConfig, error) {
	configFileNames := []string{"base.yaml"}
	switch env.Get(environment.Environment) {
	case "prod":
		configFileNames = append(configFileNames, "production.yaml")
	case "dev":
		configFileNames = append(configFileNames, "development.yaml")
	case "test":
		configFileNames = append(configFileNames, "test.yaml")
	}

	var configSources []config.YAMLOption
	for _, name := range configFileNames {
		content, err := configFiles.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read config file %s", name)
		}
		configSources = append(configSources, config.Source(bytes.NewReader(content)))
	}

	configProvider, err := config.NewYAML(configSources...)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse config files")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate config")
	}

	cfg.Environment = env.Get(environment.Environment)
	cfg.CORS.AllowedOrigins = NormaliseOrigins(cfg.CORS.AllowedOrigins)

	port, ok := ResolvePort(env.Get(environment.Port), cfg.DefaultPort)
	if !ok {
		logger.Warn("falling back to default port",
			zap.String("var", environment.Port), zap.Int("port", port))
	}
	cfg.Port = port

	databaseURL, ok := ResolveDatabaseURL(env.Get(environment.DatabaseURI), cfg.Database.DefaultURL)
	if !ok {
		logger.Warn("falling back to default database url", zap.String("var", environment.DatabaseURI))
	}
	cfg.DatabaseURL = databaseURL

	err = cfg.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// Validate checks field constraints and the relations between fields
func (cfg *AppConfig) Validate() error {
	err := validator.New().Struct(cfg)

	if cfg.Diagnostics.DumpPageSize > cfg.Diagnostics.DumpMaxPageSize {
		err = multierr.Append(err, errors.New("diagnostics.dump_page_size must not exceed diagnostics.dump_max_page_size"))
	}
	if cfg.Database.Retry.InitialBackoff > cfg.Database.Retry.MaxBackoff {
		err = multierr.Append(err, errors.New("database.retry.initial_backoff must not exceed database.retry.max_backoff"))
	}
	if _, ok := ResolveDatabaseURL(cfg.Database.DefaultURL, ""); !ok {
		err = multierr.Append(err, errors.New("database.default_url is not a valid mongodb connection string"))
	}

	return err
}
