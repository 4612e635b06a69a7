package database

import (
	"context"
	"net"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pawtel/pawtel_api/config"
	"github.com/pawtel/pawtel_api/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Client is the subset of *mongo.Client used by Connection
type Client interface {
	Connect(ctx context.Context) error
	Ping(ctx context.Context, rp *readpref.ReadPref) error
	Disconnect(ctx context.Context) error
	Database(name string, opts ...*options.DatabaseOptions) *mongo.Database
}

// Connection is the process-wide handle to the database.
// Its state can be read concurrently while Connect runs.
type Connection struct {
	logger       *zap.Logger
	client       Client
	timeProvider utils.TimeProvider

	name           string
	host           string
	connectTimeout time.Duration
	retry          config.RetryConfig

	state *atomic.Int32

	connectMu     sync.Mutex
	clientStarted bool

	modelsMu sync.RWMutex
	models   map[string]bool
}

// NewConnection creates a Connection for cfg.DatabaseURL.
// No network traffic happens until Connect is called.
func NewConnection(logger *zap.Logger, cfg *config.AppConfig, timeProvider utils.TimeProvider) (*Connection, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, errors.Wrap(err, "could not create database client")
	}

	return newConnection(logger, cfg, client, timeProvider), nil
}

func newConnection(logger *zap.Logger, cfg *config.AppConfig, client Client, timeProvider utils.TimeProvider) *Connection {
	name, host := parseNameAndHost(cfg.DatabaseURL)
	if name == "" {
		name = cfg.Database.DefaultName
	}

	return &Connection{
		logger:         logger,
		client:         client,
		timeProvider:   timeProvider,
		name:           name,
		host:           host,
		connectTimeout: cfg.Database.ConnectTimeout,
		retry:          cfg.Database.Retry,
		state:          atomic.NewInt32(int32(Disconnected)),
		models:         map[string]bool{},
	}
}

// Connect starts the client and pings the server until it answers
// or the retry policy is exhausted
func (c *Connection) Connect(ctx context.Context) error {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	if c.ReadyState() == Connected {
		return nil
	}
	c.setState(Connecting)

	if !c.clientStarted {
		err := c.client.Connect(ctx)
		if err != nil {
			c.setState(Disconnected)
			return errors.Wrap(err, "could not start database client")
		}
		c.clientStarted = true
	}

	backoff := c.retry.InitialBackoff
	attempt := 1
	var err error
	for {
		err = c.ping(ctx)
		if err == nil {
			c.setState(Connected)
			c.logger.Info("connected to database", zap.String("name", c.name), zap.String("host", c.host))
			return nil
		}
		if attempt >= c.retry.MaxAttempts {
			break
		}

		c.logger.Warn("could not connect to database, will retry",
			zap.Int("attempt", attempt), zap.Duration("backoff", backoff), zap.Error(err))
		sleepErr := c.timeProvider.Sleep(ctx, backoff)
		if sleepErr != nil {
			err = sleepErr
			break
		}

		backoff = nextBackoff(backoff, c.retry.MaxBackoff)
		attempt++
	}

	c.setState(Disconnected)
	return errors.Wrapf(err, "could not connect to database after %d attempt(s)", attempt)
}

func (c *Connection) ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()

	return c.client.Ping(pingCtx, readpref.Primary())
}

// Disconnect closes the client. Calling it on a client that never connected is a no-op.
func (c *Connection) Disconnect(ctx context.Context) error {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	if !c.clientStarted {
		return nil
	}

	c.setState(Disconnecting)
	err := c.client.Disconnect(ctx)
	c.setState(Disconnected)
	c.clientStarted = false
	if err != nil && err != mongo.ErrClientDisconnected {
		return errors.Wrap(err, "could not disconnect from database")
	}

	c.logger.Info("disconnected from database")
	return nil
}

// Database returns the handle of the configured database
func (c *Connection) Database() *mongo.Database {
	return c.client.Database(c.name)
}

// RegisterModel records the name of a model backed by this connection
func (c *Connection) RegisterModel(name string) {
	c.modelsMu.Lock()
	defer c.modelsMu.Unlock()

	c.models[name] = true
}

// ModelNames returns the registered model names in alphabetical order
func (c *Connection) ModelNames() []string {
	c.modelsMu.RLock()
	defer c.modelsMu.RUnlock()

	names := make([]string, 0, len(c.models))
	for name := range c.models {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (c *Connection) ReadyState() ReadyState {
	return ReadyState(c.state.Load())
}

func (c *Connection) Name() string {
	return c.name
}

func (c *Connection) Host() string {
	return c.host
}

func (c *Connection) setState(state ReadyState) {
	c.state.Store(int32(state))
}

func nextBackoff(current, max time.Duration) time.Duration {
	next := current * 2
	if next > max {
		return max
	}
	return next
}

// parseNameAndHost extracts the database name and the first host name from a connection string
func parseNameAndHost(connectionURL string) (string, string) {
	u, err := url.Parse(connectionURL)
	if err != nil {
		return "", ""
	}

	name := strings.TrimPrefix(u.Path, "/")

	host := strings.Split(u.Host, ",")[0]
	if hostname, _, err := net.SplitHostPort(host); err == nil {
		host = hostname
	}

	return name, host
}
