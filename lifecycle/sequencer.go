package lifecycle

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/pawtel/pawtel_api/config"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// DatabaseConnector opens and closes the database connection
type DatabaseConnector interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

// Sequencer boots the server: it starts listening first and only then
// connects to the database in the background, so requests can be served
// while the connection is still pending.
type Sequencer struct {
	logger          *zap.Logger
	handler         http.Handler
	connector       DatabaseConnector
	tracker         *Tracker
	port            int
	shutdownTimeout time.Duration

	addr atomic.Value
}

func NewSequencer(logger *zap.Logger, cfg *config.AppConfig, handler http.Handler, connector DatabaseConnector, tracker *Tracker) *Sequencer {
	return &Sequencer{
		logger:          logger,
		handler:         handler,
		connector:       connector,
		tracker:         tracker,
		port:            cfg.Port,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
}

// Run serves requests until ctx is cancelled, then shuts the server down
// and disconnects from the database
func (s *Sequencer) Run(ctx context.Context) error {
	s.tracker.Set(Starting)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return errors.Wrapf(err, "could not listen on port %d", s.port)
	}
	s.addr.Store(listener.Addr())

	server := &http.Server{Handler: s.handler}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	s.tracker.Set(ListeningDBPending)
	s.logger.Info("Pawtel server is running!", zap.String("addr", listener.Addr().String()))

	connectCtx, cancelConnect := context.WithCancel(ctx)
	defer cancelConnect()
	connectDone := make(chan struct{})
	go func() {
		defer close(connectDone)
		s.connect(connectCtx)
	}()

	select {
	case err = <-serveErr:
		err = errors.Wrap(err, "server stopped unexpectedly")
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		err = server.Shutdown(shutdownCtx)
		if err != nil {
			err = errors.Wrap(err, "could not shut down server gracefully")
		}
	}

	cancelConnect()
	<-connectDone

	disconnectCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if disconnectErr := s.connector.Disconnect(disconnectCtx); disconnectErr != nil {
		s.logger.Error("could not disconnect from database", zap.Error(disconnectErr))
	}

	return err
}

// Addr returns the address the server listens on, or nil before Run has started listening
func (s *Sequencer) Addr() net.Addr {
	addr, _ := s.addr.Load().(net.Addr)
	return addr
}

func (s *Sequencer) connect(ctx context.Context) {
	err := s.connector.Connect(ctx)
	if err != nil {
		s.tracker.Set(ListeningDBFailed)
		s.logger.Warn("there was an error while connecting to the database", zap.Error(err))
		return
	}

	s.tracker.Set(ListeningDBReady)
	s.logger.Info("Database connected", zap.Int("port", s.port))
}
