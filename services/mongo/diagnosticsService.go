package mongo

import (
	"context"
	"sort"
	"sync"

	"github.com/pawtel/pawtel_api/config"
	"github.com/pawtel/pawtel_api/database"
	"github.com/pawtel/pawtel_api/entities"
	"github.com/pawtel/pawtel_api/lifecycle"
	"github.com/pawtel/pawtel_api/repositories"
	"github.com/pawtel/pawtel_api/services"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type mongoDiagnosticsService struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	connection   services.ConnectionState
	bootState    services.BootStateProvider
	dbRepository repositories.DatabaseRepository
}

// NewMongoDiagnosticsService creates a new DiagnosticsService that inspects the MongoDB connection
func NewMongoDiagnosticsService(logger *zap.Logger, cfg *config.AppConfig, conn *database.Connection,
	tracker *lifecycle.Tracker, dbRepository repositories.DatabaseRepository) services.DiagnosticsService {
	s := &mongoDiagnosticsService{
		logger:       logger,
		cfg:          cfg,
		dbRepository: dbRepository,
	}
	// avoid storing typed nils in the interfaces
	if conn != nil {
		s.connection = conn
	}
	if tracker != nil {
		s.bootState = tracker
	}

	return s
}

func (s *mongoDiagnosticsService) GetDatabaseHealth(ctx context.Context) (*entities.DatabaseHealth, error) {
	if s.connection == nil {
		return nil, services.ErrNoConnection
	}

	health := &entities.DatabaseHealth{
		ReadyState: int(s.connection.ReadyState()),
		DBName:     s.connection.Name(),
		DBModels:   s.connection.ModelNames(),
		DBHost:     s.connection.Host(),
	}
	if s.bootState != nil {
		health.BootState = s.bootState.Current().String()
	}

	return health, nil
}

func (s *mongoDiagnosticsService) GetDatabaseDump(ctx context.Context, params entities.DumpParams) (*entities.DatabaseDump, error) {
	if s.dbRepository == nil {
		return nil, services.ErrNoConnection
	}

	limit := s.pageLimit(params.Limit)

	collectionNames, err := s.dbRepository.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "could not list collections")
	}

	dump := &entities.DatabaseDump{
		Data: make(map[string][]bson.M, len(collectionNames)),
	}
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency())
	for _, name := range collectionNames {
		name := name
		group.Go(func() error {
			documents, truncated, err := s.dumpCollection(groupCtx, name, params.Skip, limit)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			dump.Data[name] = documents
			if truncated {
				dump.Truncated = append(dump.Truncated, name)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(dump.Truncated)

	if s.cfg.Diagnostics.LogDump {
		s.logger.Info("dumping database contents to the client", zap.Any("data", dump.Data))
	}

	return dump, nil
}

// dumpCollection reads one page of a collection and reports whether more documents follow it
func (s *mongoDiagnosticsService) dumpCollection(ctx context.Context, name string, skip, limit int64) ([]bson.M, bool, error) {
	// one extra document tells whether the collection was truncated
	cur, err := s.dbRepository.FindAll(ctx, name, options.Find().SetSkip(skip).SetLimit(limit+1))
	if err != nil {
		return nil, false, errors.Wrapf(err, "could not query collection %s", name)
	}

	documents, err := decodeDocuments(ctx, cur)
	if err != nil {
		return nil, false, errors.Wrapf(err, "could not decode collection %s", name)
	}

	if int64(len(documents)) > limit {
		return documents[:limit], true, nil
	}
	return documents, false, nil
}

func (s *mongoDiagnosticsService) concurrency() int {
	if s.cfg.Diagnostics.DumpConcurrency < 1 {
		return 1
	}
	return s.cfg.Diagnostics.DumpConcurrency
}

func (s *mongoDiagnosticsService) pageLimit(requested int64) int64 {
	if requested <= 0 {
		return s.cfg.Diagnostics.DumpPageSize
	}
	if requested > s.cfg.Diagnostics.DumpMaxPageSize {
		return s.cfg.Diagnostics.DumpMaxPageSize
	}
	return requested
}
