package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pawtel/pawtel_api/config"
	"github.com/pawtel/pawtel_api/database"
	"github.com/pawtel/pawtel_api/entities"
	"github.com/pawtel/pawtel_api/lifecycle"
	mock_repositories "github.com/pawtel/pawtel_api/mocks/repositories"
	mock_services "github.com/pawtel/pawtel_api/mocks/services"
	"github.com/pawtel/pawtel_api/services"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type diagnosticsServiceTestSetup struct {
	ctrl           *gomock.Controller
	mockConnection *mock_services.MockConnectionState
	mockBootState  *mock_services.MockBootStateProvider
	mockDBRepo     *mock_repositories.MockDatabaseRepository
	logs           *observer.ObservedLogs
	service        *mongoDiagnosticsService
}

func setupDiagnosticsServiceTest(t *testing.T, logDump bool) *diagnosticsServiceTestSetup {
	ctrl := gomock.NewController(t)
	mockConnection := mock_services.NewMockConnectionState(ctrl)
	mockBootState := mock_services.NewMockBootStateProvider(ctrl)
	mockDBRepo := mock_repositories.NewMockDatabaseRepository(ctrl)
	core, logs := observer.New(zapcore.InfoLevel)

	return &diagnosticsServiceTestSetup{
		ctrl:           ctrl,
		mockConnection: mockConnection,
		mockBootState:  mockBootState,
		mockDBRepo:     mockDBRepo,
		logs:           logs,
		service: &mongoDiagnosticsService{
			logger: zap.New(core),
			cfg: &config.AppConfig{
				Diagnostics: config.DiagnosticsConfig{
					LogDump:         logDump,
					DumpPageSize:    2,
					DumpMaxPageSize: 3,
					DumpConcurrency: 2,
				},
			},
			connection:   mockConnection,
			bootState:    mockBootState,
			dbRepository: mockDBRepo,
		},
	}
}

func TestMongoDiagnosticsService_GetDatabaseHealth(t *testing.T) {
	tests := []struct {
		name       string
		readyState database.ReadyState
		bootState  lifecycle.BootState
		models     []string
		want       *entities.DatabaseHealth
	}{
		{
			name:       "should report disconnected database before connecting",
			readyState: database.Disconnected,
			bootState:  lifecycle.Starting,
			models:     []string{},
			want: &entities.DatabaseHealth{
				ReadyState: 0,
				DBName:     "pawtel_test",
				DBModels:   []string{},
				DBHost:     "localhost",
				BootState:  "Starting",
			},
		},
		{
			name:       "should report connecting database while pending",
			readyState: database.Connecting,
			bootState:  lifecycle.ListeningDBPending,
			models:     []string{"Booking", "User"},
			want: &entities.DatabaseHealth{
				ReadyState: 2,
				DBName:     "pawtel_test",
				DBModels:   []string{"Booking", "User"},
				DBHost:     "localhost",
				BootState:  "Listening-DBPending",
			},
		},
		{
			name:       "should report connected database",
			readyState: database.Connected,
			bootState:  lifecycle.ListeningDBReady,
			models:     []string{"Booking", "User"},
			want: &entities.DatabaseHealth{
				ReadyState: 1,
				DBName:     "pawtel_test",
				DBModels:   []string{"Booking", "User"},
				DBHost:     "localhost",
				BootState:  "Listening-DBReady",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupDiagnosticsServiceTest(t, false)
			defer setup.ctrl.Finish()

			setup.mockConnection.EXPECT().ReadyState().Return(tt.readyState).Times(1)
			setup.mockConnection.EXPECT().Name().Return("pawtel_test").Times(1)
			setup.mockConnection.EXPECT().Host().Return("localhost").Times(1)
			setup.mockConnection.EXPECT().ModelNames().Return(tt.models).Times(1)
			setup.mockBootState.EXPECT().Current().Return(tt.bootState).Times(1)

			health, err := setup.service.GetDatabaseHealth(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.want, health)
		})
	}
}

func Test_NewMongoDiagnosticsService__should_not_store_nil_connection(t *testing.T) {
	service := NewMongoDiagnosticsService(zap.NewNop(), &config.AppConfig{}, nil, nil, nil)

	_, err := service.GetDatabaseHealth(context.Background())
	assert.Equal(t, services.ErrNoConnection, err)

	_, err = service.GetDatabaseDump(context.Background(), entities.DumpParams{})
	assert.Equal(t, services.ErrNoConnection, err)
}

func TestMongoDiagnosticsService_GetDatabaseDump(t *testing.T) {
	t.Run("should return empty data for empty database", func(t *testing.T) {
		setup := setupDiagnosticsServiceTest(t, false)
		defer setup.ctrl.Finish()

		setup.mockDBRepo.EXPECT().ListCollectionNames(gomock.Any(), bson.D{}).Return([]string{}, nil).Times(1)

		dump, err := setup.service.GetDatabaseDump(context.Background(), entities.DumpParams{})

		assert.NoError(t, err)
		assert.Equal(t, &entities.DatabaseDump{Data: map[string][]bson.M{}}, dump)
	})

	t.Run("should return every collection keyed by name", func(t *testing.T) {
		setup := setupDiagnosticsServiceTest(t, false)
		defer setup.ctrl.Finish()

		setup.mockDBRepo.EXPECT().ListCollectionNames(gomock.Any(), bson.D{}).Return([]string{"a", "b"}, nil).Times(1)
		setup.mockDBRepo.EXPECT().FindAll(gomock.Any(), "a", gomock.Any()).
			Return(newTestCursor(t, bson.M{"x": int32(1)}), nil).Times(1)
		setup.mockDBRepo.EXPECT().FindAll(gomock.Any(), "b", gomock.Any()).
			Return(newTestCursor(t), nil).Times(1)

		dump, err := setup.service.GetDatabaseDump(context.Background(), entities.DumpParams{})

		assert.NoError(t, err)
		assert.Equal(t, &entities.DatabaseDump{
			Data: map[string][]bson.M{
				"a": {{"x": int32(1)}},
				"b": {},
			},
		}, dump)
	})

	t.Run("should return the same dump when called twice", func(t *testing.T) {
		setup := setupDiagnosticsServiceTest(t, false)
		defer setup.ctrl.Finish()

		setup.mockDBRepo.EXPECT().ListCollectionNames(gomock.Any(), bson.D{}).Return([]string{"a"}, nil).Times(2)
		setup.mockDBRepo.EXPECT().FindAll(gomock.Any(), "a", gomock.Any()).
			Return(newTestCursor(t, bson.M{"x": int32(1)}), nil).Times(1)
		setup.mockDBRepo.EXPECT().FindAll(gomock.Any(), "a", gomock.Any()).
			Return(newTestCursor(t, bson.M{"x": int32(1)}), nil).Times(1)

		first, err := setup.service.GetDatabaseDump(context.Background(), entities.DumpParams{})
		assert.NoError(t, err)
		second, err := setup.service.GetDatabaseDump(context.Background(), entities.DumpParams{})
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should truncate collections larger than the page", func(t *testing.T) {
		setup := setupDiagnosticsServiceTest(t, false)
		defer setup.ctrl.Finish()

		setup.mockDBRepo.EXPECT().ListCollectionNames(gomock.Any(), bson.D{}).Return([]string{"small", "big"}, nil).Times(1)
		setup.mockDBRepo.EXPECT().FindAll(gomock.Any(), "small", findOptionsMatcher{skip: int64Ptr(0), limit: int64Ptr(3)}).
			Return(newTestCursor(t, bson.M{"n": int32(1)}), nil).Times(1)
		setup.mockDBRepo.EXPECT().FindAll(gomock.Any(), "big", findOptionsMatcher{skip: int64Ptr(0), limit: int64Ptr(3)}).
			Return(newTestCursor(t, bson.M{"n": int32(1)}, bson.M{"n": int32(2)}, bson.M{"n": int32(3)}), nil).Times(1)

		dump, err := setup.service.GetDatabaseDump(context.Background(), entities.DumpParams{})

		assert.NoError(t, err)
		assert.Equal(t, []bson.M{{"n": int32(1)}, {"n": int32(2)}}, dump.Data["big"])
		assert.Equal(t, []bson.M{{"n": int32(1)}}, dump.Data["small"])
		assert.Equal(t, []string{"big"}, dump.Truncated)
	})

	t.Run("should pass skip and cap limit at max page size", func(t *testing.T) {
		setup := setupDiagnosticsServiceTest(t, false)
		defer setup.ctrl.Finish()

		setup.mockDBRepo.EXPECT().ListCollectionNames(gomock.Any(), bson.D{}).Return([]string{"a"}, nil).Times(1)
		setup.mockDBRepo.EXPECT().FindAll(gomock.Any(), "a", findOptionsMatcher{skip: int64Ptr(5), limit: int64Ptr(4)}).
			Return(newTestCursor(t), nil).Times(1)

		_, err := setup.service.GetDatabaseDump(context.Background(), entities.DumpParams{Limit: 100, Skip: 5})

		assert.NoError(t, err)
	})

	t.Run("should return error when listing collections fails", func(t *testing.T) {
		setup := setupDiagnosticsServiceTest(t, false)
		defer setup.ctrl.Finish()

		setup.mockDBRepo.EXPECT().ListCollectionNames(gomock.Any(), bson.D{}).Return(nil, errors.New("not connected")).Times(1)

		_, err := setup.service.GetDatabaseDump(context.Background(), entities.DumpParams{})

		assert.Error(t, err)
	})

	t.Run("should return error when reading a collection fails", func(t *testing.T) {
		setup := setupDiagnosticsServiceTest(t, false)
		defer setup.ctrl.Finish()

		setup.mockDBRepo.EXPECT().ListCollectionNames(gomock.Any(), bson.D{}).Return([]string{"a"}, nil).Times(1)
		setup.mockDBRepo.EXPECT().FindAll(gomock.Any(), "a", gomock.Any()).Return(nil, errors.New("cursor killed")).Times(1)

		_, err := setup.service.GetDatabaseDump(context.Background(), entities.DumpParams{})

		assert.Error(t, err)
	})
}

func TestMongoDiagnosticsService_GetDatabaseDump__should_log_dump_only_when_enabled(t *testing.T) {
	for _, logDump := range []bool{true, false} {
		setup := setupDiagnosticsServiceTest(t, logDump)

		setup.mockDBRepo.EXPECT().ListCollectionNames(gomock.Any(), bson.D{}).Return([]string{}, nil).Times(1)

		_, err := setup.service.GetDatabaseDump(context.Background(), entities.DumpParams{})
		assert.NoError(t, err)

		logged := setup.logs.FilterMessage("dumping database contents to the client").Len()
		if logDump {
			assert.Equal(t, 1, logged)
		} else {
			assert.Equal(t, 0, logged)
		}
		setup.ctrl.Finish()
	}
}

func TestMongoDiagnosticsService_GetDatabaseDump__should_fetch_collections_concurrently(t *testing.T) {
	setup := setupDiagnosticsServiceTest(t, false)
	defer setup.ctrl.Finish()

	setup.mockDBRepo.EXPECT().ListCollectionNames(gomock.Any(), bson.D{}).Return([]string{"a", "b"}, nil).Times(1)

	// each fetch waits for the other to start, which only completes when both run at once
	started := make(chan struct{}, 2)
	waitForBoth := func(ctx context.Context, name string, _ ...*options.FindOptions) (*mongo.Cursor, error) {
		started <- struct{}{}
		deadline := time.Now().Add(5 * time.Second)
		for len(started) < 2 {
			if time.Now().After(deadline) {
				return nil, errors.New("collections were not fetched concurrently")
			}
			time.Sleep(time.Millisecond)
		}
		return newTestCursor(t, bson.M{"c": name}), nil
	}
	setup.mockDBRepo.EXPECT().FindAll(gomock.Any(), "a", gomock.Any()).DoAndReturn(waitForBoth).Times(1)
	setup.mockDBRepo.EXPECT().FindAll(gomock.Any(), "b", gomock.Any()).DoAndReturn(waitForBoth).Times(1)

	dump, err := setup.service.GetDatabaseDump(context.Background(), entities.DumpParams{})

	assert.NoError(t, err)
	assert.Equal(t, []bson.M{{"c": "a"}}, dump.Data["a"])
	assert.Equal(t, []bson.M{{"c": "b"}}, dump.Data["b"])
}

func Test_concurrency__should_be_at_least_one(t *testing.T) {
	service := &mongoDiagnosticsService{cfg: &config.AppConfig{}}
	assert.Equal(t, 1, service.concurrency())

	service.cfg.Diagnostics.DumpConcurrency = 8
	assert.Equal(t, 8, service.concurrency())
}

func Test_pageLimit(t *testing.T) {
	service := &mongoDiagnosticsService{
		cfg: &config.AppConfig{
			Diagnostics: config.DiagnosticsConfig{DumpPageSize: 100, DumpMaxPageSize: 1000},
		},
	}

	assert.Equal(t, int64(100), service.pageLimit(0))
	assert.Equal(t, int64(100), service.pageLimit(-1))
	assert.Equal(t, int64(50), service.pageLimit(50))
	assert.Equal(t, int64(1000), service.pageLimit(5000))
}
