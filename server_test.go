package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/pawtel/pawtel_api/config"
	"github.com/pawtel/pawtel_api/entities"
	mock_services "github.com/pawtel/pawtel_api/mocks/services"
	"github.com/pawtel/pawtel_api/routers"
	"github.com/pawtel/pawtel_api/routers/api/bookings"
	"github.com/pawtel/pawtel_api/routers/api/diagnostics"
	"github.com/pawtel/pawtel_api/routers/api/users"
	"github.com/pawtel/pawtel_api/testutils"
	"github.com/pawtel/pawtel_api/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type serverTestSetup struct {
	ctrl                   *gomock.Controller
	mockDiagnosticsService *mock_services.MockDiagnosticsService
	server                 *gin.Engine
}

func setupServerTest(t *testing.T) *serverTestSetup {
	ctrl := gomock.NewController(t)
	mockDiagnosticsService := mock_services.NewMockDiagnosticsService(ctrl)
	logger := zap.NewNop()

	cfg := &config.AppConfig{
		Environment: "test",
		CORS: config.CORSConfig{
			AllowedOrigins:       config.NormaliseOrigins([]string{"http://localhost:3030/", "http://localhost:3030", "https://pawtel.netlify.app/"}),
			OptionsSuccessStatus: http.StatusOK,
		},
		Diagnostics: config.DiagnosticsConfig{
			DumpRateLimit: config.RateLimitConfig{RequestsPerMinute: 60, Burst: 10},
		},
	}

	mainRouter := routers.NewMainRouter(logger,
		diagnostics.NewRouter(logger, cfg, mockDiagnosticsService, utils.NewTimeProvider()),
		bookings.NewRouter(logger, mock_services.NewMockBookingService(ctrl)),
		users.NewRouter(logger, mock_services.NewMockUserService(ctrl)))

	return &serverTestSetup{
		ctrl:                   ctrl,
		mockDiagnosticsService: mockDiagnosticsService,
		server:                 NewServer(logger, cfg, mainRouter),
	}
}

func (s *serverTestSetup) do(method, target, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	s.server.ServeHTTP(w, req)
	return w
}

func Test_NewServer__should_answer_root_with_teapot(t *testing.T) {
	setup := setupServerTest(t)
	defer setup.ctrl.Finish()

	w := setup.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to Pawtel API!","attemtedPath":"/"}`, w.Body.String())
}

func Test_NewServer__should_answer_unknown_paths_with_404(t *testing.T) {
	setup := setupServerTest(t)
	defer setup.ctrl.Finish()

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		w := setup.do(method, "/unknown/path", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"No route with that path found!","attemptedPath":"/unknown/path"}`, w.Body.String())
	}
}

func Test_NewServer__should_not_serve_dump_when_disabled(t *testing.T) {
	setup := setupServerTest(t)
	defer setup.ctrl.Finish()

	w := setup.do(http.MethodGet, "/databaseDump", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No route with that path found!","attemptedPath":"/databaseDump"}`, w.Body.String())
}

func Test_NewServer__should_serve_health_with_security_headers(t *testing.T) {
	setup := setupServerTest(t)
	defer setup.ctrl.Finish()

	setup.mockDiagnosticsService.EXPECT().GetDatabaseHealth(gomock.Any()).Return(&entities.DatabaseHealth{
		ReadyState: 0,
		DBName:     "pawtel_test",
		DBModels:   []string{},
		DBHost:     "localhost",
		BootState:  "Listening-DBPending",
	}, nil).Times(1)

	w := setup.do(http.MethodGet, "/databaseHealth", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "default-src 'self'", w.Header().Get("Content-Security-Policy"))

	var health entities.DatabaseHealth
	err := testutils.UnmarshallResponse(w.Body, &health)
	assert.NoError(t, err)
	assert.Equal(t, 0, health.ReadyState)
	assert.Equal(t, "Listening-DBPending", health.BootState)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func Test_NewServer__should_enforce_cors_allow_list(t *testing.T) {
	setup := setupServerTest(t)
	defer setup.ctrl.Finish()

	w := setup.do(http.MethodGet, "/", "https://evil.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = setup.do(http.MethodGet, "/", "https://pawtel.netlify.app")
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "https://pawtel.netlify.app", w.Header().Get("Access-Control-Allow-Origin"))
}
