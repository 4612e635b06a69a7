package users

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	mock_services "github.com/pawtel/pawtel_api/mocks/services"
	"github.com/pawtel/pawtel_api/services"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type usersTestSetup struct {
	ctrl            *gomock.Controller
	mockUserService *mock_services.MockUserService
	testServer      *gin.Engine
}

func setupUsersTest(t *testing.T) *usersTestSetup {
	ctrl := gomock.NewController(t)
	mockUserService := mock_services.NewMockUserService(ctrl)

	gin.SetMode(gin.TestMode)
	testServer := gin.New()
	NewRouter(zap.NewNop(), mockUserService).RegisterRoutes(testServer.Group("/users"))

	return &usersTestSetup{
		ctrl:            ctrl,
		mockUserService: mockUserService,
		testServer:      testServer,
	}
}

func (s *usersTestSetup) get(target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.testServer.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func Test_GetUsers(t *testing.T) {
	tests := []struct {
		name       string
		users      []bson.M
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "should return users",
			users:      []bson.M{{"email": "rex@pawtel.test"}},
			wantStatus: http.StatusOK,
			wantBody:   `{"users":[{"email":"rex@pawtel.test"}]}`,
		},
		{
			name:       "should return empty list",
			users:      []bson.M{},
			wantStatus: http.StatusOK,
			wantBody:   `{"users":[]}`,
		},
		{
			name:       "should return 500 when service fails",
			serviceErr: errors.New("service err"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":500,"error":"something went wrong"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupUsersTest(t)
			defer setup.ctrl.Finish()

			setup.mockUserService.EXPECT().GetUsers(gomock.Any()).Return(tt.users, tt.serviceErr).Times(1)

			w := setup.get("/users/")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func Test_GetUser(t *testing.T) {
	tests := []struct {
		name       string
		user       bson.M
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "should return user",
			user:       bson.M{"email": "rex@pawtel.test"},
			wantStatus: http.StatusOK,
			wantBody:   `{"user":{"email":"rex@pawtel.test"}}`,
		},
		{
			name:       "should return 400 for invalid id",
			serviceErr: services.ErrInvalidID,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":400,"error":"invalid user id provided"}`,
		},
		{
			name:       "should return 404 for unknown user",
			serviceErr: services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"status":404,"error":"user not found"}`,
		},
		{
			name:       "should return 500 when service fails",
			serviceErr: errors.New("service err"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":500,"error":"something went wrong"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupUsersTest(t)
			defer setup.ctrl.Finish()

			setup.mockUserService.EXPECT().GetUserWithID(gomock.Any(), "testid").
				Return(tt.user, tt.serviceErr).Times(1)

			w := setup.get("/users/testid")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
