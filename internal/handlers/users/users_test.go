package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var caller = &auth.Identity{ID: "uid-1", Email: "amina@example.com", Name: "Amina"}

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authenticated(req *http.Request) *http.Request {
	return req.WithContext(auth.WithIdentity(req.Context(), caller))
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestProvision(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Known or new user passes", func(t *testing.T) {
		service.EXPECT().EnsureUser(gomock.Any(), caller).Return(&domain.User{ID: "uid-1", Role: domain.RoleDonor}, nil)

		called := false
		rec := httptest.NewRecorder()
		handler.Provision(okHandler(&called)).ServeHTTP(rec, authenticated(httptest.NewRequest(http.MethodGet, "/api/me", nil)))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Store failure stops the request", func(t *testing.T) {
		service.EXPECT().EnsureUser(gomock.Any(), caller).Return(nil, assert.AnError)

		called := false
		rec := httptest.NewRecorder()
		handler.Provision(okHandler(&called)).ServeHTTP(rec, authenticated(httptest.NewRequest(http.MethodGet, "/api/me", nil)))

		assert.False(t, called)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		err          error
		expectedCode int
		passes       bool
	}{
		{name: "Admin passes", expectedCode: http.StatusOK, passes: true},
		{name: "Donor is rejected", err: fmt.Errorf("%w: admin role required", domain.ErrPermissionDenied), expectedCode: http.StatusForbidden},
		{name: "Anonymous is rejected", err: domain.ErrUnauthenticated, expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err != nil {
				service.EXPECT().RequireAdmin(gomock.Any(), caller).Return(nil, tt.err)
			} else {
				service.EXPECT().RequireAdmin(gomock.Any(), caller).Return(&domain.User{ID: "uid-1", Role: domain.RoleAdmin}, nil)
			}

			called := false
			rec := httptest.NewRecorder()
			handler.AdminOnly(okHandler(&called)).ServeHTTP(rec, authenticated(httptest.NewRequest(http.MethodGet, "/api/admin/donations", nil)))

			assert.Equal(t, tt.passes, called)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Profile(gomock.Any(), caller).Return(&domain.User{
		ID:        "uid-1",
		Name:      "Amina",
		Email:     "amina@example.com",
		Role:      domain.RoleDonor,
		CreatedAt: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC),
	}, nil)

	rec := httptest.NewRecorder()
	handler.Me(rec, authenticated(httptest.NewRequest(http.MethodGet, "/api/me", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.UserDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "uid-1", resp.ID)
	assert.Equal(t, domain.RoleDonor, resp.Role)
	assert.Equal(t, "2026-10-01T08:00:00Z", resp.CreatedAt)
}

func TestSetRoleHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Role granted",
			body: `{"userId":"uid-2"}`,
			prepareMock: func() {
				service.EXPECT().SetAdminRole(gomock.Any(), "uid-2").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown user",
			body: `{"userId":"ghost"}`,
			prepareMock: func() {
				service.EXPECT().SetAdminRole(gomock.Any(), "ghost").Return(fmt.Errorf("user ghost: %w", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rec := httptest.NewRecorder()
			handler.SetRole(rec, authenticated(httptest.NewRequest(http.MethodPost, "/api/admin/users/role", bytes.NewBufferString(tt.body))))

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
