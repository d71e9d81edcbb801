package subscriptions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/internal/service/subscriptionservice"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var caller = &auth.Identity{ID: "uid-1", Email: "amina@example.com", Name: "Amina"}

func NewMock(t *testing.T) (*SubscriptionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	return req.WithContext(auth.WithIdentity(req.Context(), caller))
}

func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedID   string
	}{
		{
			name: "Subscription created",
			body: `{"amount":100,"causeId":"cause-1"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), caller, subscriptionservice.CreateRequest{Amount: 100, CauseID: "cause-1"}).
					Return(&domain.Subscription{ID: "sub-1"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedID:   "sub-1",
		},
		{
			name:         "Malformed body",
			body:         `{"amount":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Amount below minimum",
			body: `{"amount":10}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), caller, subscriptionservice.CreateRequest{Amount: 10}).
					Return(nil, fmt.Errorf("%w: amount must be at least 50", domain.ErrInvalidArgument))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown cause",
			body: `{"amount":100,"causeId":"missing"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), caller, subscriptionservice.CreateRequest{Amount: 100, CauseID: "missing"}).
					Return(nil, fmt.Errorf("cause missing: %w", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rec := httptest.NewRecorder()
			handler.Create(rec, newRequest(http.MethodPost, "/api/subscriptions", tt.body))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedID != "" {
				var resp dto.CreateSubscriptionResponseDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedID, resp.SubscriptionID)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	start := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	service.EXPECT().List(gomock.Any(), caller).Return([]domain.Subscription{
		{ID: "sub-1", UserID: "uid-1", Amount: 100, CauseName: "General Fund", StartDate: start, Active: true},
	}, nil)

	rec := httptest.NewRecorder()
	handler.List(rec, newRequest(http.MethodGet, "/api/subscriptions", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.SubscriptionsResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Subscriptions, 1)
	assert.Equal(t, "sub-1", resp.Subscriptions[0].ID)
	assert.Equal(t, "2026-10-14T09:00:00Z", resp.Subscriptions[0].StartDate)
	assert.True(t, resp.Subscriptions[0].Active)
}

func TestListAllHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListAll(gomock.Any()).Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	handler.ListAll(rec, newRequest(http.MethodGet, "/api/admin/subscriptions", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "Cancelled by owner", err: nil, expectedCode: http.StatusOK},
		{name: "Not the owner", err: fmt.Errorf("%w: not the owner", domain.ErrPermissionDenied), expectedCode: http.StatusForbidden},
		{name: "Missing subscription", err: domain.ErrNotFound, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().Cancel(gomock.Any(), caller, "sub-1").Return(tt.err)

			rec := httptest.NewRecorder()
			handler.Cancel(rec, withID(newRequest(http.MethodPost, "/api/subscriptions/sub-1/cancel", ""), "sub-1"))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"success":true}`, rec.Body.String())
			}
		})
	}
}

func TestPauseAndResumeHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Pause(gomock.Any(), caller, "sub-1").Return(nil)
	service.EXPECT().Resume(gomock.Any(), caller, "sub-1").
		Return(fmt.Errorf("%w: subscription is cancelled", domain.ErrInvalidArgument))

	rec := httptest.NewRecorder()
	handler.Pause(rec, withID(newRequest(http.MethodPost, "/api/subscriptions/sub-1/pause", ""), "sub-1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.Resume(rec, withID(newRequest(http.MethodPost, "/api/subscriptions/sub-1/resume", ""), "sub-1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.CodeInvalidArgument)
}

func TestUpdateAmountHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().UpdateAmount(gomock.Any(), caller, "sub-1", int64(150)).Return(nil)

	rec := httptest.NewRecorder()
	handler.UpdateAmount(rec, withID(newRequest(http.MethodPatch, "/api/subscriptions/sub-1", `{"amount":150}`), "sub-1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.UpdateAmount(rec, withID(newRequest(http.MethodPatch, "/api/subscriptions/sub-1", `nope`), "sub-1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDonationsHandler(t *testing.T) {
	handler, service := NewMock(t)
	at := time.Date(2026, 10, 31, 9, 0, 0, 0, time.UTC)

	service.EXPECT().Donations(gomock.Any(), caller, "sub-1").
		Return([]domain.Donation{{ID: "don-1", Amount: 100, Type: domain.DonationTypeMonthly, Period: "2026-10", CreatedAt: at}}, nil)
	service.EXPECT().Donations(gomock.Any(), caller, "sub-2").
		Return(nil, fmt.Errorf("%w: not the subscription owner", domain.ErrPermissionDenied))

	rec := httptest.NewRecorder()
	handler.Donations(rec, withID(newRequest(http.MethodGet, "/api/subscriptions/sub-1/donations", ""), "sub-1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.DonationsResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Donations, 1)
	assert.Equal(t, "don-1", resp.Donations[0].ID)
	assert.Equal(t, int64(100), resp.Donations[0].Amount)

	rec = httptest.NewRecorder()
	handler.Donations(rec, withID(newRequest(http.MethodGet, "/api/subscriptions/sub-2/donations", ""), "sub-2"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
