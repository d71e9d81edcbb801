package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/internal/service/contactservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ContactHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedID   string
	}{
		{
			name: "Message accepted",
			body: `{"name":"Yusuf","email":"yusuf@example.com","message":"How can I volunteer?"}`,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), contactservice.SubmitRequest{
					Name:    "Yusuf",
					Email:   "yusuf@example.com",
					Message: "How can I volunteer?",
				}).Return(&domain.ContactMessage{ID: "msg-1"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedID:   "msg-1",
		},
		{
			name: "Invalid email",
			body: `{"name":"Yusuf","email":"nope","message":"Hi"}`,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), contactservice.SubmitRequest{Name: "Yusuf", Email: "nope", Message: "Hi"}).
					Return(nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidArgument))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rec := httptest.NewRecorder()
			handler.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(tt.body)))

			require.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedID != "" {
				var resp dto.ContactResponseDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedID, resp.MessageID)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any()).Return([]domain.ContactMessage{{ID: "msg-1", Name: "Yusuf"}}, nil)

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/admin/contact", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ContactMessagesResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Messages, 1)
}

func TestMarkHandledHandler(t *testing.T) {
	handler, service := NewMock(t)

	withID := func(req *http.Request) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "msg-1")
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("With response", func(t *testing.T) {
		service.EXPECT().MarkHandled(gomock.Any(), "msg-1", "We replied by email").Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/contact/msg-1/handled", bytes.NewBufferString(`{"response":"We replied by email"}`))
		handler.MarkHandled(rec, withID(req))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Without body", func(t *testing.T) {
		service.EXPECT().MarkHandled(gomock.Any(), "msg-1", "").Return(domain.ErrNotFound)

		rec := httptest.NewRecorder()
		handler.MarkHandled(rec, withID(httptest.NewRequest(http.MethodPost, "/api/admin/contact/msg-1/handled", nil)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
