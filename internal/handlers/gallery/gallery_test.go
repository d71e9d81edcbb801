package gallery

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
	"github.com/GlebRadaev/charity/internal/service/galleryservice"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*GalleryHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any()).Return([]domain.GalleryImage{
		{ID: "img-1", ImageURL: "https://cdn.example.com/a.jpg", Title: "Iftar"},
	}, nil)

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/gallery", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.GalleryResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Images, 1)
	assert.Equal(t, "https://cdn.example.com/a.jpg", resp.Images[0].ImageURL)
}

func TestUploadHandler(t *testing.T) {
	handler, service := NewMock(t)
	admin := &auth.Identity{ID: "admin-1"}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Image stored",
			body: `{"imageUrl":"https://cdn.example.com/a.jpg","caption":"Night","title":"Iftar"}`,
			prepareMock: func() {
				service.EXPECT().Upload(gomock.Any(), admin, galleryservice.UploadRequest{
					ImageURL: "https://cdn.example.com/a.jpg",
					Caption:  "Night",
					Title:    "Iftar",
				}).Return(&domain.GalleryImage{ID: "img-1"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Rejected URL",
			body: `{"imageUrl":"ftp://example.com/a.jpg"}`,
			prepareMock: func() {
				service.EXPECT().Upload(gomock.Any(), admin, galleryservice.UploadRequest{ImageURL: "ftp://example.com/a.jpg"}).
					Return(nil, fmt.Errorf("%w: image url must be http or https", domain.ErrInvalidArgument))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", bytes.NewBufferString(tt.body))
			req = req.WithContext(auth.WithIdentity(req.Context(), admin))
			rec := httptest.NewRecorder()
			handler.Upload(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Delete(gomock.Any(), "img-1").Return(nil)
	service.EXPECT().Delete(gomock.Any(), "img-2").Return(domain.ErrNotFound)

	for id, code := range map[string]int{"img-1": http.StatusOK, "img-2": http.StatusNotFound} {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/gallery/"+id, nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rec := httptest.NewRecorder()
		handler.Delete(rec, req)
		assert.Equal(t, code, rec.Code, id)
	}
}
