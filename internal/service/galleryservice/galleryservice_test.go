package galleryservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestUpload(t *testing.T) {
	service, repo := NewMock(t)
	admin := &auth.Identity{ID: "admin-1"}

	tests := []struct {
		name          string
		uploader      *auth.Identity
		req           UploadRequest
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Anonymous caller",
			req:           UploadRequest{ImageURL: "https://cdn.example.com/a.jpg"},
			prepareMock:   func() {},
			expectedError: domain.ErrUnauthenticated,
		},
		{
			name:          "Missing url",
			uploader:      admin,
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Script url rejected",
			uploader:      admin,
			req:           UploadRequest{ImageURL: "javascript:alert(1)"},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:     "Store failure",
			uploader: admin,
			req:      UploadRequest{ImageURL: "https://cdn.example.com/a.jpg"},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
		{
			name:     "Uploaded",
			uploader: admin,
			req:      UploadRequest{ImageURL: " https://cdn.example.com/a.jpg ", Caption: "<b>Iftar</b> night", Title: "Ramadan"},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			img, err := service.Upload(context.Background(), tt.uploader, tt.req)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				assert.Nil(t, img)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, img.ID)
			assert.Equal(t, "https://cdn.example.com/a.jpg", img.ImageURL)
			assert.Equal(t, "Iftar night", img.Caption)
			assert.Equal(t, "admin-1", img.UploadedBy)
		})
	}
}

func TestDelete(t *testing.T) {
	service, repo := NewMock(t)

	assert.ErrorIs(t, service.Delete(context.Background(), ""), domain.ErrInvalidArgument)

	repo.EXPECT().Delete(gomock.Any(), "img-1").Return(true, nil)
	assert.NoError(t, service.Delete(context.Background(), "img-1"))

	repo.EXPECT().Delete(gomock.Any(), "img-9").Return(false, nil)
	assert.ErrorIs(t, service.Delete(context.Background(), "img-9"), domain.ErrNotFound)
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindAll(gomock.Any()).Return([]domain.GalleryImage{{ID: "img-1"}}, nil)
	images, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, images, 1)
}
