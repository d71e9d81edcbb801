package causeservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/charity/internal/domain"
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

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		req           CreateRequest
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Missing title",
			req:           CreateRequest{Title: " <i></i> ", Goal: 1000},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Non positive goal",
			req:           CreateRequest{Title: "Iftar Program", Goal: 0},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name: "Store failure",
			req:  CreateRequest{Title: "Iftar Program", Goal: 1000},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
		{
			name: "Created",
			req:  CreateRequest{Title: "<b>Iftar</b> Program", Category: "food", Goal: 1000},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			cause, err := service.Create(context.Background(), tt.req)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				assert.Nil(t, cause)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, cause.ID)
			assert.Equal(t, "Iftar Program", cause.Title)
			assert.Equal(t, int64(0), cause.Raised)
			assert.Equal(t, 0, cause.Progress)
			assert.True(t, cause.Active)
		})
	}
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindAll(gomock.Any(), true).Return([]domain.Cause{{ID: "c1", Active: true}}, nil)
	causes, err := service.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, causes, 1)

	repo.EXPECT().FindAll(gomock.Any(), false).Return(nil, errors.New("db down"))
	_, err = service.List(context.Background(), false)
	assert.Error(t, err)
}
