package causerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var causeColumns = []string{"id", "title", "description", "image_url", "category", "goal", "raised", "progress", "active", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_IncrementRaised(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	incrementSQL := regexp.QuoteMeta("SET raised = raised + $2, progress = CASE WHEN goal > 0 THEN ROUND((raised + $2) * 100.0 / goal)::int ELSE 0 END WHERE id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Cause
	}{
		{
			name: "Cause incremented",
			mockSetup: func() {
				rows := pgxmock.NewRows(causeColumns).
					AddRow("cause-1", "Water Well", "", "", "water", int64(1000), int64(300), 30, true, now)
				mock.ExpectQuery(incrementSQL).
					WithArgs("cause-1", int64(100)).
					WillReturnRows(rows)
			},
			result: &domain.Cause{ID: "cause-1", Title: "Water Well", Category: "water", Goal: 1000, Raised: 300, Progress: 30, Active: true, CreatedAt: now},
		},
		{
			name: "Missing cause is skipped",
			mockSetup: func() {
				mock.ExpectQuery(incrementSQL).
					WithArgs("cause-1", int64(100)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(incrementSQL).
					WithArgs("cause-1", int64(100)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.IncrementRaised(context.Background(), "cause-1", 100)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	cause := &domain.Cause{ID: "cause-1", Title: "Water Well", Goal: 1000, Active: true, CreatedAt: now}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO causes")).
		WithArgs("cause-1", "Water Well", "", "", "", int64(1000), int64(0), 0, true, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Save(context.Background(), cause))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO causes")).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Save(context.Background(), cause))
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(causeColumns).
		AddRow("cause-1", "Water Well", "", "", "water", int64(1000), int64(0), 0, true, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM causes WHERE active OR NOT $1")).
		WithArgs(true).
		WillReturnRows(rows)

	result, err := repo.FindAll(context.Background(), true)
	assert.NoError(t, err)
	assert.Len(t, result, 1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM causes WHERE id = $1")).
		WithArgs("cause-2").
		WillReturnError(pgx.ErrNoRows)
	cause, err := repo.FindByID(context.Background(), "cause-2")
	assert.NoError(t, err)
	assert.Nil(t, cause)
}
