package emaillogrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	subID := "sub-1"
	entry := &domain.EmailLog{
		ID: "log-1", UserID: "uid-1", Email: "a@example.com", Type: "monthly", SubscriptionID: &subID,
		Period: "2026-10", Status: "failed", Error: "smtp: 421", QuoteUsed: "q", Amount: 100, SentAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO email_logs")).
		WithArgs("log-1", "uid-1", "a@example.com", "monthly", &subID, "2026-10", "failed", "smtp: 421", "q", int64(100), now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Save(context.Background(), entry))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO email_logs")).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Save(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsSent(t *testing.T) {
	repo, mock := NewMock(t)
	existsSQL := regexp.QuoteMeta("WHERE subscription_id = $1 AND type = $2 AND period = $3 AND status = 'sent'")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		exists    bool
	}{
		{
			name: "Already sent",
			mockSetup: func() {
				mock.ExpectQuery(existsSQL).
					WithArgs("sub-1", "monthly", "2026-10").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			exists: true,
		},
		{
			name: "Not sent yet",
			mockSetup: func() {
				mock.ExpectQuery(existsSQL).
					WithArgs("sub-1", "monthly", "2026-10").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			exists: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(existsSQL).
					WithArgs("sub-1", "monthly", "2026-10").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			exists, err := repo.ExistsSent(context.Background(), "sub-1", "monthly", "2026-10")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.exists, exists)
		})
	}
}

func TestRepository_FindRecent(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	columns := []string{"id", "user_id", "email", "type", "subscription_id", "period", "status", "error", "quote_used", "amount", "sent_at"}

	rows := pgxmock.NewRows(columns).
		AddRow("log-1", "uid-1", "a@example.com", "welcome", nil, "2026-10", "sent", "", "q", int64(100), now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM email_logs ORDER BY sent_at DESC LIMIT $1")).
		WithArgs(50).
		WillReturnRows(rows)

	logs, err := repo.FindRecent(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Nil(t, logs[0].SubscriptionID)
	assert.Equal(t, "welcome", logs[0].Type)
}
