package userrepo

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

var userColumns = []string{"id", "name", "email", "phone", "role", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found",
			id:   "uid-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow("uid-1", "Amina", "amina@example.com", "", "donor", now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, phone, role, created_at FROM users WHERE id = $1")).
					WithArgs("uid-1").
					WillReturnRows(rows)
			},
			result: &domain.User{ID: "uid-1", Name: "Amina", Email: "amina@example.com", Role: "donor", CreatedAt: now},
		},
		{
			name: "User not found",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, phone, role, created_at FROM users WHERE id = $1")).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   "uid-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, phone, role, created_at FROM users WHERE id = $1")).
					WithArgs("uid-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
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

func TestRepository_Ensure(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	user := &domain.User{ID: "uid-1", Name: "Amina", Email: "amina@example.com", Role: "donor", CreatedAt: now}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Existing admin keeps role",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow("uid-1", "Amina", "amina@example.com", "", "admin", now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (id, name, email, phone, role, created_at)")).
					WithArgs("uid-1", "Amina", "amina@example.com", "", "donor", now).
					WillReturnRows(rows)
			},
			result: &domain.User{ID: "uid-1", Name: "Amina", Email: "amina@example.com", Role: "admin", CreatedAt: now.Add(-time.Hour)},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("uid-1", "Amina", "amina@example.com", "", "donor", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Ensure(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SetRole(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Role updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role = $1 WHERE id = $2")).
					WithArgs("admin", "uid-2").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			found: true,
		},
		{
			name: "Unknown user",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role = $1 WHERE id = $2")).
					WithArgs("admin", "uid-2").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			found: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role = $1 WHERE id = $2")).
					WithArgs("admin", "uid-2").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			found, err := repo.SetRole(context.Background(), "uid-2", "admin")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.found, found)
		})
	}
}
