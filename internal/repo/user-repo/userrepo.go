package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, email, phone, role, created_at
		FROM users
		WHERE id = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// Ensure inserts the user when absent and returns the stored row. Profile
// fields of an existing user are only filled in when they are still empty.
func (repo *Repository) Ensure(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, name, email, phone, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = CASE WHEN users.name = '' THEN EXCLUDED.name ELSE users.name END,
			email = CASE WHEN users.email = '' THEN EXCLUDED.email ELSE users.email END
		RETURNING id, name, email, phone, role, created_at
	`
	var stored domain.User
	err := repo.db.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.Phone, user.Role, user.CreatedAt).
		Scan(&stored.ID, &stored.Name, &stored.Email, &stored.Phone, &stored.Role, &stored.CreatedAt)
	if err != nil {
		zap.L().Error("can't ensure user", zap.Error(err))
		return nil, err
	}
	return &stored, nil
}

// SetRole reports false when no user has the given id.
func (repo *Repository) SetRole(ctx context.Context, id, role string) (bool, error) {
	tag, err := repo.db.Exec(ctx, "UPDATE users SET role = $1 WHERE id = $2", role, id)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
