package subscriptionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const columns = `id, user_id, user_name, user_email, amount, cause_id, cause_name, start_date, active, created_at, updated_at, cancelled_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scan(row pgx.Row, s *domain.Subscription) error {
	return row.Scan(&s.ID, &s.UserID, &s.UserName, &s.UserEmail, &s.Amount, &s.CauseID, &s.CauseName,
		&s.StartDate, &s.Active, &s.CreatedAt, &s.UpdatedAt, &s.CancelledAt)
}

func (r *Repository) Save(ctx context.Context, s *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, s.ID, s.UserID, s.UserName, s.UserEmail, s.Amount, s.CauseID, s.CauseName,
			s.StartDate, s.Active, s.CreatedAt, s.UpdatedAt, s.CancelledAt)
		if err != nil {
			zap.L().Error("can't save subscription", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Subscription, error) {
	query := `SELECT ` + columns + ` FROM subscriptions WHERE id = $1`

	var s domain.Subscription
	err := scan(r.db.QueryRow(ctx, query, id), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find subscription", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.Subscription, error) {
	query := `SELECT ` + columns + ` FROM subscriptions WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Subscription, error) {
	query := `SELECT ` + columns + ` FROM subscriptions WHERE active = TRUE ORDER BY created_at ASC`
	return r.list(ctx, query)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Subscription, error) {
	query := `SELECT ` + columns + ` FROM subscriptions ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Subscription, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get subscriptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	subscriptions := make([]domain.Subscription, 0)
	for rows.Next() {
		var s domain.Subscription
		if err := scan(rows, &s); err != nil {
			zap.L().Error("can't scan subscription row", zap.Error(err))
			return nil, err
		}
		subscriptions = append(subscriptions, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate subscription rows", zap.Error(err))
		return nil, err
	}
	return subscriptions, nil
}

// Cancel deactivates the subscription and stamps the cancellation time.
func (r *Repository) Cancel(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE subscriptions
		SET active = FALSE, cancelled_at = $2, updated_at = $2
		WHERE id = $1
	`
	return r.exec(ctx, "can't cancel subscription", query, id, at)
}

func (r *Repository) SetActive(ctx context.Context, id string, active bool, at time.Time) (bool, error) {
	query := `
		UPDATE subscriptions
		SET active = $2, updated_at = $3
		WHERE id = $1
	`
	return r.exec(ctx, "can't update subscription state", query, id, active, at)
}

func (r *Repository) UpdateAmount(ctx context.Context, id string, amount int64, at time.Time) (bool, error) {
	query := `
		UPDATE subscriptions
		SET amount = $2, updated_at = $3
		WHERE id = $1
	`
	return r.exec(ctx, "can't update subscription amount", query, id, amount, at)
}

func (r *Repository) exec(ctx context.Context, msg, query string, args ...any) (bool, error) {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error(msg, zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
