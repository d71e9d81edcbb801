package donationrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const columns = `id, user_id, user_name, user_email, amount, cause_id, cause_name, type, subscription_id, status, period, idempotency_key, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Insert appends a donation to the ledger. It reports false, without error,
// when a donation with the same idempotency key was already recorded.
func (r *Repository) Insert(ctx context.Context, d *domain.Donation) (bool, error) {
	query := `
		INSERT INTO donations (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (idempotency_key) DO NOTHING
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query, d.ID, d.UserID, d.UserName, d.UserEmail, d.Amount, d.CauseID, d.CauseName,
		d.Type, d.SubscriptionID, d.Status, d.Period, d.IdempotencyKey, d.CreatedAt).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		zap.L().Info("donation already recorded", zap.Stringp("idempotency_key", d.IdempotencyKey))
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't save donation", zap.Error(err))
		return false, err
	}
	return true, nil
}

// FindByUserID lists a donor's donations, newest first. An empty period
// returns every period.
func (r *Repository) FindByUserID(ctx context.Context, userID, period string) ([]domain.Donation, error) {
	query := `
		SELECT ` + columns + `
		FROM donations
		WHERE user_id = $1 AND ($2::text = '' OR period = $2::text)
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID, period)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Donation, error) {
	query := `SELECT ` + columns + ` FROM donations ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *Repository) FindBySubscriptionID(ctx context.Context, subscriptionID string) ([]domain.Donation, error) {
	query := `SELECT ` + columns + ` FROM donations WHERE subscription_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, subscriptionID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Donation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	donations := make([]domain.Donation, 0)
	for rows.Next() {
		var d domain.Donation
		err := rows.Scan(&d.ID, &d.UserID, &d.UserName, &d.UserEmail, &d.Amount, &d.CauseID, &d.CauseName,
			&d.Type, &d.SubscriptionID, &d.Status, &d.Period, &d.IdempotencyKey, &d.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate donation rows", zap.Error(err))
		return nil, err
	}
	return donations, nil
}
