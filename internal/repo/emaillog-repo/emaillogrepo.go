package emaillogrepo

import (
	"context"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/pg"
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

func (r *Repository) Save(ctx context.Context, l *domain.EmailLog) error {
	query := `
		INSERT INTO email_logs (id, user_id, email, type, subscription_id, period, status, error, quote_used, amount, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query, l.ID, l.UserID, l.Email, l.Type, l.SubscriptionID, l.Period, l.Status, l.Error, l.QuoteUsed, l.Amount, l.SentAt)
	if err != nil {
		zap.L().Error("can't save email log", zap.Error(err))
		return err
	}
	return nil
}

// ExistsSent reports whether an email of the given type already went out
// successfully for the subscription and period.
func (r *Repository) ExistsSent(ctx context.Context, subscriptionID, emailType, period string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM email_logs
			WHERE subscription_id = $1 AND type = $2 AND period = $3 AND status = 'sent'
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, subscriptionID, emailType, period).Scan(&exists); err != nil {
		zap.L().Error("can't check email log", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindRecent(ctx context.Context, limit int) ([]domain.EmailLog, error) {
	query := `
		SELECT id, user_id, email, type, subscription_id, period, status, error, quote_used, amount, sent_at
		FROM email_logs
		ORDER BY sent_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get email logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	logs := make([]domain.EmailLog, 0)
	for rows.Next() {
		var l domain.EmailLog
		err := rows.Scan(&l.ID, &l.UserID, &l.Email, &l.Type, &l.SubscriptionID, &l.Period, &l.Status, &l.Error, &l.QuoteUsed, &l.Amount, &l.SentAt)
		if err != nil {
			zap.L().Error("can't scan email log row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate email log rows", zap.Error(err))
		return nil, err
	}
	return logs, nil
}
