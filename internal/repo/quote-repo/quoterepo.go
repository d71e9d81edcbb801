package quoterepo

import (
	"context"
	"time"

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

func (r *Repository) FindAll(ctx context.Context) ([]domain.Quote, error) {
	query := `
		SELECT id, text, source, type, times_used, last_used, created_at
		FROM quotes
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get quotes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	quotes := make([]domain.Quote, 0)
	for rows.Next() {
		var q domain.Quote
		if err := rows.Scan(&q.ID, &q.Text, &q.Source, &q.Type, &q.TimesUsed, &q.LastUsed, &q.CreatedAt); err != nil {
			zap.L().Error("can't scan quote row", zap.Error(err))
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate quote rows", zap.Error(err))
		return nil, err
	}
	return quotes, nil
}

func (r *Repository) Save(ctx context.Context, q *domain.Quote) error {
	query := `
		INSERT INTO quotes (id, text, source, type, times_used, last_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, q.ID, q.Text, q.Source, q.Type, q.TimesUsed, q.LastUsed, q.CreatedAt)
	if err != nil {
		zap.L().Error("can't save quote", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM quotes WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete quote", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) IncrementUsage(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE quotes
		SET times_used = times_used + 1, last_used = $2
		WHERE id = $1
	`
	if _, err := r.db.Exec(ctx, query, id, at); err != nil {
		zap.L().Error("can't increment quote usage", zap.Error(err))
		return err
	}
	return nil
}
