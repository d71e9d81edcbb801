package contactrepo

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

func (r *Repository) Save(ctx context.Context, m *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, message, handled, response, created_at, handled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Message, m.Handled, m.Response, m.CreatedAt, m.HandledAt)
	if err != nil {
		zap.L().Error("can't save contact message", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, message, handled, response, created_at, handled_at
		FROM contact_messages
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get contact messages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	messages := make([]domain.ContactMessage, 0)
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Handled, &m.Response, &m.CreatedAt, &m.HandledAt); err != nil {
			zap.L().Error("can't scan contact message row", zap.Error(err))
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate contact message rows", zap.Error(err))
		return nil, err
	}
	return messages, nil
}

// MarkHandled keeps the previous response when the new one is empty.
func (r *Repository) MarkHandled(ctx context.Context, id, response string, at time.Time) (bool, error) {
	query := `
		UPDATE contact_messages
		SET handled = TRUE, handled_at = $2, response = COALESCE(NULLIF($3, ''), response)
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, at, response)
	if err != nil {
		zap.L().Error("can't mark contact message handled", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
