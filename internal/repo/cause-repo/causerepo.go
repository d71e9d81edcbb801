package causerepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const columns = `id, title, description, image_url, category, goal, raised, progress, active, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row, c *domain.Cause) error {
	return row.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.Category, &c.Goal, &c.Raised, &c.Progress, &c.Active, &c.CreatedAt)
}

func (r *Repository) Save(ctx context.Context, c *domain.Cause) error {
	query := `
		INSERT INTO causes (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.Title, c.Description, c.ImageURL, c.Category, c.Goal, c.Raised, c.Progress, c.Active, c.CreatedAt)
	if err != nil {
		zap.L().Error("can't save cause", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Cause, error) {
	var c domain.Cause
	err := scan(r.db.QueryRow(ctx, `SELECT `+columns+` FROM causes WHERE id = $1`, id), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find cause", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindAll(ctx context.Context, activeOnly bool) ([]domain.Cause, error) {
	query := `
		SELECT ` + columns + `
		FROM causes
		WHERE active OR NOT $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		zap.L().Error("can't get causes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	causes := make([]domain.Cause, 0)
	for rows.Next() {
		var c domain.Cause
		if err := scan(rows, &c); err != nil {
			zap.L().Error("can't scan cause row", zap.Error(err))
			return nil, err
		}
		causes = append(causes, c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate cause rows", zap.Error(err))
		return nil, err
	}
	return causes, nil
}

// IncrementRaised adds amount to the cause and recomputes progress in a
// single statement. A missing cause yields nil without error.
func (r *Repository) IncrementRaised(ctx context.Context, id string, amount int64) (*domain.Cause, error) {
	query := `
		UPDATE causes
		SET raised = raised + $2,
			progress = CASE WHEN goal > 0 THEN ROUND((raised + $2) * 100.0 / goal)::int ELSE 0 END
		WHERE id = $1
		RETURNING ` + columns

	var c domain.Cause
	err := scan(r.db.QueryRow(ctx, query, id, amount), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		zap.L().Warn("cause not found, skipping increment", zap.String("cause_id", id))
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't increment cause", zap.Error(err))
		return nil, err
	}
	return &c, nil
}
