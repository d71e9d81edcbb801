package galleryrepo

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

func (r *Repository) Save(ctx context.Context, img *domain.GalleryImage) error {
	query := `
		INSERT INTO gallery (id, image_url, caption, title, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, img.ID, img.ImageURL, img.Caption, img.Title, img.UploadedBy, img.CreatedAt)
	if err != nil {
		zap.L().Error("can't save gallery image", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.GalleryImage, error) {
	query := `
		SELECT id, image_url, caption, title, uploaded_by, created_at
		FROM gallery
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get gallery", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	images := make([]domain.GalleryImage, 0)
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(&img.ID, &img.ImageURL, &img.Caption, &img.Title, &img.UploadedBy, &img.CreatedAt); err != nil {
			zap.L().Error("can't scan gallery row", zap.Error(err))
			return nil, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate gallery rows", zap.Error(err))
		return nil, err
	}
	return images, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM gallery WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete gallery image", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
