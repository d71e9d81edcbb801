package galleryservice

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/sanitize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, img *domain.GalleryImage) error
	FindAll(ctx context.Context) ([]domain.GalleryImage, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

type UploadRequest struct {
	ImageURL string
	Caption  string
	Title    string
}

func (s *Service) List(ctx context.Context) ([]domain.GalleryImage, error) {
	images, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get gallery", zap.Error(err))
		return nil, err
	}
	return images, nil
}

// Upload registers an image that the client already stored elsewhere.
func (s *Service) Upload(ctx context.Context, uploader *auth.Identity, req UploadRequest) (*domain.GalleryImage, error) {
	if uploader == nil {
		return nil, domain.ErrUnauthenticated
	}
	imageURL := strings.TrimSpace(req.ImageURL)
	if !isHTTPURL(imageURL) {
		return nil, fmt.Errorf("%w: imageUrl must be an http(s) url", domain.ErrInvalidArgument)
	}

	img := &domain.GalleryImage{
		ID:         uuid.NewString(),
		ImageURL:   imageURL,
		Caption:    sanitize.Text(req.Caption),
		Title:      sanitize.Text(req.Title),
		UploadedBy: uploader.ID,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Save(ctx, img); err != nil {
		return nil, err
	}
	zap.L().Info("gallery image uploaded", zap.String("image_id", img.ID), zap.String("uploaded_by", uploader.ID))
	return img, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: imageId is required", domain.ErrInvalidArgument)
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("image %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
