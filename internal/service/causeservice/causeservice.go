package causeservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/pkg/sanitize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, c *domain.Cause) error
	FindAll(ctx context.Context, activeOnly bool) ([]domain.Cause, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

type CreateRequest struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	Goal        int64
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]domain.Cause, error) {
	causes, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		zap.L().Error("failed to get causes", zap.Error(err))
		return nil, err
	}
	return causes, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Cause, error) {
	title := sanitize.Text(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidArgument)
	}
	if req.Goal <= 0 {
		return nil, fmt.Errorf("%w: goal must be positive", domain.ErrInvalidArgument)
	}

	cause := &domain.Cause{
		ID:          uuid.NewString(),
		Title:       title,
		Description: sanitize.Text(req.Description),
		ImageURL:    req.ImageURL,
		Category:    sanitize.Text(req.Category),
		Goal:        req.Goal,
		Raised:      0,
		Progress:    domain.Progress(0, req.Goal),
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Save(ctx, cause); err != nil {
		return nil, err
	}
	return cause, nil
}
