package emaillogservice

import (
	"context"

	"github.com/GlebRadaev/charity/internal/domain"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

type Repo interface {
	FindRecent(ctx context.Context, limit int) ([]domain.EmailLog, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Recent returns the newest email logs. limit is clamped to [1, MaxLimit];
// zero or less means DefaultLimit.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.EmailLog, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	logs, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get email logs", zap.Error(err))
		return nil, err
	}
	return logs, nil
}
