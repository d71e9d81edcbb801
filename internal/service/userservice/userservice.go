package userservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Ensure(ctx context.Context, user *domain.User) (*domain.User, error)
	SetRole(ctx context.Context, id, role string) (bool, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// EnsureUser provisions a donor record for an identity seen for the first time.
// Existing records keep their role.
func (s *Service) EnsureUser(ctx context.Context, identity *auth.Identity) (*domain.User, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.repo.Ensure(ctx, &domain.User{
		ID:        identity.ID,
		Name:      identity.Name,
		Email:     identity.Email,
		Role:      domain.RoleDonor,
		CreatedAt: s.now(),
	})
	if err != nil {
		zap.L().Error("can't ensure user", zap.String("user_id", identity.ID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// RequireAdmin is the access gate for privileged operations.
func (s *Service) RequireAdmin(ctx context.Context, identity *auth.Identity) (*domain.User, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.repo.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		zap.L().Info("admin access denied", zap.String("user_id", identity.ID))
		return nil, fmt.Errorf("%w: admin role required", domain.ErrPermissionDenied)
	}
	return user, nil
}

func (s *Service) SetAdminRole(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: userId is required", domain.ErrInvalidArgument)
	}
	ok, err := s.repo.SetRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	zap.L().Info("admin role granted", zap.String("user_id", userID))
	return nil
}

func (s *Service) Profile(ctx context.Context, identity *auth.Identity) (*domain.User, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.repo.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", identity.ID, domain.ErrNotFound)
	}
	return user, nil
}
