package donationservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/pg"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Insert(ctx context.Context, d *domain.Donation) (bool, error)
	FindByUserID(ctx context.Context, userID, period string) ([]domain.Donation, error)
	FindBySubscriptionID(ctx context.Context, subscriptionID string) ([]domain.Donation, error)
	FindAll(ctx context.Context) ([]domain.Donation, error)
}

type CauseRepo interface {
	IncrementRaised(ctx context.Context, id string, amount int64) (*domain.Cause, error)
}

type Service struct {
	repo      Repo
	causes    CauseRepo
	txManager pg.TXManager
	loc       *time.Location
}

func New(repo Repo, causes CauseRepo, txManager pg.TXManager, loc *time.Location) *Service {
	return &Service{
		repo:      repo,
		causes:    causes,
		txManager: txManager,
		loc:       loc,
	}
}

// Record appends d to the ledger and attributes its amount to the cause in
// the same transaction. It reports false when the idempotency key was already
// used, in which case the cause is left untouched.
func (s *Service) Record(ctx context.Context, d *domain.Donation) (bool, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	var inserted bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.Insert(ctx, d)
		if err != nil {
			return err
		}
		inserted = ok
		if !ok || d.CauseID == nil {
			return nil
		}

		cause, err := s.causes.IncrementRaised(ctx, *d.CauseID, d.Amount)
		if err != nil {
			return err
		}
		if cause != nil {
			zap.L().Debug("cause raised updated",
				zap.String("cause_id", cause.ID), zap.Int64("raised", cause.Raised), zap.Int("progress", cause.Progress))
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't record donation", zap.String("donation_id", d.ID), zap.Error(err))
		return false, err
	}
	return inserted, nil
}

// Mine lists the caller's donations. month is optional and filters by YYYY-MM.
func (s *Service) Mine(ctx context.Context, identity *auth.Identity, month string) ([]domain.Donation, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	if month != "" {
		if _, err := domain.ParsePeriod(month, s.loc); err != nil {
			return nil, err
		}
	}
	donations, err := s.repo.FindByUserID(ctx, identity.ID, month)
	if err != nil {
		zap.L().Error("failed to get donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}

func (s *Service) All(ctx context.Context) ([]domain.Donation, error) {
	donations, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}

// BySubscription lists the donations charged to one subscription. Ownership is
// checked by the caller.
func (s *Service) BySubscription(ctx context.Context, subscriptionID string) ([]domain.Donation, error) {
	donations, err := s.repo.FindBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		zap.L().Error("failed to get subscription donations", zap.String("subscription_id", subscriptionID), zap.Error(err))
		return nil, err
	}
	return donations, nil
}
