package subscriptionservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/events"
	"github.com/GlebRadaev/charity/internal/pg"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/sanitize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, s *domain.Subscription) error
	FindByID(ctx context.Context, id string) (*domain.Subscription, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Subscription, error)
	FindAll(ctx context.Context) ([]domain.Subscription, error)
	Cancel(ctx context.Context, id string, at time.Time) (bool, error)
	SetActive(ctx context.Context, id string, active bool, at time.Time) (bool, error)
	UpdateAmount(ctx context.Context, id string, amount int64, at time.Time) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type CauseRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Cause, error)
}

type Ledger interface {
	Record(ctx context.Context, d *domain.Donation) (bool, error)
	BySubscription(ctx context.Context, subscriptionID string) ([]domain.Donation, error)
}

// publishTimeout caps how long Create waits on the event bus once the
// subscription is committed.
const publishTimeout = 2 * time.Second

type Options struct {
	MinAmount int64
	Location  *time.Location
}

type Service struct {
	repo      Repo
	users     UserRepo
	causes    CauseRepo
	donations Ledger
	publisher events.Publisher
	txManager pg.TXManager
	opts      Options
	now       func() time.Time
}

func New(repo Repo, users UserRepo, causes CauseRepo, donations Ledger,
	publisher events.Publisher, txManager pg.TXManager, opts Options,
) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Service{
		repo:      repo,
		users:     users,
		causes:    causes,
		donations: donations,
		publisher: publisher,
		txManager: txManager,
		opts:      opts,
		now:       time.Now,
	}
}

type CreateRequest struct {
	Amount    int64
	CauseID   string
	CauseName string
}

// Create stores the subscription together with its first monthly donation,
// then announces it. The donation uses the creation month's idempotency key,
// so the sweep closing that month does not charge again.
func (s *Service) Create(ctx context.Context, identity *auth.Identity, req CreateRequest) (*domain.Subscription, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	if req.Amount < s.opts.MinAmount {
		return nil, fmt.Errorf("%w: amount must be at least %d", domain.ErrInvalidArgument, s.opts.MinAmount)
	}

	user, err := s.users.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", identity.ID, domain.ErrNotFound)
	}

	var causeID *string
	causeName := sanitize.Text(req.CauseName)
	if id := strings.TrimSpace(req.CauseID); id != "" {
		cause, err := s.causes.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if cause == nil {
			return nil, fmt.Errorf("cause %s: %w", id, domain.ErrNotFound)
		}
		causeID = &cause.ID
		if causeName == "" {
			causeName = cause.Title
		}
	}
	if causeName == "" {
		causeName = domain.DefaultCauseName
	}

	now := s.now().In(s.opts.Location)
	sub := &domain.Subscription{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  firstNonEmpty(user.Name, identity.Name),
		UserEmail: firstNonEmpty(user.Email, identity.Email),
		Amount:    req.Amount,
		CauseID:   causeID,
		CauseName: causeName,
		StartDate: now,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Save(ctx, sub); err != nil {
			return err
		}
		donation := domain.MonthlyDonation(uuid.NewString(), sub, domain.Period(now), now)
		_, err := s.donations.Record(ctx, donation)
		return err
	})
	if err != nil {
		zap.L().Error("can't create subscription", zap.String("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	s.publish(ctx, sub)

	zap.L().Info("subscription created", zap.String("subscription_id", sub.ID), zap.Int64("amount", sub.Amount))
	return sub, nil
}

// publish is best effort. The request being cancelled after commit must not
// lose the event, so it runs on a detached context with its own deadline.
func (s *Service) publish(ctx context.Context, sub *domain.Subscription) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(ctx, events.NewSubscriptionCreated(sub)); err != nil {
		zap.L().Error("can't publish subscription created", zap.String("subscription_id", sub.ID), zap.Error(err))
	}
}

func (s *Service) List(ctx context.Context, identity *auth.Identity) ([]domain.Subscription, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	subs, err := s.repo.FindByUserID(ctx, identity.ID)
	if err != nil {
		zap.L().Error("failed to get subscriptions", zap.Error(err))
		return nil, err
	}
	return subs, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Subscription, error) {
	subs, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get subscriptions", zap.Error(err))
		return nil, err
	}
	return subs, nil
}

func (s *Service) Cancel(ctx context.Context, identity *auth.Identity, id string) error {
	if _, err := s.owned(ctx, identity, id); err != nil {
		return err
	}
	return s.apply(s.repo.Cancel(ctx, id, s.now()))
}

func (s *Service) Pause(ctx context.Context, identity *auth.Identity, id string) error {
	if _, err := s.owned(ctx, identity, id); err != nil {
		return err
	}
	return s.apply(s.repo.SetActive(ctx, id, false, s.now()))
}

// Resume reactivates a paused subscription. Cancelled subscriptions stay cancelled.
func (s *Service) Resume(ctx context.Context, identity *auth.Identity, id string) error {
	sub, err := s.owned(ctx, identity, id)
	if err != nil {
		return err
	}
	if sub.CancelledAt != nil {
		return fmt.Errorf("%w: subscription is cancelled", domain.ErrInvalidArgument)
	}
	return s.apply(s.repo.SetActive(ctx, id, true, s.now()))
}

// UpdateAmount changes the monthly amount. The creation minimum applies here too.
func (s *Service) UpdateAmount(ctx context.Context, identity *auth.Identity, id string, amount int64) error {
	if amount < s.opts.MinAmount {
		return fmt.Errorf("%w: amount must be at least %d", domain.ErrInvalidArgument, s.opts.MinAmount)
	}
	if _, err := s.owned(ctx, identity, id); err != nil {
		return err
	}
	return s.apply(s.repo.UpdateAmount(ctx, id, amount, s.now()))
}

// Donations is the charge history of one of the caller's subscriptions.
func (s *Service) Donations(ctx context.Context, identity *auth.Identity, id string) ([]domain.Donation, error) {
	if _, err := s.owned(ctx, identity, id); err != nil {
		return nil, err
	}
	return s.donations.BySubscription(ctx, id)
}

func (s *Service) owned(ctx context.Context, identity *auth.Identity, id string) (*domain.Subscription, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: subscriptionId is required", domain.ErrInvalidArgument)
	}
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("subscription %s: %w", id, domain.ErrNotFound)
	}
	if sub.UserID != identity.ID {
		zap.L().Info("subscription owner mismatch", zap.String("subscription_id", id), zap.String("user_id", identity.ID))
		return nil, fmt.Errorf("%w: not the subscription owner", domain.ErrPermissionDenied)
	}
	return sub, nil
}

func (s *Service) apply(ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
