package quoteservice

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/pkg/sanitize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FallbackEmpty is returned when the quote store has no records.
var FallbackEmpty = domain.Quote{
	Text:   "The believer's shade on the Day of Resurrection will be his charity.",
	Source: "Hadith - Tirmidhi",
	Type:   domain.QuoteTypeHadith,
}

// FallbackError is returned when the quote store cannot be read.
var FallbackError = domain.Quote{
	Text:   "And whatever you spend in good, it will be repaid to you in full, and you shall not be wronged.",
	Source: "Quran 2:272",
	Type:   domain.QuoteTypeQuran,
}

type Repo interface {
	FindAll(ctx context.Context) ([]domain.Quote, error)
	Save(ctx context.Context, q *domain.Quote) error
	Delete(ctx context.Context, id string) (bool, error)
	IncrementUsage(ctx context.Context, id string, at time.Time) error
}

type Service struct {
	repo Repo
	pick func(n int) int
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		pick: rand.IntN,
	}
}

// Random never fails. Quotes are re-read on every call and picked uniformly.
func (s *Service) Random(ctx context.Context) domain.Quote {
	quotes, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't read quotes, using fallback", zap.Error(err))
		return FallbackError
	}
	if len(quotes) == 0 {
		return FallbackEmpty
	}

	quote := quotes[s.pick(len(quotes))]
	if err := s.repo.IncrementUsage(ctx, quote.ID, time.Now()); err != nil {
		zap.L().Warn("can't track quote usage", zap.String("quote_id", quote.ID), zap.Error(err))
	}
	return quote
}

func (s *Service) List(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get quotes", zap.Error(err))
		return nil, err
	}
	return quotes, nil
}

type CreateRequest struct {
	Text   string
	Source string
	Type   string
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Quote, error) {
	text := sanitize.Text(req.Text)
	source := sanitize.Text(req.Source)
	if text == "" || source == "" {
		return nil, fmt.Errorf("%w: text and source are required", domain.ErrInvalidArgument)
	}
	if req.Type != domain.QuoteTypeQuran && req.Type != domain.QuoteTypeHadith {
		return nil, fmt.Errorf("%w: type must be %s or %s", domain.ErrInvalidArgument, domain.QuoteTypeQuran, domain.QuoteTypeHadith)
	}

	quote := &domain.Quote{
		ID:        uuid.NewString(),
		Text:      text,
		Source:    source,
		Type:      req.Type,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("quote %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
