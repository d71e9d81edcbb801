package contactservice

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/pkg/sanitize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxMessageLength = 5000

type Repo interface {
	Save(ctx context.Context, m *domain.ContactMessage) error
	FindAll(ctx context.Context) ([]domain.ContactMessage, error)
	MarkHandled(ctx context.Context, id, response string, at time.Time) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

type SubmitRequest struct {
	Name    string
	Email   string
	Message string
}

func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.ContactMessage, error) {
	name := sanitize.Text(req.Name)
	message := sanitize.Text(req.Message)
	if name == "" || message == "" {
		return nil, fmt.Errorf("%w: name and message are required", domain.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return nil, fmt.Errorf("%w: message is longer than %d characters", domain.ErrInvalidArgument, maxMessageLength)
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return nil, fmt.Errorf("%w: email is invalid", domain.ErrInvalidArgument)
	}

	msg := &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     addr.Address,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, err
	}
	zap.L().Info("contact message received", zap.String("message_id", msg.ID))
	return msg, nil
}

func (s *Service) List(ctx context.Context) ([]domain.ContactMessage, error) {
	messages, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get contact messages", zap.Error(err))
		return nil, err
	}
	return messages, nil
}

// MarkHandled closes a message. An empty response keeps any earlier reply.
func (s *Service) MarkHandled(ctx context.Context, id, response string) error {
	ok, err := s.repo.MarkHandled(ctx, id, sanitize.Text(response), time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
