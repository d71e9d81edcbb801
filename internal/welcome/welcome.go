package welcome

import (
	"context"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/events"
	"github.com/GlebRadaev/charity/internal/notify"
	"go.uber.org/zap"
)

type QuoteProvider interface {
	Random(ctx context.Context) domain.Quote
}

type Deliverer interface {
	AlreadySent(ctx context.Context, msg notify.Message) (bool, error)
	Deliver(ctx context.Context, msg notify.Message, quote domain.Quote) error
}

// Trigger sends the welcome email for each created subscription.
type Trigger struct {
	quotes   QuoteProvider
	notifier Deliverer
}

func New(quotes QuoteProvider, notifier Deliverer) *Trigger {
	return &Trigger{
		quotes:   quotes,
		notifier: notifier,
	}
}

// Handle always returns nil. Delivery failures are already recorded as failed
// email logs by the notifier and are only logged here. A redelivered event
// whose welcome email was sent already is ignored.
func (t *Trigger) Handle(ctx context.Context, event events.SubscriptionCreated) error {
	msg := notify.Message{
		Type:           domain.EmailTypeWelcome,
		UserID:         event.UserID,
		Name:           event.UserName,
		Email:          event.UserEmail,
		SubscriptionID: event.SubscriptionID,
		Period:         domain.Period(event.CreatedAt),
		Amount:         event.Amount,
		CauseName:      event.CauseName,
	}
	sent, err := t.notifier.AlreadySent(ctx, msg)
	if err != nil {
		zap.L().Warn("can't check welcome email log", zap.String("subscription_id", event.SubscriptionID), zap.Error(err))
	}
	if sent {
		zap.L().Info("welcome email already sent", zap.String("subscription_id", event.SubscriptionID))
		return nil
	}
	if err := t.notifier.Deliver(ctx, msg, t.quotes.Random(ctx)); err != nil {
		zap.L().Warn("welcome email failed", zap.String("subscription_id", event.SubscriptionID), zap.Error(err))
		return nil
	}
	zap.L().Info("welcome email sent", zap.String("subscription_id", event.SubscriptionID))
	return nil
}
