package events

import (
	"context"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
)

const TopicSubscriptionCreated = "subscriptions.created"

// SubscriptionCreated is emitted once per newly stored subscription.
type SubscriptionCreated struct {
	SubscriptionID string    `json:"subscriptionId"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	UserEmail      string    `json:"userEmail"`
	Amount         int64     `json:"amount"`
	CauseID        *string   `json:"causeId,omitempty"`
	CauseName      string    `json:"causeName"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewSubscriptionCreated(sub *domain.Subscription) SubscriptionCreated {
	return SubscriptionCreated{
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		UserName:       sub.UserName,
		UserEmail:      sub.UserEmail,
		Amount:         sub.Amount,
		CauseID:        sub.CauseID,
		CauseName:      sub.CauseName,
		CreatedAt:      sub.CreatedAt,
	}
}

type Handler func(ctx context.Context, event SubscriptionCreated) error

type Publisher interface {
	Publish(ctx context.Context, event SubscriptionCreated) error
}

// Consumer delivers events to a handler until ctx is cancelled.
type Consumer interface {
	Consume(ctx context.Context, handler Handler) error
}
