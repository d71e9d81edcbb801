package events

import (
	"context"
	"errors"

	"github.com/GlebRadaev/charity/internal/metrics"
	"go.uber.org/zap"
)

var ErrBusFull = errors.New("local event bus is full")

// LocalBus is an in-process queue used when no broker is configured. Events
// still in the buffer at shutdown are lost, and so are events published while
// the buffer is full.
type LocalBus struct {
	ch chan SubscriptionCreated
}

func NewLocalBus(size int) *LocalBus {
	return &LocalBus{ch: make(chan SubscriptionCreated, size)}
}

// Publish never waits for the consumer.
func (b *LocalBus) Publish(ctx context.Context, event SubscriptionCreated) error {
	if err := ctx.Err(); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(TopicSubscriptionCreated, "error").Inc()
		return err
	}
	select {
	case b.ch <- event:
		metrics.EventsPublishedTotal.WithLabelValues(TopicSubscriptionCreated, "ok").Inc()
		return nil
	default:
		metrics.EventsPublishedTotal.WithLabelValues(TopicSubscriptionCreated, "dropped").Inc()
		zap.L().Warn("local event bus full, dropping event", zap.String("subscription_id", event.SubscriptionID))
		return ErrBusFull
	}
}

func (b *LocalBus) Consume(ctx context.Context, handler Handler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-b.ch:
			if err := handler(ctx, event); err != nil {
				zap.L().Error("event handler failed",
					zap.String("subscription_id", event.SubscriptionID), zap.Error(err))
			}
		}
	}
}
