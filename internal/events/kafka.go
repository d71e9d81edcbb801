package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GlebRadaev/charity/internal/metrics"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    TopicSubscriptionCreated,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish keys messages by subscription id so redeliveries land on one partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event SubscriptionCreated) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("can't encode event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SubscriptionID),
		Value: value,
	})
	if err != nil {
		zap.L().Error("failed to write event", zap.String("topic", TopicSubscriptionCreated), zap.Error(err))
		metrics.EventsPublishedTotal.WithLabelValues(TopicSubscriptionCreated, "error").Inc()
		return err
	}
	metrics.EventsPublishedTotal.WithLabelValues(TopicSubscriptionCreated, "ok").Inc()
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type KafkaConsumer struct {
	reader messageReader
}

func NewKafkaConsumer(brokers []string, groupID string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    TopicSubscriptionCreated,
			GroupID:  groupID,
			MaxBytes: 10e6,
		}),
	}
}

// Consume reads with group commits, so a message is acknowledged once read.
// Undecodable messages are logged and skipped.
func (c *KafkaConsumer) Consume(ctx context.Context, handler Handler) error {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("can't read event: %w", err)
		}

		var event SubscriptionCreated
		if err := json.Unmarshal(m.Value, &event); err != nil {
			zap.L().Warn("skipping malformed event", zap.Int64("offset", m.Offset), zap.Error(err))
			continue
		}
		if err := handler(ctx, event); err != nil {
			zap.L().Error("event handler failed",
				zap.String("subscription_id", event.SubscriptionID), zap.Error(err))
		}
	}
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
