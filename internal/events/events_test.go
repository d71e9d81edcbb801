package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscriptionCreated(t *testing.T) {
	causeID := "cause-1"
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	event := NewSubscriptionCreated(&domain.Subscription{
		ID: "sub-1", UserID: "uid-1", UserName: "Amina", UserEmail: "amina@example.com",
		Amount: 100, CauseID: &causeID, CauseName: "Iftar Program", CreatedAt: at,
	})

	assert.Equal(t, SubscriptionCreated{
		SubscriptionID: "sub-1", UserID: "uid-1", UserName: "Amina", UserEmail: "amina@example.com",
		Amount: 100, CauseID: &causeID, CauseName: "Iftar Program", CreatedAt: at,
	}, event)
}

func TestLocalBus(t *testing.T) {
	bus := NewLocalBus(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan SubscriptionCreated, 2)
	done := make(chan error, 1)
	go func() {
		done <- bus.Consume(ctx, func(_ context.Context, event SubscriptionCreated) error {
			received <- event
			if event.SubscriptionID == "sub-1" {
				return errors.New("handler failure does not stop the consumer")
			}
			return nil
		})
	}()

	require.NoError(t, bus.Publish(ctx, SubscriptionCreated{SubscriptionID: "sub-1"}))
	require.NoError(t, bus.Publish(ctx, SubscriptionCreated{SubscriptionID: "sub-2"}))

	assert.Equal(t, "sub-1", (<-received).SubscriptionID)
	assert.Equal(t, "sub-2", (<-received).SubscriptionID)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
}

func TestLocalBus_PublishHonoursContext(t *testing.T) {
	bus := NewLocalBus(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := bus.Publish(ctx, SubscriptionCreated{SubscriptionID: "sub-1"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalBus_PublishDoesNotWaitWhenFull(t *testing.T) {
	bus := NewLocalBus(1)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, bus.Publish(ctx, SubscriptionCreated{SubscriptionID: "sub-1"}))

	start := time.Now()
	err := bus.Publish(ctx, SubscriptionCreated{SubscriptionID: "sub-2"})
	assert.ErrorIs(t, err, ErrBusFull)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

type fakeReader struct {
	messages []kafka.Message
	err      error
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		if r.err != nil {
			return kafka.Message{}, r.err
		}
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) Close() error { return nil }

func TestKafkaPublisher(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &KafkaPublisher{writer: writer}

	require.NoError(t, publisher.Publish(context.Background(), SubscriptionCreated{SubscriptionID: "sub-1", Amount: 100}))
	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("sub-1"), writer.messages[0].Key)

	var decoded SubscriptionCreated
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, int64(100), decoded.Amount)

	writer.err = errors.New("broker unavailable")
	assert.EqualError(t, publisher.Publish(context.Background(), SubscriptionCreated{SubscriptionID: "sub-2"}), "broker unavailable")
}

func TestKafkaConsumer(t *testing.T) {
	valid, err := json.Marshal(SubscriptionCreated{SubscriptionID: "sub-1", Amount: 100})
	require.NoError(t, err)

	reader := &fakeReader{messages: []kafka.Message{
		{Offset: 1, Value: []byte("{not json")},
		{Offset: 2, Value: valid},
	}}
	consumer := &KafkaConsumer{reader: reader}

	ctx, cancel := context.WithCancel(context.Background())
	var got []SubscriptionCreated
	err = consumer.Consume(ctx, func(_ context.Context, event SubscriptionCreated) error {
		got = append(got, event)
		cancel()
		return nil
	})

	assert.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "sub-1", got[0].SubscriptionID)
}

func TestKafkaConsumer_ReadError(t *testing.T) {
	consumer := &KafkaConsumer{reader: &fakeReader{err: errors.New("connection reset")}}

	err := consumer.Consume(context.Background(), func(context.Context, SubscriptionCreated) error { return nil })

	assert.ErrorContains(t, err, "connection reset")
}
