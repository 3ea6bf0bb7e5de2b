package producer_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-leave/internal/messaging/kafka"
	"go-leave/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePublishOutbox struct {
	pending     []kafka.OutboxEvent
	listErr     error
	sentIDs     []string
	failed      map[string]string
	markSentErr error
}

func (f *fakePublishOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakePublishOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error { return nil }

func (f *fakePublishOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit < len(f.pending) {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakePublishOutbox) MarkSent(ctx context.Context, id string) error {
	if f.markSentErr != nil {
		return f.markSentErr
	}
	f.sentIDs = append(f.sentIDs, id)
	return nil
}

func (f *fakePublishOutbox) MarkFailed(ctx context.Context, id string, reason string) error {
	if f.failed == nil {
		f.failed = make(map[string]string)
	}
	f.failed[id] = reason
	return nil
}

type fakeMessageWriter struct {
	written  []kafkago.Message
	writeErr map[string]error
}

func (f *fakeMessageWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, msg := range msgs {
		if err := f.writeErr[string(msg.Key)]; err != nil {
			return err
		}
		f.written = append(f.written, msg)
	}
	return nil
}

func stagedEvent(id, aggregateID, requestID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		RequestID:     requestID,
		AggregateType: "application",
		AggregateID:   aggregateID,
		EventType:     "application.submitted",
		Topic:         "hr.leave.application.v1",
		Payload:       []byte(`{"applicationId":7}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestPublisher_Run(t *testing.T) {
	t.Run("publishes staged events and marks them sent", func(t *testing.T) {
		repo := &fakePublishOutbox{
			pending: []kafka.OutboxEvent{
				stagedEvent("ob-1", "7", "req-1"),
				stagedEvent("ob-2", "8", ""),
			},
		}
		writer := &fakeMessageWriter{}
		publisher := producer.NewPublisher(repo, writer, zap.NewNop())

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		publisher.Run(ctx, 10*time.Millisecond)

		assert.Contains(t, repo.sentIDs, "ob-1")
		assert.Contains(t, repo.sentIDs, "ob-2")
		assert.GreaterOrEqual(t, len(writer.written), 2)

		first := writer.written[0]
		assert.Equal(t, "hr.leave.application.v1", first.Topic)
		assert.Equal(t, []byte("7"), first.Key)
		assert.Equal(t, []byte(`{"applicationId":7}`), first.Value)

		headers := map[string]string{}
		for _, h := range first.Headers {
			headers[h.Key] = string(h.Value)
		}
		assert.Equal(t, "application.submitted", headers["event_type"])
		assert.Equal(t, "application", headers["aggregate_type"])
		assert.Equal(t, "ob-1", headers["outbox_id"])
		assert.Equal(t, "req-1", headers["request_id"])
	})

	t.Run("omits the request id header when the event has none", func(t *testing.T) {
		repo := &fakePublishOutbox{pending: []kafka.OutboxEvent{stagedEvent("ob-1", "7", "")}}
		writer := &fakeMessageWriter{}
		publisher := producer.NewPublisher(repo, writer, zap.NewNop())

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		publisher.Run(ctx, 10*time.Millisecond)

		assert.NotEmpty(t, writer.written)
		for _, h := range writer.written[0].Headers {
			assert.NotEqual(t, "request_id", h.Key)
		}
	})

	t.Run("a failed publish is recorded and does not block the batch", func(t *testing.T) {
		repo := &fakePublishOutbox{
			pending: []kafka.OutboxEvent{
				stagedEvent("ob-1", "7", ""),
				stagedEvent("ob-2", "8", ""),
			},
		}
		writer := &fakeMessageWriter{
			writeErr: map[string]error{"7": errors.New("broker unavailable")},
		}
		publisher := producer.NewPublisher(repo, writer, zap.NewNop())

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		publisher.Run(ctx, 10*time.Millisecond)

		assert.Equal(t, "broker unavailable", repo.failed["ob-1"])
		assert.Contains(t, repo.sentIDs, "ob-2")
	})

	t.Run("keeps polling after a listing error", func(t *testing.T) {
		repo := &fakePublishOutbox{listErr: errors.New("connection reset")}
		writer := &fakeMessageWriter{}
		publisher := producer.NewPublisher(repo, writer, zap.NewNop())

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		publisher.Run(ctx, 10*time.Millisecond)

		assert.Empty(t, writer.written)
	})
}
