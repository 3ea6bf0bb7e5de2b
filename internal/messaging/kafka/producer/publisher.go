package producer

import (
	"context"
	"time"

	"go-leave/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// drainBatchSize caps how many staged rows one poll cycle takes. Leave
// applications arrive in small batches, so a cycle always finishes well
// inside the poll interval.
const drainBatchSize = 25

// MessageWriter is the slice of kafka-go's Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Publisher moves staged application events from the outbox to Kafka.
// Delivery state lives in the outbox row itself, so a crashed publisher
// resumes where it left off.
type Publisher struct {
	repo   kafka.OutboxRepository
	writer MessageWriter
	logger *zap.Logger
}

func NewPublisher(repo kafka.OutboxRepository, writer MessageWriter, logger ...*zap.Logger) *Publisher {
	l := zap.L().Named("kafka.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.publisher")
	}
	return &Publisher{repo: repo, writer: writer, logger: l}
}

// Run polls the outbox until the context is cancelled. Publish failures are
// recorded on the row (retry count and backoff) and retried on a later
// cycle.
func (p *Publisher) Run(ctx context.Context, pollInterval time.Duration) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	p.logger.Info("outbox publisher started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("outbox publisher stopped")
			return
		case <-ticker.C:
			sent, failed, err := p.drain(ctx)
			if err != nil {
				p.logger.Error("drain outbox failed", zap.Error(err))
				continue
			}
			if sent > 0 || failed > 0 {
				p.logger.Info("outbox drained",
					zap.Int("sent", sent),
					zap.Int("failed", failed),
				)
			}
		}
	}
}

// drain publishes one batch of staged events. Each event succeeds or fails
// on its own; one poisoned payload never blocks the rest of the batch.
func (p *Publisher) drain(ctx context.Context) (sent, failed int, err error) {
	events, err := p.repo.ListPending(ctx, drainBatchSize)
	if err != nil {
		return 0, 0, err
	}

	for _, event := range events {
		if err := p.writer.WriteMessages(ctx, toMessage(event)); err != nil {
			p.logger.Error("publish application event failed",
				zap.String("outbox_id", event.ID),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			_ = p.repo.MarkFailed(ctx, event.ID, err.Error())
			failed++
			continue
		}

		if err := p.repo.MarkSent(ctx, event.ID); err != nil {
			p.logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			failed++
			continue
		}
		sent++
	}

	return sent, failed, nil
}

// toMessage keys the message by application id, so every event for one
// application lands on the same partition in submit order. The request id
// that triggered the submission travels as a header for cross-service
// tracing.
func toMessage(event kafka.OutboxEvent) kafkago.Message {
	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		{Key: "outbox_id", Value: []byte(event.ID)},
	}
	if event.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	return kafkago.Message{
		Topic:   event.Topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	}
}
