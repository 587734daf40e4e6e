package events

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"vet-scheduler/internal/pkg/config"
	"vet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// MessageWriter is the part of *kafka.Writer the relay uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Relay moves appointment events from the outbox table to Kafka. Rows are
// locked, written and marked published in one transaction, so a crash before
// commit republishes them (at-least-once).
type Relay struct {
	uow       shared.UnitOfWork
	writer    MessageWriter
	logger    *slog.Logger
	pollEvery time.Duration
	batchSize int32
}

func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// NewRelay returns a relay writing to writer. A nil writer makes Run a no-op.
func NewRelay(uow shared.UnitOfWork, writer MessageWriter, logger *slog.Logger, cfg config.EventsConfig) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &Relay{
		uow:       uow,
		writer:    writer,
		logger:    logger,
		pollEvery: cfg.PollInterval,
		batchSize: cfg.BatchSize,
	}
}

// Run polls until ctx is done.
func (r *Relay) Run(ctx context.Context) {
	if r.writer == nil {
		r.logger.Warn("outbox relay idle (no kafka brokers configured)")
		return
	}

	ticker := time.NewTicker(r.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := r.PublishBatch(ctx)
			if err != nil {
				r.logger.Error("outbox publish failed", "error", err.Error())
				continue
			}
			if n > 0 {
				r.logger.Debug("outbox events published", "count", n)
			}
		}
	}
}

// PublishBatch publishes at most one batch and returns how many events it sent.
func (r *Relay) PublishBatch(ctx context.Context) (int, error) {
	var published int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending, err := tx.Outbox().FetchUnpublished(ctx, tx.DB(), r.batchSize)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, 0, len(pending))
		ids := make([]uuid.UUID, 0, len(pending))
		for _, ev := range pending {
			msgs = append(msgs, toMessage(ctx, ev))
			ids = append(ids, ev.ID)
		}
		if err := r.writer.WriteMessages(ctx, msgs...); err != nil {
			return err
		}
		if err := tx.Outbox().MarkPublished(ctx, tx.DB(), ids); err != nil {
			return err
		}
		published = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return published, nil
}

func (r *Relay) Close() error {
	if r.writer == nil {
		return nil
	}
	return r.writer.Close()
}

func toMessage(ctx context.Context, ev shared.OutboxEvent) kafka.Message {
	msgCtx := otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(ev.TraceHeaders))
	msg := kafka.Message{
		Topic: ev.Type,
		Key:   []byte(strconv.FormatInt(ev.AggregateID, 10)),
		Value: ev.Payload,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(ev.ID.String())},
			{Key: HeaderEventType, Value: []byte(ev.Type)},
		},
	}
	msg.Headers = InjectTraceHeaders(msgCtx, msg.Headers)
	return msg
}
