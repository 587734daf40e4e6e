//go:build unit

package events_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vet-scheduler/internal/infra/events"
	"vet-scheduler/internal/pkg/config"
	"vet-scheduler/internal/usecase/shared"
	sharedmock "vet-scheduler/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func newRelay(t *testing.T, w events.MessageWriter) (*events.Relay, *sharedmock.MockOutboxRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	outbox := sharedmock.NewMockOutboxRepository(ctrl)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().Outbox().Return(outbox).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return events.NewRelay(uow, w, logger, config.EventsConfig{BatchSize: 10}), outbox
}

func TestRelay_PublishBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("writes pending events and marks them published", func(t *testing.T) {
		w := &fakeWriter{}
		relay, outbox := newRelay(t, w)
		id := uuid.New()

		outbox.EXPECT().FetchUnpublished(gomock.Any(), gomock.Any(), int32(10)).Return([]shared.OutboxEvent{{
			ID:          id,
			AggregateID: 42,
			Type:        shared.EventAppointmentStatusChanged,
			Payload:     []byte(`{"id":42}`),
			TraceHeaders: map[string]string{
				"traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
			},
		}}, nil)
		outbox.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), []uuid.UUID{id}).Return(nil)

		n, err := relay.PublishBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		require.Len(t, w.msgs, 1)
		msg := w.msgs[0]
		assert.Equal(t, shared.EventAppointmentStatusChanged, msg.Topic)
		assert.Equal(t, "42", string(msg.Key))
		assert.Equal(t, id.String(), events.HeaderValue(msg.Headers, events.HeaderEventID))
		assert.Equal(t, shared.EventAppointmentStatusChanged, events.HeaderValue(msg.Headers, events.HeaderEventType))
	})

	t.Run("nothing pending", func(t *testing.T) {
		w := &fakeWriter{}
		relay, outbox := newRelay(t, w)
		outbox.EXPECT().FetchUnpublished(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		n, err := relay.PublishBatch(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, w.msgs)
	})

	t.Run("broker failure leaves events unpublished", func(t *testing.T) {
		w := &fakeWriter{err: assert.AnError}
		relay, outbox := newRelay(t, w)
		outbox.EXPECT().FetchUnpublished(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shared.OutboxEvent{{ID: uuid.New(), AggregateID: 1, Type: shared.EventAppointmentBooked}}, nil)

		n, err := relay.PublishBatch(ctx)
		require.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, n)
	})
}

func TestRelay_RunWithoutWriter(t *testing.T) {
	relay := events.NewRelay(nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), config.EventsConfig{})

	done := make(chan struct{})
	go func() {
		relay.Run(context.Background())
		close(done)
	}()
	<-done
	assert.NoError(t, relay.Close())
}
