package repository

import (
	"context"
	"encoding/json"

	"vet-scheduler/internal/infra"
	sqlc "vet-scheduler/internal/infra/sqlc/generated"
	"vet-scheduler/internal/pkg/clock"
	"vet-scheduler/internal/pkg/pgconv"
	"vet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxQueries interface {
	InsertAppointmentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAppointmentEventParams) error
	FetchUnpublishedEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.AppointmentEvents, error)
	MarkEventsPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEventsPublishedParams) error
}

type OutboxRepository struct {
	queries OutboxQueries
	clock   clock.Clock
}

func NewOutboxRepository(queries OutboxQueries, clk clock.Clock) *OutboxRepository {
	return &OutboxRepository{queries: queries, clock: clk}
}

func (r *OutboxRepository) Append(ctx context.Context, tx sqlc.DBTX, ev shared.OutboxEvent) error {
	headers := ev.TraceHeaders
	if headers == nil {
		headers = map[string]string{}
	}
	traceJSON, err := json.Marshal(headers)
	if err != nil {
		return infra.WrapRepoErr("failed to encode trace headers", err, infra.KindDBFailure)
	}

	id := ev.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := ev.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.clock.Now()
	}

	err = r.queries.InsertAppointmentEvent(ctx, tx, sqlc.InsertAppointmentEventParams{
		ID:           id,
		AggregateID:  ev.AggregateID,
		EventType:    ev.Type,
		Payload:      ev.Payload,
		TraceHeaders: traceJSON,
		CreatedAt:    pgconv.TimeToPgtype(createdAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append appointment event", err)
	}
	return nil
}

// FetchUnpublished locks up to limit pending events for the current transaction.
func (r *OutboxRepository) FetchUnpublished(ctx context.Context, tx sqlc.DBTX, limit int32) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.FetchUnpublishedEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch unpublished events", err)
	}

	events := make([]shared.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		headers := map[string]string{}
		if len(row.TraceHeaders) > 0 {
			// a corrupt header blob only loses trace linkage
			_ = json.Unmarshal(row.TraceHeaders, &headers)
		}
		events = append(events, shared.OutboxEvent{
			ID:           row.ID,
			AggregateID:  row.AggregateID,
			Type:         row.EventType,
			Payload:      row.Payload,
			TraceHeaders: headers,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.queries.MarkEventsPublished(ctx, tx, sqlc.MarkEventsPublishedParams{
		PublishedAt: pgconv.TimeToPgtype(r.clock.Now()),
		Ids:         ids,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark events published", err)
	}
	return nil
}
