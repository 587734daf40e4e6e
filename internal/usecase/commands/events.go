package commands

import (
	"context"
	"encoding/json"
	"time"

	"vet-scheduler/internal/domain/appointment"
	"vet-scheduler/internal/pkg/interval"
	"vet-scheduler/internal/pkg/telemetry"
	"vet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type bookedPayload struct {
	ID            int64     `json:"id"`
	OwnerID       uuid.UUID `json:"usuario_id"`
	ClinicID      int64     `json:"veterinaria_id"`
	PetID         int64     `json:"mascota_id"`
	ServiceID     *int64    `json:"servicio_id,omitempty"`
	PreferredDate string    `json:"fecha_preferida"`
	Origin        string    `json:"origen"`
	Status        string    `json:"status"`
}

type statusChangedPayload struct {
	ID              int64   `json:"id"`
	ClinicID        int64   `json:"veterinaria_id"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	ConfirmedAt     *string `json:"horario_confirmado,omitempty"`
	CompletionMarks int     `json:"completion_marks"`
}

func bookedEvent(ctx context.Context, a *appointment.Appointment) (shared.OutboxEvent, error) {
	payload, err := json.Marshal(bookedPayload{
		ID:            a.ID(),
		OwnerID:       a.OwnerID(),
		ClinicID:      a.ClinicID(),
		PetID:         a.PetID(),
		ServiceID:     a.ServiceID(),
		PreferredDate: a.RequestedDate().Format(interval.DateLayout),
		Origin:        a.Origin().String(),
		Status:        a.Status().String(),
	})
	if err != nil {
		return shared.OutboxEvent{}, err
	}
	return newEvent(ctx, a.ID(), shared.EventAppointmentBooked, payload, a.CreatedAt()), nil
}

func statusChangedEvent(ctx context.Context, a *appointment.Appointment, from appointment.Status, loc *time.Location) (shared.OutboxEvent, error) {
	p := statusChangedPayload{
		ID:              a.ID(),
		ClinicID:        a.ClinicID(),
		From:            from.String(),
		To:              a.Status().String(),
		CompletionMarks: a.CompletionMarks(),
	}
	if at := a.ConfirmedAt(); at != nil {
		s := interval.ToLocalNaive(*at, loc)
		p.ConfirmedAt = &s
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return shared.OutboxEvent{}, err
	}
	return newEvent(ctx, a.ID(), shared.EventAppointmentStatusChanged, payload, a.UpdatedAt()), nil
}

func newEvent(ctx context.Context, aggregateID int64, typ string, payload []byte, at time.Time) shared.OutboxEvent {
	return shared.OutboxEvent{
		AggregateID:  aggregateID,
		Type:         typ,
		Payload:      payload,
		TraceHeaders: telemetry.TraceHeaders(ctx),
		CreatedAt:    at,
	}
}
