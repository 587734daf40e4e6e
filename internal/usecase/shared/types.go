package shared

import (
	"time"

	"github.com/google/uuid"
)

type PetSnapshot struct {
	ID      int64
	OwnerID uuid.UUID
	Name    string
}

type ServiceSnapshot struct {
	ID       int64
	ClinicID int64
	Name     string
	Duration *time.Duration
}

// Event types written to the outbox.
const (
	EventAppointmentBooked        = "appointment.booked.v1"
	EventAppointmentStatusChanged = "appointment.status_changed.v1"
)

type OutboxEvent struct {
	ID           uuid.UUID
	AggregateID  int64
	Type         string
	Payload      []byte
	TraceHeaders map[string]string
	CreatedAt    time.Time
}
