package shared

import (
	"context"

	"vet-scheduler/internal/domain/appointment"
	sqlc "vet-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads resolves the names a booking refers to.
type CommandReads interface {
	PetsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) ([]PetSnapshot, error)
	// ServiceByClinicAndName returns nil without error when nothing matches.
	ServiceByClinicAndName(ctx context.Context, clinicID int64, name string) (*ServiceSnapshot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (int64, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*appointment.Appointment, error)
	Update(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

// CompareAndSwapper is an optional AppointmentRepository capability. It writes
// a only while the stored version still equals expectedVersion and reports
// whether it did.
type CompareAndSwapper interface {
	CompareAndSwap(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment, expectedVersion int32) (bool, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, ev OutboxEvent) error
	FetchUnpublished(ctx context.Context, tx sqlc.DBTX, limit int32) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) error
}
