//go:build unit || e2e

package builder

import (
	"time"

	"vet-scheduler/internal/domain/appointment"
	reqdto "vet-scheduler/internal/handler/dto/request"
	"vet-scheduler/internal/infra/repository/converter"
	sqlc "vet-scheduler/internal/infra/sqlc/generated"
	"vet-scheduler/internal/pkg/pgconv"
	"vet-scheduler/internal/usecase/commands"
	"vet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID              int64
	OwnerID         uuid.UUID
	ClinicID        int64
	PetID           int64
	PetName         string
	ServiceID       *int64
	ServiceName     string
	ServiceDuration *time.Duration
	RequestedDate   time.Time
	ConfirmedAt     *time.Time
	Status          appointment.Status
	ContactPhone    *string
	Notes           string
	CompletionMarks int
	Origin          appointment.Origin
	Version         int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	serviceID := int64(3)
	duration := 45 * time.Minute
	phone := "3001234567"
	return &AppointmentBuilder{
		ID:              1,
		OwnerID:         uuid.New(),
		ClinicID:        7,
		PetID:           11,
		PetName:         "Luna",
		ServiceID:       &serviceID,
		ServiceName:     "Vacunación",
		ServiceDuration: &duration,
		RequestedDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:          appointment.StatusPending,
		ContactPhone:    &phone,
		Notes:           "Revisión anual",
		Origin:          appointment.OriginWeb,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithID(id int64) *AppointmentBuilder {
	b.ID = id
	return b
}

func (b *AppointmentBuilder) WithStatus(s appointment.Status) *AppointmentBuilder {
	b.Status = s
	if s == appointment.StatusCompleted && b.CompletionMarks == 0 {
		b.CompletionMarks = 1
	}
	return b
}

func (b *AppointmentBuilder) WithConfirmedAt(t *time.Time) *AppointmentBuilder {
	b.ConfirmedAt = t
	return b
}

func (b *AppointmentBuilder) WithRequestedDate(t time.Time) *AppointmentBuilder {
	b.RequestedDate = t
	return b
}

func (b *AppointmentBuilder) WithoutService() *AppointmentBuilder {
	b.ServiceID = nil
	b.ServiceName = ""
	b.ServiceDuration = nil
	return b
}

// AsConfirmed sets a confirmed status at the given time.
func (b *AppointmentBuilder) AsConfirmed(at time.Time) *AppointmentBuilder {
	b.Status = appointment.StatusConfirmed
	b.ConfirmedAt = &at
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	return appointment.NewAppointment(appointment.Booking{
		OwnerID:       b.OwnerID,
		ClinicID:      b.ClinicID,
		PetID:         b.PetID,
		ServiceID:     b.ServiceID,
		RequestedDate: b.RequestedDate,
		ContactPhone:  b.ContactPhone,
		Notes:         b.Notes,
		Origin:        b.Origin,
	}, b.CreatedAt)
}

// BuildReconstructed returns the appointment as loaded from the store.
func (b *AppointmentBuilder) BuildReconstructed() *appointment.Appointment {
	a, err := appointment.ReconstructAppointment(
		b.ID, b.OwnerID, b.PetID, b.ClinicID, b.ServiceID,
		b.RequestedDate, b.ConfirmedAt, b.Status, b.ContactPhone, b.Notes,
		b.CompletionMarks, b.Origin, b.Version, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		panic(err)
	}
	return a
}

// BuildRow returns the stored row, with completion encoded the way the store keeps it.
func (b *AppointmentBuilder) BuildRow() sqlc.Citas {
	status, notes := converter.EncodeStatus(b.Status, b.Notes, b.CompletionMarks)
	return sqlc.Citas{
		ID:                b.ID,
		UsuarioID:         b.OwnerID,
		MascotaID:         b.PetID,
		VeterinariaID:     b.ClinicID,
		ServicioID:        pgconv.Int64PtrToPgtype(b.ServiceID),
		FechaPreferida:    pgconv.DateToPgtype(b.RequestedDate),
		HorarioConfirmado: pgconv.TimePtrToPgtype(b.ConfirmedAt),
		Status:            status,
		TelefonoContacto:  pgconv.StringPtrToPgtype(b.ContactPhone),
		Notas:             notes,
		Origen:            b.Origin.String(),
		Version:           b.Version,
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:         pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	req := reqdto.CreateAppointmentRequest{
		VeterinariaID:    b.ClinicID,
		MascotaNombre:    b.PetName,
		TelefonoContacto: b.ContactPhone,
		FechaPreferida:   b.RequestedDate.Format("2006-01-02"),
	}
	if b.ServiceName != "" {
		name := b.ServiceName
		req.ServicioNombre = &name
	}
	if b.Notes != "" {
		notes := b.Notes
		req.Notas = &notes
	}
	return req
}

func (b *AppointmentBuilder) BuildBookingInput() commands.CreateBookingInput {
	in := commands.CreateBookingInput{
		OwnerID:       b.OwnerID,
		ClinicID:      b.ClinicID,
		PetName:       b.PetName,
		PreferredDate: b.RequestedDate.Format("2006-01-02"),
		ContactPhone:  b.ContactPhone,
		Origin:        b.Origin,
	}
	if b.ServiceName != "" {
		name := b.ServiceName
		in.ServiceName = &name
	}
	if b.Notes != "" {
		notes := b.Notes
		in.Notes = &notes
	}
	return in
}

func (b *AppointmentBuilder) BuildPetSnapshot() shared.PetSnapshot {
	return shared.PetSnapshot{ID: b.PetID, OwnerID: b.OwnerID, Name: b.PetName}
}

func (b *AppointmentBuilder) BuildServiceSnapshot() *shared.ServiceSnapshot {
	if b.ServiceID == nil {
		return nil
	}
	return &shared.ServiceSnapshot{
		ID:       *b.ServiceID,
		ClinicID: b.ClinicID,
		Name:     b.ServiceName,
		Duration: b.ServiceDuration,
	}
}
