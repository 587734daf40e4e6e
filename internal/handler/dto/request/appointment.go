package request

import (
	"strings"
	"time"

	"vet-scheduler/internal/domain/appointment"
	"vet-scheduler/internal/pkg/errs"
	"vet-scheduler/internal/pkg/interval"
	"vet-scheduler/internal/usecase/commands"
	"vet-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidDesde   = errs.New("desde must be a YYYY-MM-DD date")
	ErrInvalidHasta   = errs.New("hasta must be a YYYY-MM-DD date")
	ErrWindowRequired = errs.New("desde and hasta are required")
)

// CreateAppointmentRequest is the booking body. Presence is checked by the
// booking use case so every failure gets the same message shape.
type CreateAppointmentRequest struct {
	VeterinariaID    int64   `json:"veterinaria_id"`
	MascotaNombre    string  `json:"mascota_nombre"`
	ServicioNombre   *string `json:"servicio_nombre"`
	TelefonoContacto *string `json:"telefono_contacto"`
	FechaPreferida   string  `json:"fecha_preferida"`
	Notas            *string `json:"notas"`
}

func (r CreateAppointmentRequest) ToInput(ownerID uuid.UUID, origin appointment.Origin) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		OwnerID:       ownerID,
		ClinicID:      r.VeterinariaID,
		PetName:       r.MascotaNombre,
		ServiceName:   r.ServicioNombre,
		PreferredDate: r.FechaPreferida,
		ContactPhone:  r.TelefonoContacto,
		Notes:         r.Notas,
		Origin:        origin,
	}
}

type UpdateStatusRequest struct {
	Estado            string  `json:"estado" binding:"required"`
	HorarioConfirmado *string `json:"horario_confirmado"`
}

func (r UpdateStatusRequest) ToInput(id int64, clinicScope *int64) commands.TransitionInput {
	return commands.TransitionInput{
		ID:            id,
		Label:         r.Estado,
		ConfirmedTime: r.HorarioConfirmado,
		ClinicScope:   clinicScope,
	}
}

type DateWindowQuery struct {
	Desde string `form:"desde"`
	Hasta string `form:"hasta"`
}

// ToRange parses the optional listing window.
func (q DateWindowQuery) ToRange() (queries.DateRange, error) {
	var rng queries.DateRange
	if s := strings.TrimSpace(q.Desde); s != "" {
		t, err := interval.ParseDate(s)
		if err != nil {
			return rng, errs.Mark(ErrInvalidDesde, errs.ErrValidation)
		}
		rng.From = &t
	}
	if s := strings.TrimSpace(q.Hasta); s != "" {
		t, err := interval.ParseDate(s)
		if err != nil {
			return rng, errs.Mark(ErrInvalidHasta, errs.ErrValidation)
		}
		rng.To = &t
	}
	return rng, nil
}

// ToWindow parses the calendar window, where both ends are required.
func (q DateWindowQuery) ToWindow() (time.Time, time.Time, error) {
	rng, err := q.ToRange()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if rng.From == nil || rng.To == nil {
		return time.Time{}, time.Time{}, errs.Mark(ErrWindowRequired, errs.ErrValidation)
	}
	return *rng.From, *rng.To, nil
}
