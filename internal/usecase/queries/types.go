package queries

import (
	"time"

	"vet-scheduler/internal/domain/appointment"
)

// AppointmentRecord is a cita as read for listing. Completion is already
// decoded and Notes carries no marker.
type AppointmentRecord struct {
	ID            int64
	ClinicID      int64
	PetName       string
	ServiceName   *string
	RequestedDate time.Time
	ConfirmedAt   *time.Time
	Status        appointment.Status
	ContactPhone  *string
	Notes         string
	Origin        appointment.Origin
}

// ConfirmedRecord is a confirmed cita with the service duration, if known.
type ConfirmedRecord struct {
	ID          int64
	Start       time.Time
	PetName     string
	ServiceName *string
	Duration    *time.Duration
}

// DateRange bounds fecha_preferida. Nil ends are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Read models (DTO for read side)
type AppointmentView struct {
	ID                int64              `json:"id"`
	Mascota           string             `json:"mascota"`
	Servicio          string             `json:"servicio"`
	FechaPreferida    string             `json:"fechaPreferida"`
	HorarioConfirmado *string            `json:"horarioConfirmado,omitempty"`
	Estado            string             `json:"estado"`
	Detalles          AppointmentDetails `json:"detalles"`
}

type AppointmentDetails struct {
	Telefono string `json:"telefono"`
	Motivo   string `json:"motivo"`
}

type CalendarItem struct {
	ID        int64  `json:"id"`
	Mascota   string `json:"mascota"`
	Servicio  string `json:"servicio"`
	Inicio    string `json:"inicio"`
	Fin       string `json:"fin"`
	LaneIndex int    `json:"laneIndex"`
	LaneCount int    `json:"laneCount"`
}
