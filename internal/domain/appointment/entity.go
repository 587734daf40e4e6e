package appointment

import (
	"time"

	"vet-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOwnerRequired         = errs.New("owner is required")
	ErrClinicRequired        = errs.New("veterinaria_id is required")
	ErrPetRequired           = errs.New("pet is required")
	ErrPreferredDateRequired = errs.New("fecha_preferida is required")
	ErrInvalidStatus         = errs.New("invalid appointment status")
	ErrConfirmedTimeRequired = errs.New("horario_confirmado is required to confirm")
	ErrIllegalTransition     = errs.New("status change not allowed")
)

// allowed lists the targets each status may move to. Completion is reachable from
// every status so marking an appointment finished never depends on its history.
var allowed = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusCancelled: {StatusCompleted},
	StatusCompleted: {StatusCompleted},
}

type Booking struct {
	OwnerID       uuid.UUID
	ClinicID      int64
	PetID         int64
	ServiceID     *int64
	RequestedDate time.Time
	ContactPhone  *string
	Notes         string
	Origin        Origin
}

type Appointment struct {
	id              int64
	ownerID         uuid.UUID
	petID           int64
	clinicID        int64
	serviceID       *int64
	requestedDate   time.Time
	confirmedAt     *time.Time
	status          Status
	contactPhone    *string
	notes           string
	completionMarks int
	origin          Origin
	version         int32
	createdAt       time.Time
	updatedAt       time.Time
}

func NewAppointment(b Booking, now time.Time) (*Appointment, error) {
	if b.OwnerID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	if b.ClinicID <= 0 {
		return nil, ErrClinicRequired
	}
	if b.PetID <= 0 {
		return nil, ErrPetRequired
	}
	if b.RequestedDate.IsZero() {
		return nil, ErrPreferredDateRequired
	}
	origin := b.Origin
	if origin == "" {
		origin = OriginWeb
	}

	y, m, d := b.RequestedDate.Date()
	return &Appointment{
		ownerID:       b.OwnerID,
		petID:         b.PetID,
		clinicID:      b.ClinicID,
		serviceID:     b.ServiceID,
		requestedDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		status:        StatusPending,
		contactPhone:  b.ContactPhone,
		notes:         b.Notes,
		origin:        origin,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructAppointment(
	id int64,
	ownerID uuid.UUID,
	petID, clinicID int64,
	serviceID *int64,
	requestedDate time.Time,
	confirmedAt *time.Time,
	status Status,
	contactPhone *string,
	notes string,
	completionMarks int,
	origin Origin,
	version int32,
	createdAt, updatedAt time.Time,
) (*Appointment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Appointment{
		id:              id,
		ownerID:         ownerID,
		petID:           petID,
		clinicID:        clinicID,
		serviceID:       serviceID,
		requestedDate:   requestedDate,
		confirmedAt:     confirmedAt,
		status:          status,
		contactPhone:    contactPhone,
		notes:           notes,
		completionMarks: completionMarks,
		origin:          origin,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

// Transition moves the appointment to target. A supplied confirmedAt is stored
// whatever the target, and an existing one is never cleared. Each move to
// Completed adds one completion mark, even when already completed.
func (a *Appointment) Transition(target Status, confirmedAt *time.Time, now time.Time) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !a.CanTransitionTo(target) {
		return ErrIllegalTransition
	}
	if target == StatusConfirmed && confirmedAt == nil && a.confirmedAt == nil {
		return ErrConfirmedTimeRequired
	}

	if confirmedAt != nil {
		t := *confirmedAt
		a.confirmedAt = &t
	}
	if target == StatusCompleted {
		a.completionMarks++
	}
	a.status = target
	a.updatedAt = now
	return nil
}

func (a *Appointment) CanTransitionTo(target Status) bool {
	for _, s := range allowed[a.status] {
		if s == target {
			return true
		}
	}
	return false
}

// AssignID records the store-assigned id of a new appointment. It is a no-op
// once an id is set.
func (a *Appointment) AssignID(id int64) {
	if a.id == 0 {
		a.id = id
	}
}

// Start is the calendar start of the appointment, nil until a time is confirmed.
func (a *Appointment) Start() *time.Time {
	return a.confirmedAt
}

func (a *Appointment) IsCompleted() bool {
	return a.status == StatusCompleted
}

func (a *Appointment) ID() int64                { return a.id }
func (a *Appointment) OwnerID() uuid.UUID       { return a.ownerID }
func (a *Appointment) PetID() int64             { return a.petID }
func (a *Appointment) ClinicID() int64          { return a.clinicID }
func (a *Appointment) ServiceID() *int64        { return a.serviceID }
func (a *Appointment) RequestedDate() time.Time { return a.requestedDate }
func (a *Appointment) ConfirmedAt() *time.Time  { return a.confirmedAt }
func (a *Appointment) Status() Status           { return a.status }
func (a *Appointment) ContactPhone() *string    { return a.contactPhone }
func (a *Appointment) Notes() string            { return a.notes }
func (a *Appointment) CompletionMarks() int     { return a.completionMarks }
func (a *Appointment) Origin() Origin           { return a.origin }
func (a *Appointment) Version() int32           { return a.version }
func (a *Appointment) CreatedAt() time.Time     { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time     { return a.updatedAt }
