package commands

import (
	"context"
	"strings"

	"vet-scheduler/internal/domain/appointment"
	"vet-scheduler/internal/infra"
	"vet-scheduler/internal/pkg/clock"
	"vet-scheduler/internal/pkg/errs"
	"vet-scheduler/internal/pkg/interval"
	"vet-scheduler/internal/pkg/metrics"
	"vet-scheduler/internal/pkg/telemetry"
	"vet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrPetNameRequired      = errs.New("mascota_nombre is required")
	ErrInvalidPreferredDate = errs.New("fecha_preferida must be a YYYY-MM-DD date")
)

type CreateBookingInput struct {
	OwnerID       uuid.UUID
	ClinicID      int64
	PetName       string
	ServiceName   *string
	PreferredDate string
	ContactPhone  *string
	Notes         *string
	Origin        appointment.Origin
}

type BookingResult struct {
	ID          int64
	Appointment *appointment.Appointment
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings Settings
	metrics  *metrics.SchedulingMetrics
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, settings Settings, m *metrics.SchedulingMetrics) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, settings: settings, metrics: m}
}

// CreateBooking resolves the pet and service names, then stores a pending
// appointment together with its booked event.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "commands.CreateBooking")
	defer span.End()
	span.SetAttributes(attribute.Int64("clinic.id", in.ClinicID))

	res, err := uc.createBooking(ctx, in)
	uc.metrics.ObserveBooking(resultLabel(err))
	if err != nil {
		observeStoreError(uc.metrics, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int64("appointment.id", res.ID))
	return res, nil
}

func (uc *bookingUseCaseImpl) createBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error) {
	petName := strings.TrimSpace(in.PetName)
	if petName == "" {
		return nil, errs.Mark(ErrPetNameRequired, errs.ErrValidation)
	}
	if in.OwnerID == uuid.Nil {
		return nil, errs.Mark(appointment.ErrOwnerRequired, errs.ErrValidation)
	}
	if in.ClinicID <= 0 {
		return nil, errs.Mark(appointment.ErrClinicRequired, errs.ErrValidation)
	}
	date, err := interval.ParseDate(strings.TrimSpace(in.PreferredDate))
	if err != nil {
		return nil, errs.Mark(ErrInvalidPreferredDate, errs.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.settings.storeTimeout())
	defer cancel()

	pet, err := uc.resolvePet(ctx, in.OwnerID, petName)
	if err != nil {
		return nil, err
	}
	serviceID, err := uc.resolveService(ctx, in.ClinicID, in.ServiceName)
	if err != nil {
		return nil, err
	}

	a, err := appointment.NewAppointment(appointment.Booking{
		OwnerID:       in.OwnerID,
		ClinicID:      in.ClinicID,
		PetID:         pet.ID,
		ServiceID:     serviceID,
		RequestedDate: date,
		ContactPhone:  trimmedOrNil(in.ContactPhone),
		Notes:         deref(in.Notes),
		Origin:        in.Origin,
	}, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		id, derr = tx.Appointments().Create(ctx, tx.DB(), a)
		if derr != nil {
			return derr
		}
		ev, derr := bookedEvent(ctx, withID(a, id))
		if derr != nil {
			return derr
		}
		return tx.Outbox().Append(ctx, tx.DB(), ev)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(errs.Mark(err, errs.ErrClinicNotFound), errs.ErrNotFound)
		}
		return nil, shared.TranslateStoreError(err, nil)
	}
	a.AssignID(id)

	return &BookingResult{ID: id, Appointment: a}, nil
}

// resolvePet applies the ambiguity policy when the owner has several pets with
// the same name. The store returns them ordered by id.
func (uc *bookingUseCaseImpl) resolvePet(ctx context.Context, ownerID uuid.UUID, name string) (*shared.PetSnapshot, error) {
	pets, err := uc.uow.CommandReads().PetsByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return nil, shared.TranslateStoreError(err, nil)
	}
	switch {
	case len(pets) == 0:
		return nil, errs.Mark(errs.ErrPetNotFound, errs.ErrNotFound)
	case len(pets) > 1 && uc.settings.PetPolicy != PetPolicyFirstMatch:
		return nil, errs.Mark(errs.ErrAmbiguousPet, errs.ErrValidation)
	}
	return &pets[0], nil
}

// resolveService returns nil when no name was given or nothing matches it.
func (uc *bookingUseCaseImpl) resolveService(ctx context.Context, clinicID int64, name *string) (*int64, error) {
	n := trimmedOrNil(name)
	if n == nil {
		return nil, nil
	}
	svc, err := uc.uow.CommandReads().ServiceByClinicAndName(ctx, clinicID, *n)
	if err != nil {
		return nil, shared.TranslateStoreError(err, nil)
	}
	if svc == nil {
		return nil, nil
	}
	id := svc.ID
	return &id, nil
}

// withID lets the event carry the new id without touching a while the
// transaction may still be retried.
func withID(a *appointment.Appointment, id int64) *appointment.Appointment {
	cp := *a
	cp.AssignID(id)
	return &cp
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
