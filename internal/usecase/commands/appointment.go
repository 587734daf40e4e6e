package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"vet-scheduler/internal/domain/appointment"
	"vet-scheduler/internal/pkg/clock"
	"vet-scheduler/internal/pkg/errs"
	"vet-scheduler/internal/pkg/interval"
	"vet-scheduler/internal/pkg/metrics"
	"vet-scheduler/internal/pkg/telemetry"
	"vet-scheduler/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrInvalidConfirmedTime = errs.New("horario_confirmado must be YYYY-MM-DDTHH:MM")

// errVersionMoved rolls back an attempt whose compare-and-swap lost the race.
var errVersionMoved = errors.New("appointment version moved")

type TransitionInput struct {
	ID            int64
	Label         string
	ConfirmedTime *string
	// ClinicScope restricts the change to appointments of one clinic. Nil means any clinic.
	ClinicScope *int64
}

type TransitionResult struct {
	ID      int64
	Message string
}

type AppointmentCommands interface {
	Transition(ctx context.Context, in TransitionInput) (*TransitionResult, error)
	Delete(ctx context.Context, id int64) error
}

type appointmentUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings Settings
	metrics  *metrics.SchedulingMetrics
}

func NewAppointmentUseCase(uow shared.UnitOfWork, clk clock.Clock, settings Settings, m *metrics.SchedulingMetrics) AppointmentCommands {
	return &appointmentUseCaseImpl{uow: uow, clock: clk, settings: settings, metrics: m}
}

func (uc *appointmentUseCaseImpl) Transition(ctx context.Context, in TransitionInput) (*TransitionResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "commands.Transition")
	defer span.End()
	span.SetAttributes(attribute.Int64("appointment.id", in.ID), attribute.String("status.label", in.Label))

	target, res, err := uc.transition(ctx, in)
	uc.metrics.ObserveTransition(target.String(), resultLabel(err))
	if err != nil {
		observeStoreError(uc.metrics, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return res, nil
}

func (uc *appointmentUseCaseImpl) transition(ctx context.Context, in TransitionInput) (appointment.Status, *TransitionResult, error) {
	label := strings.TrimSpace(in.Label)
	target, err := appointment.StatusFromLabel(label)
	if err != nil {
		return "", nil, errs.Mark(err, errs.ErrValidation)
	}

	var confirmedAt *time.Time
	if s := trimmedOrNil(in.ConfirmedTime); s != nil {
		t, perr := interval.ParseLocalNaive(*s, uc.settings.location())
		if perr != nil {
			return target, nil, errs.Mark(ErrInvalidConfirmedTime, errs.ErrValidation)
		}
		confirmedAt = &t
	}

	ctx, cancel := context.WithTimeout(ctx, uc.settings.storeTimeout())
	defer cancel()

	retries := uc.settings.CASRetries
	if retries < 0 {
		retries = 0
	}
	for attempt := 0; ; attempt++ {
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return uc.applyTransition(ctx, tx, in, target, confirmedAt)
		})
		if !errors.Is(err, errVersionMoved) {
			break
		}
		if attempt >= retries {
			return target, nil, errs.Mark(errs.Mark(err, errs.ErrVersionConflict), errs.ErrConflict)
		}
	}
	if err != nil {
		return target, nil, shared.TranslateStoreError(err, errs.ErrAppointmentNotFound)
	}

	return target, &TransitionResult{
		ID:      in.ID,
		Message: "Estado actualizado a " + label,
	}, nil
}

func (uc *appointmentUseCaseImpl) applyTransition(
	ctx context.Context,
	tx shared.Tx,
	in TransitionInput,
	target appointment.Status,
	confirmedAt *time.Time,
) error {
	repo := tx.Appointments()
	a, err := repo.FindByID(ctx, tx.DB(), in.ID)
	if err != nil {
		return err
	}
	if in.ClinicScope != nil && a.ClinicID() != *in.ClinicScope {
		return errs.Mark(errs.ErrAppointmentNotFound, errs.ErrNotFound)
	}

	from, version := a.Status(), a.Version()
	if err := a.Transition(target, confirmedAt, uc.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	cas, ok := repo.(shared.CompareAndSwapper)
	if ok && uc.settings.OptimisticLocking {
		swapped, err := cas.CompareAndSwap(ctx, tx.DB(), a, version)
		if err != nil {
			return err
		}
		if !swapped {
			return errVersionMoved
		}
	} else if err := repo.Update(ctx, tx.DB(), a); err != nil {
		return err
	}

	ev, err := statusChangedEvent(ctx, a, from, uc.settings.location())
	if err != nil {
		return err
	}
	return tx.Outbox().Append(ctx, tx.DB(), ev)
}

// Delete removes an appointment outright. It writes no event.
func (uc *appointmentUseCaseImpl) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, uc.settings.storeTimeout())
	defer cancel()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Appointments().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		observeStoreError(uc.metrics, err)
		return shared.TranslateStoreError(err, errs.ErrAppointmentNotFound)
	}
	return nil
}
