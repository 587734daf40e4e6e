package queries

import (
	"context"
	"time"

	"vet-scheduler/internal/domain/calendar"
	"vet-scheduler/internal/infra"
	"vet-scheduler/internal/pkg/config"
	"vet-scheduler/internal/pkg/errs"
	"vet-scheduler/internal/pkg/interval"
	"vet-scheduler/internal/pkg/metrics"
	"vet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errs.New("hasta must not be before desde")
	ErrUndisplayable    = errs.New("appointment status has no display label")
)

type AppointmentViewRepo interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID, rng DateRange) ([]AppointmentRecord, error)
	ListByClinic(ctx context.Context, clinicID int64, rng DateRange) ([]AppointmentRecord, error)
	ConfirmedByOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]ConfirmedRecord, error)
	ConfirmedByClinic(ctx context.Context, clinicID int64, from, to time.Time) ([]ConfirmedRecord, error)
}

type AppointmentQueries interface {
	ListForOwner(ctx context.Context, ownerID uuid.UUID, rng DateRange) ([]AppointmentView, error)
	ListForClinic(ctx context.Context, clinicID int64, rng DateRange) ([]AppointmentView, error)
	// CalendarForOwner lays out the confirmed appointments between the two
	// calendar days, both inclusive, in the configured time zone.
	CalendarForOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]CalendarItem, error)
	CalendarForClinic(ctx context.Context, clinicID int64, from, to time.Time) ([]CalendarItem, error)
}

type Settings struct {
	Location        *time.Location
	StoreTimeout    time.Duration
	DefaultDuration time.Duration
}

func NewSettings(cfg config.SchedulingConfig) (Settings, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Location:        loc,
		StoreTimeout:    cfg.StoreTimeout,
		DefaultDuration: cfg.CalendarDefaultSlot,
	}, nil
}

type appointmentQueriesImpl struct {
	repo     AppointmentViewRepo
	settings Settings
	metrics  *metrics.SchedulingMetrics
}

func NewAppointmentQueries(repo AppointmentViewRepo, settings Settings, m *metrics.SchedulingMetrics) AppointmentQueries {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.StoreTimeout <= 0 {
		settings.StoreTimeout = 5 * time.Second
	}
	if settings.DefaultDuration <= 0 {
		settings.DefaultDuration = 30 * time.Minute
	}
	return &appointmentQueriesImpl{repo: repo, settings: settings, metrics: m}
}

func (q *appointmentQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, rng DateRange) ([]AppointmentView, error) {
	if err := rng.validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, q.settings.StoreTimeout)
	defer cancel()

	records, err := q.repo.ListByOwner(ctx, ownerID, rng)
	if err != nil {
		return nil, q.storeError(err)
	}
	return q.toViews(records)
}

func (q *appointmentQueriesImpl) ListForClinic(ctx context.Context, clinicID int64, rng DateRange) ([]AppointmentView, error) {
	if err := rng.validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, q.settings.StoreTimeout)
	defer cancel()

	records, err := q.repo.ListByClinic(ctx, clinicID, rng)
	if err != nil {
		return nil, q.storeError(err)
	}
	return q.toViews(records)
}

func (q *appointmentQueriesImpl) CalendarForOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]CalendarItem, error) {
	start, end, err := q.window(from, to)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, q.settings.StoreTimeout)
	defer cancel()

	records, err := q.repo.ConfirmedByOwner(ctx, ownerID, start, end)
	if err != nil {
		return nil, q.storeError(err)
	}
	return q.layout(records, start, end), nil
}

func (q *appointmentQueriesImpl) CalendarForClinic(ctx context.Context, clinicID int64, from, to time.Time) ([]CalendarItem, error) {
	start, end, err := q.window(from, to)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, q.settings.StoreTimeout)
	defer cancel()

	records, err := q.repo.ConfirmedByClinic(ctx, clinicID, start, end)
	if err != nil {
		return nil, q.storeError(err)
	}
	return q.layout(records, start, end), nil
}

// window turns two calendar days into the instants that bound them locally.
func (q *appointmentQueriesImpl) window(from, to time.Time) (time.Time, time.Time, error) {
	loc := q.settings.Location
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, loc)
	end := time.Date(ty, tm, td, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	if end.Before(start) {
		return time.Time{}, time.Time{}, errs.Mark(ErrInvalidDateRange, errs.ErrValidation)
	}
	return start, end, nil
}

func (q *appointmentQueriesImpl) layout(records []ConfirmedRecord, start, end time.Time) []CalendarItem {
	loc := q.settings.Location
	began := time.Now()

	entries := make([]calendar.Entry, len(records))
	for i, rec := range records {
		d := q.settings.DefaultDuration
		if rec.Duration != nil && *rec.Duration > 0 {
			d = *rec.Duration
		}
		entries[i] = calendar.Entry{Start: rec.Start.In(loc), Duration: d}
	}
	slots := calendar.Layout(entries, start, end)
	q.metrics.ObserveLayout(time.Since(began).Seconds())

	items := make([]CalendarItem, 0, len(slots))
	for _, s := range slots {
		rec, e := records[s.Index], entries[s.Index]
		items = append(items, CalendarItem{
			ID:        rec.ID,
			Mascota:   rec.PetName,
			Servicio:  deref(rec.ServiceName),
			Inicio:    interval.ToLocalNaive(e.Start, loc),
			Fin:       interval.ToLocalNaive(e.Start.Add(e.Duration), loc),
			LaneIndex: s.LaneIndex,
			LaneCount: s.LaneCount,
		})
	}
	return items
}

func (q *appointmentQueriesImpl) toViews(records []AppointmentRecord) ([]AppointmentView, error) {
	views := make([]AppointmentView, 0, len(records))
	for _, rec := range records {
		label, err := rec.Status.Label()
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "appointment "+rec.Status.String()), ErrUndisplayable)
		}
		v := AppointmentView{
			ID:             rec.ID,
			Mascota:        rec.PetName,
			Servicio:       deref(rec.ServiceName),
			FechaPreferida: interval.FormatDisplayDate(rec.RequestedDate),
			Estado:         label.String(),
			Detalles: AppointmentDetails{
				Telefono: deref(rec.ContactPhone),
				Motivo:   rec.Notes,
			},
		}
		if rec.ConfirmedAt != nil {
			s := interval.FormatDisplayDateTime(*rec.ConfirmedAt, q.settings.Location)
			v.HorarioConfirmado = &s
		}
		views = append(views, v)
	}
	return views, nil
}

func (q *appointmentQueriesImpl) storeError(err error) error {
	if kind, ok := infra.KindOf(err); ok {
		q.metrics.ObserveStoreError(string(kind))
	}
	return shared.TranslateStoreError(err, nil)
}

func (r DateRange) validate() error {
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return errs.Mark(ErrInvalidDateRange, errs.ErrValidation)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
