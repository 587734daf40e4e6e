//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"vet-scheduler/internal/domain/appointment"
	"vet-scheduler/internal/infra"
	"vet-scheduler/internal/pkg/errs"
	"vet-scheduler/internal/pkg/ptr"
	"vet-scheduler/internal/usecase/queries"
	queriesmock "vet-scheduler/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var bogota = time.FixedZone("COT", -5*60*60)

func newQueries(t *testing.T) (queries.AppointmentQueries, *queriesmock.MockAppointmentViewRepo) {
	t.Helper()
	repo := queriesmock.NewMockAppointmentViewRepo(gomock.NewController(t))
	q := queries.NewAppointmentQueries(repo, queries.Settings{
		Location:        bogota,
		StoreTimeout:    time.Second,
		DefaultDuration: 30 * time.Minute,
	}, nil)
	return q, repo
}

func TestListForOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("renders display fields", func(t *testing.T) {
		q, repo := newQueries(t)
		confirmed := time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC)

		repo.EXPECT().ListByOwner(gomock.Any(), ownerID, queries.DateRange{}).Return([]queries.AppointmentRecord{
			{
				ID:            42,
				ClinicID:      7,
				PetName:       "Luna",
				ServiceName:   ptr.Of("Vacunación"),
				RequestedDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				ConfirmedAt:   &confirmed,
				Status:        appointment.StatusCompleted,
				ContactPhone:  ptr.Of("3001234567"),
				Notes:         "Revisión anual",
			},
			{
				ID:            43,
				PetName:       "Max",
				RequestedDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
				Status:        appointment.StatusCancelled,
			},
		}, nil)

		got, err := q.ListForOwner(ctx, ownerID, queries.DateRange{})
		require.NoError(t, err)

		want := []queries.AppointmentView{
			{
				ID:                42,
				Mascota:           "Luna",
				Servicio:          "Vacunación",
				FechaPreferida:    "10/03/2025",
				HorarioConfirmado: ptr.Of("12/03/2025 09:30"),
				Estado:            "Terminada",
				Detalles:          queries.AppointmentDetails{Telefono: "3001234567", Motivo: "Revisión anual"},
			},
			{
				ID:             43,
				Mascota:        "Max",
				FechaPreferida: "11/03/2025",
				Estado:         "Rechazada",
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("views mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		q, _ := newQueries(t)
		from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, -1)

		_, err := q.ListForOwner(ctx, ownerID, queries.DateRange{From: &from, To: &to})
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("store timeout", func(t *testing.T) {
		q, repo := newQueries(t)
		repo.EXPECT().ListByOwner(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to list citas by owner", context.DeadlineExceeded))

		_, err := q.ListForOwner(ctx, ownerID, queries.DateRange{})
		assert.True(t, errs.Is(err, errs.ErrStoreTimeout))
	})
}

func TestListForClinic(t *testing.T) {
	q, repo := newQueries(t)
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rng := queries.DateRange{From: &from}

	repo.EXPECT().ListByClinic(gomock.Any(), int64(7), rng).Return(nil, nil)

	got, err := q.ListForClinic(context.Background(), 7, rng)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCalendarForClinic(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return time.Date(2025, 3, 12, h, m, 0, 0, bogota).UTC() }

	t.Run("lays out overlapping visits side by side", func(t *testing.T) {
		q, repo := newQueries(t)
		hour := time.Hour

		repo.EXPECT().ConfirmedByClinic(gomock.Any(), int64(7),
			time.Date(2025, 3, 12, 0, 0, 0, 0, bogota),
			time.Date(2025, 3, 12, 23, 59, 59, 999999999, bogota),
		).Return([]queries.ConfirmedRecord{
			{ID: 1, Start: at(9, 0), PetName: "Luna", ServiceName: ptr.Of("Vacunación"), Duration: &hour},
			{ID: 2, Start: at(9, 30), PetName: "Max"},
			{ID: 3, Start: at(11, 0), PetName: "Kira"},
		}, nil)

		got, err := q.CalendarForClinic(ctx, 7, day, day)
		require.NoError(t, err)

		want := []queries.CalendarItem{
			{ID: 1, Mascota: "Luna", Servicio: "Vacunación", Inicio: "2025-03-12T09:00", Fin: "2025-03-12T10:00", LaneIndex: 0, LaneCount: 2},
			{ID: 2, Mascota: "Max", Inicio: "2025-03-12T09:30", Fin: "2025-03-12T10:00", LaneIndex: 1, LaneCount: 2},
			{ID: 3, Mascota: "Kira", Inicio: "2025-03-12T11:00", Fin: "2025-03-12T11:30", LaneIndex: 0, LaneCount: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("calendar mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("hasta before desde", func(t *testing.T) {
		q, _ := newQueries(t)

		_, err := q.CalendarForClinic(ctx, 7, day, day.AddDate(0, 0, -1))
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, errs.Is(err, queries.ErrInvalidDateRange))
	})
}

func TestCalendarForOwner(t *testing.T) {
	q, repo := newQueries(t)
	ownerID := uuid.New()
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().ConfirmedByOwner(gomock.Any(), ownerID, gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("failed to list confirmed citas", assert.AnError, infra.KindUnavailable))

	_, err := q.CalendarForOwner(context.Background(), ownerID, day, day.AddDate(0, 0, 6))
	assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
}
