//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"vet-scheduler/internal/domain/appointment"
	"vet-scheduler/internal/infra"
	"vet-scheduler/internal/infra/readstore"
	sqlc "vet-scheduler/internal/infra/sqlc/generated"
	"vet-scheduler/internal/pkg/pgconv"
	"vet-scheduler/internal/pkg/ptr"
	"vet-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentViewQueries struct {
	mock.Mock
}

func (m *MockAppointmentViewQueries) ListCitasByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCitasByOwnerParams) ([]sqlc.ListCitasByOwnerRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListCitasByOwnerRow), args.Error(1)
}

func (m *MockAppointmentViewQueries) ListCitasByClinic(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCitasByClinicParams) ([]sqlc.ListCitasByClinicRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListCitasByClinicRow), args.Error(1)
}

func (m *MockAppointmentViewQueries) ListConfirmedByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConfirmedByOwnerParams) ([]sqlc.ListConfirmedByOwnerRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListConfirmedByOwnerRow), args.Error(1)
}

func (m *MockAppointmentViewQueries) ListConfirmedByClinic(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConfirmedByClinicParams) ([]sqlc.ListConfirmedByClinicRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListConfirmedByClinicRow), args.Error(1)
}

func TestAppointmentReadStore_ListByOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success: completion is decoded and the marker stripped", func(t *testing.T) {
		q := new(MockAppointmentViewQueries)
		rows := []sqlc.ListCitasByOwnerRow{
			{
				ID: 1, VeterinariaID: 7, FechaPreferida: pgconv.DateToPgtype(day),
				Status: "cancelled", Notas: "control #COMPLETED", Origen: "mobile",
				MascotaNombre: "Luna", ServicioNombre: pgtype.Text{String: "Consulta General", Valid: true},
			},
			{
				ID: 2, VeterinariaID: 7, FechaPreferida: pgconv.DateToPgtype(day),
				Status: "cancelled", Notas: "no vino", Origen: "web",
				MascotaNombre: "Toby",
			},
		}
		q.On("ListCitasByOwner", ctx, mock.Anything, sqlc.ListCitasByOwnerParams{UsuarioID: ownerID}).Return(rows, nil)

		store := readstore.NewAppointmentReadStore(q, nil)
		got, err := store.ListByOwner(ctx, ownerID, queries.DateRange{})
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, appointment.StatusCompleted, got[0].Status)
		assert.Equal(t, "control", got[0].Notes)
		assert.Equal(t, "Consulta General", *got[0].ServiceName)
		assert.Equal(t, appointment.OriginMobile, got[0].Origin)
		assert.True(t, day.Equal(got[0].RequestedDate))

		assert.Equal(t, appointment.StatusCancelled, got[1].Status)
		assert.Nil(t, got[1].ServiceName)
		q.AssertExpectations(t)
	})

	t.Run("range bounds are passed as dates", func(t *testing.T) {
		q := new(MockAppointmentViewQueries)
		from := day
		to := day.AddDate(0, 0, 7)
		q.On("ListCitasByOwner", ctx, mock.Anything, mock.MatchedBy(func(p sqlc.ListCitasByOwnerParams) bool {
			return p.Desde.Valid && p.Hasta.Valid && p.Hasta.Time.Sub(p.Desde.Time) == 7*24*time.Hour
		})).Return([]sqlc.ListCitasByOwnerRow{}, nil)

		store := readstore.NewAppointmentReadStore(q, nil)
		got, err := store.ListByOwner(ctx, ownerID, queries.DateRange{From: &from, To: &to})
		require.NoError(t, err)
		assert.Empty(t, got)
		q.AssertExpectations(t)
	})

	t.Run("error: database failure", func(t *testing.T) {
		q := new(MockAppointmentViewQueries)
		q.On("ListCitasByOwner", ctx, mock.Anything, mock.Anything).Return([]sqlc.ListCitasByOwnerRow(nil), assert.AnError)

		store := readstore.NewAppointmentReadStore(q, nil)
		_, err := store.ListByOwner(ctx, ownerID, queries.DateRange{})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: unknown stored status", func(t *testing.T) {
		q := new(MockAppointmentViewQueries)
		q.On("ListCitasByOwner", ctx, mock.Anything, mock.Anything).Return([]sqlc.ListCitasByOwnerRow{{ID: 3, Status: "archived"}}, nil)

		store := readstore.NewAppointmentReadStore(q, nil)
		_, err := store.ListByOwner(ctx, ownerID, queries.DateRange{})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestAppointmentReadStore_ConfirmedByClinic(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC)
	from := time.Date(2025, 3, 12, 5, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	q := new(MockAppointmentViewQueries)
	q.On("ListConfirmedByClinic", ctx, mock.Anything, sqlc.ListConfirmedByClinicParams{
		VeterinariaID: 7,
		Desde:         pgconv.TimeToPgtype(from),
		Hasta:         pgconv.TimeToPgtype(to),
	}).Return([]sqlc.ListConfirmedByClinicRow{
		{ID: 42, HorarioConfirmado: pgconv.TimeToPgtype(start), MascotaNombre: "Luna", DuracionMinutos: pgtype.Int4{Int32: 45, Valid: true}},
		{ID: 43, HorarioConfirmado: pgconv.TimeToPgtype(start), MascotaNombre: "Toby"},
	}, nil)

	store := readstore.NewAppointmentReadStore(q, nil)
	got, err := store.ConfirmedByClinic(ctx, 7, from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, ptr.Of(45*time.Minute), got[0].Duration)
	assert.True(t, start.Equal(got[0].Start))
	assert.Nil(t, got[1].Duration)
	q.AssertExpectations(t)
}
