//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"vet-scheduler/internal/infra"
	"vet-scheduler/internal/infra/readstore"
	sqlc "vet-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogReadStore_PetsByOwnerAndName(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	created := pgtype.Timestamptz{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	columns := []string{"id", "usuario_id", "nombre", "especie", "created_at"}

	t.Run("success: every match in id order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM mascotas").
			WithArgs(ownerID, "luna").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(11), ownerID, "Luna", pgtype.Text{String: "perro", Valid: true}, created).
				AddRow(int64(12), ownerID, "LUNA", pgtype.Text{}, created))

		store := readstore.NewCatalogReadStore(sqlc.New(), mock)
		pets, err := store.PetsByOwnerAndName(ctx, ownerID, "luna")
		require.NoError(t, err)
		require.Len(t, pets, 2)
		assert.Equal(t, int64(11), pets[0].ID)
		assert.Equal(t, "Luna", pets[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: no match is an empty slice", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM mascotas").WithArgs(ownerID, "Max").WillReturnRows(pgxmock.NewRows(columns))

		store := readstore.NewCatalogReadStore(sqlc.New(), mock)
		pets, err := store.PetsByOwnerAndName(ctx, ownerID, "Max")
		require.NoError(t, err)
		assert.Empty(t, pets)
	})
}

func TestCatalogReadStore_ServiceByClinicAndName(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "veterinaria_id", "nombre", "duracion_minutos", "created_at"}
	created := pgtype.Timestamptz{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true}

	t.Run("success: duration in minutes", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM servicios").
			WithArgs(int64(7), "consulta general").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(3), int64(7), "Consulta General", pgtype.Int4{Int32: 30, Valid: true}, created))

		store := readstore.NewCatalogReadStore(sqlc.New(), mock)
		svc, err := store.ServiceByClinicAndName(ctx, 7, "consulta general")
		require.NoError(t, err)
		require.NotNil(t, svc)
		assert.Equal(t, int64(3), svc.ID)
		require.NotNil(t, svc.Duration)
		assert.Equal(t, 30*time.Minute, *svc.Duration)
	})

	t.Run("unresolved service is nil without error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM servicios").WithArgs(int64(7), "Peluquería").WillReturnError(pgx.ErrNoRows)

		store := readstore.NewCatalogReadStore(sqlc.New(), mock)
		svc, err := store.ServiceByClinicAndName(ctx, 7, "Peluquería")
		require.NoError(t, err)
		assert.Nil(t, svc)
	})

	t.Run("error: timeout", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM servicios").WithArgs(int64(7), "Baño").WillReturnError(context.DeadlineExceeded)

		store := readstore.NewCatalogReadStore(sqlc.New(), mock)
		_, err = store.ServiceByClinicAndName(ctx, 7, "Baño")
		assert.True(t, infra.IsKind(err, infra.KindTimeout))
	})
}
