package readstore

import (
	"context"
	"time"

	"vet-scheduler/internal/infra"
	sqlc "vet-scheduler/internal/infra/sqlc/generated"
	"vet-scheduler/internal/pkg/pgconv"
	"vet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	FindPetsByOwnerAndName(ctx context.Context, db sqlc.DBTX, arg sqlc.FindPetsByOwnerAndNameParams) ([]sqlc.Mascotas, error)
	FindServiceByClinicAndName(ctx context.Context, db sqlc.DBTX, arg sqlc.FindServiceByClinicAndNameParams) (sqlc.Servicios, error)
}

// CatalogReadStore resolves pets and services by name for the booking path.
type CatalogReadStore struct {
	queries CatalogQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// PetsByOwnerAndName returns every case-insensitive match, lowest id first.
func (r *CatalogReadStore) PetsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) ([]shared.PetSnapshot, error) {
	rows, err := r.queries.FindPetsByOwnerAndName(ctx, r.db, sqlc.FindPetsByOwnerAndNameParams{
		UsuarioID: ownerID,
		Nombre:    name,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pets by owner and name", err)
	}

	pets := make([]shared.PetSnapshot, 0, len(rows))
	for _, row := range rows {
		pets = append(pets, shared.PetSnapshot{
			ID:      row.ID,
			OwnerID: row.UsuarioID,
			Name:    row.Nombre,
		})
	}
	return pets, nil
}

func (r *CatalogReadStore) ServiceByClinicAndName(ctx context.Context, clinicID int64, name string) (*shared.ServiceSnapshot, error) {
	row, err := r.queries.FindServiceByClinicAndName(ctx, r.db, sqlc.FindServiceByClinicAndNameParams{
		VeterinariaID: clinicID,
		Nombre:        name,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find service by clinic and name", err)
	}

	snap := &shared.ServiceSnapshot{
		ID:       row.ID,
		ClinicID: row.VeterinariaID,
		Name:     row.Nombre,
	}
	if row.DuracionMinutos.Valid && row.DuracionMinutos.Int32 > 0 {
		d := time.Duration(row.DuracionMinutos.Int32) * time.Minute
		snap.Duration = &d
	}
	return snap, nil
}
