package repository

import (
	"context"

	"vet-scheduler/internal/domain/appointment"
	"vet-scheduler/internal/infra"
	"vet-scheduler/internal/infra/repository/converter"
	sqlc "vet-scheduler/internal/infra/sqlc/generated"
	"vet-scheduler/internal/pkg/pgconv"
)

type AppointmentWriteQueries interface {
	InsertCita(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCitaParams) (int64, error)
	LatestCitaID(ctx context.Context, db sqlc.DBTX, arg sqlc.LatestCitaIDParams) (int64, error)
	GetCitaByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Citas, error)
	UpdateCitaStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCitaStatusParams) (int64, error)
	UpdateCitaStatusIfVersion(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCitaStatusIfVersionParams) (int64, error)
	DeleteCita(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
}

func NewAppointmentRepository(queries AppointmentWriteQueries) *AppointmentRepository {
	return &AppointmentRepository{queries: queries}
}

// Create inserts a and returns the store-assigned id. When the insert yields
// no id row the newest cita for the same owner, pet and creation time is used.
func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (int64, error) {
	params := converter.AppointmentToInsertParams(a)
	id, err := r.queries.InsertCita(ctx, tx, params)
	if err == nil {
		return id, nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to insert cita", err)
	}

	id, err = r.queries.LatestCitaID(ctx, tx, sqlc.LatestCitaIDParams{
		UsuarioID: params.UsuarioID,
		MascotaID: params.MascotaID,
		CreatedAt: params.CreatedAt,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("inserted cita id not found", err, infra.KindDBFailure)
		}
		return 0, infra.WrapRepoErr("failed to look up inserted cita id", err)
	}
	return id, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*appointment.Appointment, error) {
	row, err := r.queries.GetCitaByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cita not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cita by id", err)
	}
	a, err := converter.AppointmentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored cita is not decodable", err, infra.KindDBFailure)
	}
	return a, nil
}

// Update writes status, confirmed time and notes unconditionally.
func (r *AppointmentRepository) Update(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	n, err := r.queries.UpdateCitaStatus(ctx, tx, converter.AppointmentToUpdateParams(a))
	if err != nil {
		return infra.WrapRepoErr("failed to update cita status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("cita not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) CompareAndSwap(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment, expectedVersion int32) (bool, error) {
	n, err := r.queries.UpdateCitaStatusIfVersion(ctx, tx, converter.AppointmentToCASParams(a, expectedVersion))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update cita status", err)
	}
	return n == 1, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteCita(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete cita", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("cita not found", nil, infra.KindNotFound)
	}
	return nil
}
