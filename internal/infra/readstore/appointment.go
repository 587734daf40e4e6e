package readstore

import (
	"context"
	"time"

	"vet-scheduler/internal/domain/appointment"
	"vet-scheduler/internal/infra"
	"vet-scheduler/internal/infra/repository/converter"
	sqlc "vet-scheduler/internal/infra/sqlc/generated"
	"vet-scheduler/internal/pkg/pgconv"
	"vet-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentViewQueries interface {
	ListCitasByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCitasByOwnerParams) ([]sqlc.ListCitasByOwnerRow, error)
	ListCitasByClinic(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCitasByClinicParams) ([]sqlc.ListCitasByClinicRow, error)
	ListConfirmedByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConfirmedByOwnerParams) ([]sqlc.ListConfirmedByOwnerRow, error)
	ListConfirmedByClinic(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConfirmedByClinicParams) ([]sqlc.ListConfirmedByClinicRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, rng queries.DateRange) ([]queries.AppointmentRecord, error) {
	rows, err := r.queries.ListCitasByOwner(ctx, r.db, sqlc.ListCitasByOwnerParams{
		UsuarioID: ownerID,
		Desde:     pgconv.DatePtrToPgtype(rng.From),
		Hasta:     pgconv.DatePtrToPgtype(rng.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list citas by owner", err)
	}

	records := make([]queries.AppointmentRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toRecord(listRow(row))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *AppointmentReadStore) ListByClinic(ctx context.Context, clinicID int64, rng queries.DateRange) ([]queries.AppointmentRecord, error) {
	rows, err := r.queries.ListCitasByClinic(ctx, r.db, sqlc.ListCitasByClinicParams{
		VeterinariaID: clinicID,
		Desde:         pgconv.DatePtrToPgtype(rng.From),
		Hasta:         pgconv.DatePtrToPgtype(rng.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list citas by clinic", err)
	}

	records := make([]queries.AppointmentRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toRecord(listRow(row))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *AppointmentReadStore) ConfirmedByOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]queries.ConfirmedRecord, error) {
	rows, err := r.queries.ListConfirmedByOwner(ctx, r.db, sqlc.ListConfirmedByOwnerParams{
		UsuarioID: ownerID,
		Desde:     pgconv.TimeToPgtype(from),
		Hasta:     pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed citas by owner", err)
	}

	records := make([]queries.ConfirmedRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toConfirmed(confirmedRow(row)))
	}
	return records, nil
}

func (r *AppointmentReadStore) ConfirmedByClinic(ctx context.Context, clinicID int64, from, to time.Time) ([]queries.ConfirmedRecord, error) {
	rows, err := r.queries.ListConfirmedByClinic(ctx, r.db, sqlc.ListConfirmedByClinicParams{
		VeterinariaID: clinicID,
		Desde:         pgconv.TimeToPgtype(from),
		Hasta:         pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed citas by clinic", err)
	}

	records := make([]queries.ConfirmedRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toConfirmed(confirmedRow(row)))
	}
	return records, nil
}

// listRow and confirmedRow are the shared shapes of the owner and clinic
// variants; sqlc emits one row type per query.
type listRow struct {
	ID                int64
	VeterinariaID     int64
	FechaPreferida    pgtype.Date
	HorarioConfirmado pgtype.Timestamptz
	Status            string
	TelefonoContacto  pgtype.Text
	Notas             string
	Origen            string
	MascotaNombre     string
	ServicioNombre    pgtype.Text
}

type confirmedRow struct {
	ID                int64
	HorarioConfirmado pgtype.Timestamptz
	MascotaNombre     string
	ServicioNombre    pgtype.Text
	DuracionMinutos   pgtype.Int4
}

func toRecord(row listRow) (queries.AppointmentRecord, error) {
	status, notes, _, err := converter.DecodeStatus(row.Status, row.Notas)
	if err != nil {
		return queries.AppointmentRecord{}, infra.WrapRepoErr("stored cita is not decodable", err, infra.KindDBFailure)
	}
	return queries.AppointmentRecord{
		ID:            row.ID,
		ClinicID:      row.VeterinariaID,
		PetName:       row.MascotaNombre,
		ServiceName:   pgconv.StringPtrFromPgtype(row.ServicioNombre),
		RequestedDate: pgconv.DateFromPgtype(row.FechaPreferida),
		ConfirmedAt:   pgconv.TimePtrFromPgtype(row.HorarioConfirmado),
		Status:        status,
		ContactPhone:  pgconv.StringPtrFromPgtype(row.TelefonoContacto),
		Notes:         notes,
		Origin:        appointment.ParseOrigin(row.Origen),
	}, nil
}

func toConfirmed(row confirmedRow) queries.ConfirmedRecord {
	rec := queries.ConfirmedRecord{
		ID:          row.ID,
		Start:       pgconv.TimeFromPgtype(row.HorarioConfirmado),
		PetName:     row.MascotaNombre,
		ServiceName: pgconv.StringPtrFromPgtype(row.ServicioNombre),
	}
	if row.DuracionMinutos.Valid && row.DuracionMinutos.Int32 > 0 {
		d := time.Duration(row.DuracionMinutos.Int32) * time.Minute
		rec.Duration = &d
	}
	return rec
}
