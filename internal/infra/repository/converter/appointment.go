package converter

import (
	"strings"

	"vet-scheduler/internal/domain/appointment"
	sqlc "vet-scheduler/internal/infra/sqlc/generated"
	"vet-scheduler/internal/pkg/pgconv"
)

// CompletionMarker tags a cancelled row as completed. The store has no
// completed status, so the marker in notas is the only record of it.
const CompletionMarker = "#COMPLETED"

const (
	storedPending   = "pending"
	storedConfirmed = "confirmed"
	storedCancelled = "cancelled"
)

// EncodeStatus maps a domain status to the stored status and notes. Completed
// is stored as cancelled with one marker appended per completion.
func EncodeStatus(status appointment.Status, notes string, marks int) (string, string) {
	switch status {
	case appointment.StatusPending:
		return storedPending, notes
	case appointment.StatusConfirmed:
		return storedConfirmed, notes
	case appointment.StatusCompleted:
		if marks < 1 {
			marks = 1
		}
		return storedCancelled, notes + strings.Repeat(" "+CompletionMarker, marks)
	default:
		return storedCancelled, notes
	}
}

// DecodeStatus is the inverse of EncodeStatus. Markers only count on
// cancelled rows; any other row keeps its notes untouched.
func DecodeStatus(stored, notes string) (appointment.Status, string, int, error) {
	switch stored {
	case storedPending:
		return appointment.StatusPending, notes, 0, nil
	case storedConfirmed:
		return appointment.StatusConfirmed, notes, 0, nil
	case storedCancelled:
		marks := strings.Count(notes, CompletionMarker)
		if marks == 0 {
			return appointment.StatusCancelled, notes, 0, nil
		}
		return appointment.StatusCompleted, StripMarkers(notes), marks, nil
	default:
		return "", "", 0, appointment.ErrInvalidStatus
	}
}

// StripMarkers removes every completion marker from notes.
func StripMarkers(notes string) string {
	notes = strings.ReplaceAll(notes, " "+CompletionMarker, "")
	return strings.ReplaceAll(notes, CompletionMarker, "")
}

func AppointmentToInsertParams(a *appointment.Appointment) sqlc.InsertCitaParams {
	status, notes := EncodeStatus(a.Status(), StripMarkers(a.Notes()), a.CompletionMarks())
	return sqlc.InsertCitaParams{
		UsuarioID:         a.OwnerID(),
		MascotaID:         a.PetID(),
		VeterinariaID:     a.ClinicID(),
		ServicioID:        pgconv.Int64PtrToPgtype(a.ServiceID()),
		FechaPreferida:    pgconv.DateToPgtype(a.RequestedDate()),
		HorarioConfirmado: pgconv.TimePtrToPgtype(a.ConfirmedAt()),
		Status:            status,
		TelefonoContacto:  pgconv.StringPtrToPgtype(a.ContactPhone()),
		Notas:             notes,
		Origen:            a.Origin().String(),
		CreatedAt:         pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToUpdateParams(a *appointment.Appointment) sqlc.UpdateCitaStatusParams {
	status, notes := EncodeStatus(a.Status(), a.Notes(), a.CompletionMarks())
	return sqlc.UpdateCitaStatusParams{
		ID:                a.ID(),
		Status:            status,
		HorarioConfirmado: pgconv.TimePtrToPgtype(a.ConfirmedAt()),
		Notas:             notes,
		UpdatedAt:         pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToCASParams(a *appointment.Appointment, expectedVersion int32) sqlc.UpdateCitaStatusIfVersionParams {
	p := AppointmentToUpdateParams(a)
	return sqlc.UpdateCitaStatusIfVersionParams{
		ID:                p.ID,
		Status:            p.Status,
		HorarioConfirmado: p.HorarioConfirmado,
		Notas:             p.Notas,
		UpdatedAt:         p.UpdatedAt,
		Version:           expectedVersion,
	}
}

func AppointmentFromRow(row sqlc.Citas) (*appointment.Appointment, error) {
	status, notes, marks, err := DecodeStatus(row.Status, row.Notas)
	if err != nil {
		return nil, err
	}
	return appointment.ReconstructAppointment(
		row.ID,
		row.UsuarioID,
		row.MascotaID,
		row.VeterinariaID,
		pgconv.Int64PtrFromPgtype(row.ServicioID),
		pgconv.DateFromPgtype(row.FechaPreferida),
		pgconv.TimePtrFromPgtype(row.HorarioConfirmado),
		status,
		pgconv.StringPtrFromPgtype(row.TelefonoContacto),
		notes,
		marks,
		appointment.ParseOrigin(row.Origen),
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
