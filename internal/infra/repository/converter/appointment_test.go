//go:build unit

package converter_test

import (
	"strings"
	"testing"
	"time"

	"vet-scheduler/internal/domain/appointment"
	"vet-scheduler/internal/infra/repository/converter"
	"vet-scheduler/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStatus(t *testing.T) {
	cases := []struct {
		name      string
		status    appointment.Status
		notes     string
		marks     int
		wantState string
		wantNotes string
	}{
		{name: "pending", status: appointment.StatusPending, notes: "vomita", wantState: "pending", wantNotes: "vomita"},
		{name: "confirmed", status: appointment.StatusConfirmed, notes: "vomita", wantState: "confirmed", wantNotes: "vomita"},
		{name: "cancelled", status: appointment.StatusCancelled, notes: "vomita", wantState: "cancelled", wantNotes: "vomita"},
		{name: "completed once", status: appointment.StatusCompleted, notes: "vomita", marks: 1, wantState: "cancelled", wantNotes: "vomita #COMPLETED"},
		{name: "completed twice", status: appointment.StatusCompleted, notes: "vomita", marks: 2, wantState: "cancelled", wantNotes: "vomita #COMPLETED #COMPLETED"},
		{name: "completed with empty notes", status: appointment.StatusCompleted, marks: 1, wantState: "cancelled", wantNotes: " #COMPLETED"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			state, notes := converter.EncodeStatus(c.status, c.notes, c.marks)
			assert.Equal(t, c.wantState, state)
			assert.Equal(t, c.wantNotes, notes)
		})
	}
}

func TestDecodeStatus(t *testing.T) {
	t.Run("round trip for every status", func(t *testing.T) {
		for _, s := range appointment.Statuses() {
			marks := 0
			if s == appointment.StatusCompleted {
				marks = 3
			}
			state, notes := converter.EncodeStatus(s, "control anual", marks)

			got, gotNotes, gotMarks, err := converter.DecodeStatus(state, notes)
			require.NoError(t, err)
			assert.Equal(t, s, got)
			assert.Equal(t, "control anual", gotNotes)
			assert.Equal(t, marks, gotMarks)
		}
	})

	t.Run("marker on a non-cancelled row is plain text", func(t *testing.T) {
		got, notes, marks, err := converter.DecodeStatus("pending", "dijo #COMPLETED")
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusPending, got)
		assert.Equal(t, "dijo #COMPLETED", notes)
		assert.Zero(t, marks)
	})

	t.Run("unknown stored status", func(t *testing.T) {
		_, _, _, err := converter.DecodeStatus("completed", "")
		assert.ErrorIs(t, err, appointment.ErrInvalidStatus)
	})
}

func TestAppointmentToInsertParams(t *testing.T) {
	a, err := builder.NewAppointmentBuilder().
		With(func(b *builder.AppointmentBuilder) { b.Notes = "cojea #COMPLETED" }).
		BuildDomain()
	require.NoError(t, err)

	p := converter.AppointmentToInsertParams(a)

	assert.Equal(t, "pending", p.Status)
	assert.Equal(t, "cojea", p.Notas)
	assert.Equal(t, a.OwnerID(), p.UsuarioID)
	assert.Equal(t, a.PetID(), p.MascotaID)
	assert.Equal(t, a.ClinicID(), p.VeterinariaID)
	assert.True(t, p.FechaPreferida.Valid)
	assert.False(t, p.HorarioConfirmado.Valid)
	assert.Equal(t, "web", p.Origen)
}

func TestAppointmentFromRow(t *testing.T) {
	confirmed := time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC)
	row := builder.NewAppointmentBuilder().
		WithID(42).
		WithStatus(appointment.StatusCompleted).
		WithConfirmedAt(&confirmed).
		With(func(b *builder.AppointmentBuilder) { b.CompletionMarks = 2 }).
		BuildRow()

	assert.Equal(t, "cancelled", row.Status)

	a, err := converter.AppointmentFromRow(row)
	require.NoError(t, err)

	assert.Equal(t, int64(42), a.ID())
	assert.Equal(t, appointment.StatusCompleted, a.Status())
	assert.Equal(t, 2, a.CompletionMarks())
	assert.NotContains(t, a.Notes(), converter.CompletionMarker)
	require.NotNil(t, a.ConfirmedAt())
	assert.True(t, confirmed.Equal(*a.ConfirmedAt()))

	t.Run("update params write the marks back", func(t *testing.T) {
		require.NoError(t, a.Transition(appointment.StatusCompleted, nil, confirmed))
		p := converter.AppointmentToCASParams(a, a.Version())

		assert.Equal(t, "cancelled", p.Status)
		assert.Equal(t, 3, strings.Count(p.Notas, converter.CompletionMarker))
		assert.Equal(t, a.Version(), p.Version)
	})
}
