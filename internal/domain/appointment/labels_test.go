//go:build unit

package appointment_test

import (
	"testing"

	"vet-scheduler/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromLabel(t *testing.T) {
	cases := []struct {
		label string
		want  appointment.Status
		errIs error
	}{
		{label: "Confirmada", want: appointment.StatusConfirmed},
		{label: "Rechazada", want: appointment.StatusCancelled},
		{label: "Cancelada", want: appointment.StatusCancelled},
		{label: "Terminada", want: appointment.StatusCompleted},
		{label: "Pendiente", errIs: appointment.ErrUnknownLabel},
		{label: "confirmada", errIs: appointment.ErrUnknownLabel},
		{label: "confirmed", errIs: appointment.ErrUnknownLabel},
		{label: "", errIs: appointment.ErrUnknownLabel},
	}

	for _, c := range cases {
		t.Run(c.label, func(t *testing.T) {
			got, err := appointment.StatusFromLabel(c.label)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestStatusLabel(t *testing.T) {
	t.Run("every status has a label", func(t *testing.T) {
		for _, s := range appointment.Statuses() {
			l, err := s.Label()
			require.NoError(t, err, s.String())
			assert.NotEmpty(t, l.String())
		}
	})

	t.Run("cancelled reads as rejected and completed as finished", func(t *testing.T) {
		l, err := appointment.StatusCancelled.Label()
		require.NoError(t, err)
		assert.Equal(t, appointment.LabelRejected, l)

		l, err = appointment.StatusCompleted.Label()
		require.NoError(t, err)
		assert.Equal(t, appointment.LabelCompleted, l)
	})

	t.Run("unknown status fails closed", func(t *testing.T) {
		_, err := appointment.Status("archived").Label()
		assert.ErrorIs(t, err, appointment.ErrUnmappedStatus)
	})

	t.Run("accepted labels map back to a status with a label", func(t *testing.T) {
		for _, l := range []appointment.Label{
			appointment.LabelConfirmed,
			appointment.LabelRejected,
			appointment.LabelCancelled,
			appointment.LabelCompleted,
		} {
			s, err := appointment.StatusFromLabel(l.String())
			require.NoError(t, err)
			_, err = s.Label()
			assert.NoError(t, err)
		}
	})
}

func TestParseOrigin(t *testing.T) {
	assert.Equal(t, appointment.OriginMobile, appointment.ParseOrigin("mobile"))
	assert.Equal(t, appointment.OriginWeb, appointment.ParseOrigin("web"))
	assert.Equal(t, appointment.OriginWeb, appointment.ParseOrigin(""))
	assert.Equal(t, appointment.OriginWeb, appointment.ParseOrigin("kiosk"))
}
