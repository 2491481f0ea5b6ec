package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestConfirm_FromPending(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Confirm(ap))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestDecline_FromPending(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	now := time.Now()

	require.NoError(t, Decline(ap, now))
	assert.Equal(t, string(StatusDeclined), ap.Status)
	require.NotNil(t, ap.DeclinedAt)
	assert.Equal(t, now, *ap.DeclinedAt)
}

func TestCancel_FromPendingAndConfirmed(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusConfirmed} {
		ap := &models.Appointment{Status: string(from)}

		require.NoError(t, Cancel(ap, time.Now()))
		assert.Equal(t, string(StatusCancelled), ap.Status)
		assert.NotNil(t, ap.CancelledAt)
	}
}

func TestConfirm_NotFromConfirmed(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	err := Confirm(ap)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestTerminalStates_RejectEveryTransition(t *testing.T) {
	for _, terminal := range []Status{StatusDeclined, StatusCancelled} {
		assert.True(t, IsTerminal(terminal))

		ap := &models.Appointment{Status: string(terminal)}

		err := Confirm(ap)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))

		err = Decline(ap, time.Now())
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))

		err = Cancel(ap, time.Now())
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))

		// nada mudou
		assert.Equal(t, string(terminal), ap.Status)
	}
}

func TestReleasesSlot(t *testing.T) {
	assert.True(t, ReleasesSlot(StatusDeclined))
	assert.True(t, ReleasesSlot(StatusCancelled))
	assert.False(t, ReleasesSlot(StatusConfirmed))
	assert.False(t, ReleasesSlot(StatusPending))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
	assert.False(t, IsTerminal(InitialStatus()))
}
