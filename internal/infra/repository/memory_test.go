package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func seedSlot(t *testing.T, repo *SlotMemoryRepository, id string) {
	t.Helper()
	require.NoError(t, repo.CreateSlot(context.Background(), &models.TimeSlot{
		ID:        id,
		BarberID:  "b1",
		Date:      "2030-10-26",
		Time:      "09:00",
		Available: true,
	}))
}

func TestReserve_ExactlyOneConcurrentWinner(t *testing.T) {
	repo := NewSlotMemoryRepository()
	seedSlot(t, repo, "s1")

	const callers = 64
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Reserve(context.Background(), "s1")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
		}
	}
	assert.Equal(t, 1, wins)
}

func TestReserve_NotFound(t *testing.T) {
	repo := NewSlotMemoryRepository()

	err := repo.Reserve(context.Background(), "missing")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotNotFound))
}

func TestRelease_Idempotent(t *testing.T) {
	repo := NewSlotMemoryRepository()
	seedSlot(t, repo, "s1")
	ctx := context.Background()

	require.NoError(t, repo.Reserve(ctx, "s1"))

	require.NoError(t, repo.Release(ctx, "s1"))
	require.NoError(t, repo.Release(ctx, "s1"))

	slot, err := repo.GetSlot(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, slot.Available)

	// liberar slot inexistente também é no-op
	require.NoError(t, repo.Release(ctx, "missing"))
}

func TestCreateSlot_DuplicateKey(t *testing.T) {
	repo := NewSlotMemoryRepository()
	seedSlot(t, repo, "s1")

	err := repo.CreateSlot(context.Background(), &models.TimeSlot{
		ID:       "s2",
		BarberID: "b1",
		Date:     "2030-10-26",
		Time:     "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateSlot))
}

func TestDeleteAvailableSlot_OnlyWhileFree(t *testing.T) {
	repo := NewSlotMemoryRepository()
	seedSlot(t, repo, "s1")
	ctx := context.Background()

	require.NoError(t, repo.Reserve(ctx, "s1"))

	err := repo.DeleteAvailableSlot(ctx, "s1")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotInUse))

	require.NoError(t, repo.Release(ctx, "s1"))
	require.NoError(t, repo.DeleteAvailableSlot(ctx, "s1"))

	err = repo.DeleteAvailableSlot(ctx, "s1")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotNotFound))
}

func TestUpdateStatusFrom_StaleReadDoesNotOverwriteTerminal(t *testing.T) {
	slots := NewSlotMemoryRepository()
	repo := NewAppointmentMemoryRepository(slots)
	ctx := context.Background()

	ap := &models.Appointment{
		ID:       "a1",
		BarberID: "b1",
		ClientID: "c1",
		SlotID:   "s1",
		Status:   string(domain.StatusPending),
	}
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	// caller A: decline aplica
	declined := *ap
	require.NoError(t, domain.Decline(&declined, declined.CreatedAt))
	require.NoError(t, repo.UpdateStatusFrom(ctx, &declined, domain.StatusPending))

	// caller B leu "pending" antes e tenta confirmar: o CAS barra
	confirmed := *ap
	require.NoError(t, domain.Confirm(&confirmed))
	err := repo.UpdateStatusFrom(ctx, &confirmed, domain.StatusPending)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))

	stored, err := repo.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusDeclined), stored.Status)
}
