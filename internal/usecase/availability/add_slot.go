package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type AddSlotInput struct {
	BarberID string
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type AddSlot struct {
	slots domain.Repository
	audit *audit.Dispatcher
}

func NewAddSlot(
	slots domain.Repository,
	audit *audit.Dispatcher,
) *AddSlot {
	return &AddSlot{
		slots: slots,
		audit: audit,
	}
}

func (uc *AddSlot) Execute(
	ctx context.Context,
	caller identity.Identity,
	in AddSlotInput,
) (*models.TimeSlot, error) {

	if err := domain.CanManageSlots(caller, in.BarberID); err != nil {
		return nil, err
	}

	if err := domain.ValidateSlotTime(in.Date, in.Time, timezone.Now()); err != nil {
		return nil, err
	}

	slot := &models.TimeSlot{
		ID:        uuid.New().String(),
		BarberID:  in.BarberID,
		Date:      in.Date,
		Time:      in.Time,
		Available: true,
	}

	if err := uc.slots.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "slot_added",
		Entity:   "time_slot",
		EntityID: &slot.ID,
	})

	return slot, nil
}
