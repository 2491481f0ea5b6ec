package availability

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

type RemoveSlot struct {
	slots domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveSlot(
	slots domain.Repository,
	audit *audit.Dispatcher,
) *RemoveSlot {
	return &RemoveSlot{
		slots: slots,
		audit: audit,
	}
}

func (uc *RemoveSlot) Execute(
	ctx context.Context,
	caller identity.Identity,
	slotID string,
) error {

	slot, err := uc.slots.GetSlot(ctx, slotID)
	if err != nil {
		return err
	}

	if err := domain.CanManageSlots(caller, slot.BarberID); err != nil {
		return err
	}

	// Só apaga enquanto available = true; se um agendamento reservou o
	// slot entre a leitura e o delete, vem slot_in_use.
	if err := uc.slots.DeleteAvailableSlot(ctx, slotID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "slot_removed",
		Entity:   "time_slot",
		EntityID: &slotID,
	})

	return nil
}
