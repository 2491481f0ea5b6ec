package availability

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ListSlotsInput struct {
	BarberID string
	From     string // YYYY-MM-DD, opcional
	To       string // YYYY-MM-DD, opcional
}

type ListSlots struct {
	slots domain.Repository
}

func NewListSlots(slots domain.Repository) *ListSlots {
	return &ListSlots{slots: slots}
}

// Execute lista os slots do barbeiro ordenados por (date, time).
// Leitura pública: clientes usam isto para escolher um horário.
func (uc *ListSlots) Execute(
	ctx context.Context,
	in ListSlotsInput,
) ([]models.TimeSlot, error) {

	if err := domain.ValidateRange(in.From, in.To); err != nil {
		return nil, err
	}

	return uc.slots.ListRange(ctx, in.BarberID, in.From, in.To)
}
