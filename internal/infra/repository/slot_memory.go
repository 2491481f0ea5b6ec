package repository

import (
	"context"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// SlotMemoryRepository guarda os slots em memória com o mesmo contrato
// do repositório gorm. Um único mutex serializa reserve/release, então
// a propriedade "um vencedor por slot" vale igual.
type SlotMemoryRepository struct {
	mu    sync.Mutex
	slots map[string]*models.TimeSlot
	keys  map[string]string // (barberID|date|time) -> slotID
}

func NewSlotMemoryRepository() *SlotMemoryRepository {
	return &SlotMemoryRepository{
		slots: make(map[string]*models.TimeSlot),
		keys:  make(map[string]string),
	}
}

func slotKey(barberID, date, hhmm string) string {
	return barberID + "|" + date + "|" + hhmm
}

func (r *SlotMemoryRepository) CreateSlot(
	_ context.Context,
	slot *models.TimeSlot,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(slot.BarberID, slot.Date, slot.Time)
	if _, exists := r.keys[key]; exists {
		return httperr.ErrBusiness(httperr.CodeDuplicateSlot)
	}

	cp := *slot
	r.slots[slot.ID] = &cp
	r.keys[key] = slot.ID
	return nil
}

func (r *SlotMemoryRepository) GetSlot(
	_ context.Context,
	slotID string,
) (*models.TimeSlot, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[slotID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeSlotNotFound)
	}

	cp := *slot
	return &cp, nil
}

func (r *SlotMemoryRepository) DeleteAvailableSlot(
	_ context.Context,
	slotID string,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[slotID]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeSlotNotFound)
	}
	if !slot.Available {
		return httperr.ErrBusiness(httperr.CodeSlotInUse)
	}

	delete(r.keys, slotKey(slot.BarberID, slot.Date, slot.Time))
	delete(r.slots, slotID)
	return nil
}

func (r *SlotMemoryRepository) Reserve(
	_ context.Context,
	slotID string,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[slotID]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeSlotNotFound)
	}
	if !slot.Available {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	slot.Available = false
	return nil
}

func (r *SlotMemoryRepository) Release(
	_ context.Context,
	slotID string,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if slot, ok := r.slots[slotID]; ok {
		slot.Available = true
	}
	return nil
}

func (r *SlotMemoryRepository) ListRange(
	_ context.Context,
	barberID string,
	from string,
	to string,
) ([]models.TimeSlot, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.TimeSlot
	for _, slot := range r.slots {
		if slot.BarberID != barberID {
			continue
		}
		if from != "" && slot.Date < from {
			continue
		}
		if to != "" && slot.Date > to {
			continue
		}
		out = append(out, *slot)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})

	return out, nil
}

func (r *SlotMemoryRepository) snapshot(slotID string) (models.TimeSlot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[slotID]
	if !ok {
		return models.TimeSlot{}, false
	}
	return *slot, true
}

// Compile-time check
var _ domain.Repository = (*SlotMemoryRepository)(nil)
