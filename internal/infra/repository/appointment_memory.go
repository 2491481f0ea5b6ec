package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// AppointmentMemoryRepository espelha o contrato do repositório gorm.
// Precisa do store de slots para ordenar as listagens por (date, time).
type AppointmentMemoryRepository struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	slots        *SlotMemoryRepository
}

func NewAppointmentMemoryRepository(slots *SlotMemoryRepository) *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{
		appointments: make(map[string]*models.Appointment),
		slots:        slots,
	}
}

func (r *AppointmentMemoryRepository) CreateAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *ap
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *AppointmentMemoryRepository) GetAppointment(
	_ context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[appointmentID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	cp := *ap
	return &cp, nil
}

func (r *AppointmentMemoryRepository) UpdateStatusFrom(
	_ context.Context,
	ap *models.Appointment,
	from ...domain.Status,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.appointments[ap.ID]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	current := domain.Status(stored.Status)
	allowed := false
	for _, s := range from {
		if current == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	stored.Status = ap.Status
	stored.DeclinedAt = ap.DeclinedAt
	stored.CancelledAt = ap.CancelledAt
	return nil
}

func (r *AppointmentMemoryRepository) list(
	filter func(*models.Appointment) bool,
) []models.Appointment {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter(ap) {
			cp := *ap
			if r.slots != nil {
				if slot, ok := r.slots.snapshot(ap.SlotID); ok {
					cp.Slot = slot
				}
			}
			out = append(out, cp)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Slot.Date != out[j].Slot.Date {
			return out[i].Slot.Date < out[j].Slot.Date
		}
		if out[i].Slot.Time != out[j].Slot.Time {
			return out[i].Slot.Time < out[j].Slot.Time
		}
		return out[i].ID < out[j].ID
	})

	return out
}

func (r *AppointmentMemoryRepository) ListForBarber(
	_ context.Context,
	barberID string,
) ([]models.Appointment, error) {
	return r.list(func(ap *models.Appointment) bool {
		return ap.BarberID == barberID
	}), nil
}

func (r *AppointmentMemoryRepository) ListForClient(
	_ context.Context,
	clientID string,
) ([]models.Appointment, error) {
	return r.list(func(ap *models.Appointment) bool {
		return ap.ClientID == clientID
	}), nil
}

func (r *AppointmentMemoryRepository) ListAll(
	_ context.Context,
) ([]models.Appointment, error) {
	return r.list(func(*models.Appointment) bool { return true }), nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentMemoryRepository)(nil)
