package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	availdomain "github.com/BruksfildServices01/barbershop-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	BarberID string
	SlotID   string
}

// ======================================================
// USE CASE
// ======================================================

// Book é o único caminho de criação de Appointment: todo agendamento
// nasce pendente, amarrado a um slot que estava livre no momento da
// reserva.
type Book struct {
	appointments domain.Repository
	slots        availdomain.Repository
	audit        *audit.Dispatcher
}

func NewBook(
	appointments domain.Repository,
	slots availdomain.Repository,
	audit *audit.Dispatcher,
) *Book {
	return &Book{
		appointments: appointments,
		slots:        slots,
		audit:        audit,
	}
}

func (uc *Book) Execute(
	ctx context.Context,
	caller identity.Identity,
	in BookInput,
) (*models.Appointment, error) {

	if !caller.IsClient() {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	slot, err := uc.slots.GetSlot(ctx, in.SlotID)
	if err != nil {
		return nil, err
	}

	if slot.BarberID != in.BarberID {
		return nil, httperr.ErrBusiness(httperr.CodeSlotNotFound)
	}

	// Check-and-set atômico: entre dois clientes disputando o mesmo
	// slot, só um passa daqui; o outro recebe slot_unavailable.
	if err := uc.slots.Reserve(ctx, in.SlotID); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ID:       uuid.New().String(),
		BarberID: in.BarberID,
		ClientID: caller.UserID,
		SlotID:   in.SlotID,
		Status:   string(domain.InitialStatus()),
	}

	if err := uc.appointments.CreateAppointment(ctx, ap); err != nil {
		// devolve a reserva para não deixar o slot preso sem agendamento
		_ = uc.slots.Release(ctx, in.SlotID)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
