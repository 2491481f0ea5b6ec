package booking

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	availdomain "github.com/BruksfildServices01/barbershop-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// Respond é a decisão do barbeiro sobre um pedido pendente:
// confirmar ou recusar.
type Respond struct {
	appointments domain.Repository
	slots        availdomain.Repository
	audit        *audit.Dispatcher
}

func NewRespond(
	appointments domain.Repository,
	slots availdomain.Repository,
	audit *audit.Dispatcher,
) *Respond {
	return &Respond{
		appointments: appointments,
		slots:        slots,
		audit:        audit,
	}
}

func (uc *Respond) Execute(
	ctx context.Context,
	caller identity.Identity,
	appointmentID string,
	decision domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.appointments.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && !(caller.IsBarber() && caller.UserID == ap.BarberID) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	switch decision {
	case domain.StatusConfirmed:
		err = domain.Confirm(ap)
	case domain.StatusDeclined:
		err = domain.Decline(ap, timezone.Now())
	default:
		err = httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	if err != nil {
		return nil, err
	}

	// Revalida o status no store: se outro caller respondeu/cancelou
	// entre a leitura e o update, a transição não aplica.
	if err := uc.appointments.UpdateStatusFrom(ctx, ap, domain.StatusPending); err != nil {
		return nil, err
	}

	if domain.ReleasesSlot(decision) {
		if err := uc.slots.Release(ctx, ap.SlotID); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "appointment_" + string(decision),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
