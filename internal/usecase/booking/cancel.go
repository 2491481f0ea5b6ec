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

type Cancel struct {
	appointments domain.Repository
	slots        availdomain.Repository
	audit        *audit.Dispatcher
}

func NewCancel(
	appointments domain.Repository,
	slots availdomain.Repository,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		appointments: appointments,
		slots:        slots,
		audit:        audit,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	caller identity.Identity,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.appointments.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && caller.UserID != ap.ClientID {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.appointments.UpdateStatusFrom(
		ctx, ap,
		domain.StatusPending, domain.StatusConfirmed,
	); err != nil {
		return nil, err
	}

	// Release é idempotente: se o barbeiro recusou em paralelo e o slot
	// já voltou a ficar livre, é no-op.
	if err := uc.slots.Release(ctx, ap.SlotID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
