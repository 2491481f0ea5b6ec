package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ListAppointments agrupa as leituras do Scheduler. Todas retornam
// ordenado por (date, time) do slot e depois id, para paginação estável
// no cliente.
type ListAppointments struct {
	appointments domain.Repository
}

func NewListAppointments(appointments domain.Repository) *ListAppointments {
	return &ListAppointments{appointments: appointments}
}

func (uc *ListAppointments) ForBarber(
	ctx context.Context,
	caller identity.Identity,
	barberID string,
) ([]models.Appointment, error) {

	if !caller.ActsFor(barberID) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return uc.appointments.ListForBarber(ctx, barberID)
}

func (uc *ListAppointments) ForClient(
	ctx context.Context,
	caller identity.Identity,
	clientID string,
) ([]models.Appointment, error) {

	if !caller.ActsFor(clientID) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return uc.appointments.ListForClient(ctx, clientID)
}

func (uc *ListAppointments) All(
	ctx context.Context,
	caller identity.Identity,
) ([]models.Appointment, error) {

	if !caller.IsAdmin() {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return uc.appointments.ListAll(ctx)
}
