package booking

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Repository interface {
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		appointmentID string,
	) (*models.Appointment, error)

	// UpdateStatusFrom persiste a transição já aplicada em ap, mas só se o
	// status atual no store ainda for um dos informados (check otimista).
	// Retorna invalid_transition se outro caller transicionou antes.
	UpdateStatusFrom(
		ctx context.Context,
		ap *models.Appointment,
		from ...Status,
	) error

	// -------- Read model (ordenado por slot date/time, depois id) --------

	ListForBarber(
		ctx context.Context,
		barberID string,
	) ([]models.Appointment, error)

	ListForClient(
		ctx context.Context,
		clientID string,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)
}
