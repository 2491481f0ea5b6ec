package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		First(&ap, "id = ?", appointmentID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	return &ap, nil
}

// UpdateStatusFrom aplica a transição apenas se o status persistido
// ainda for um dos esperados. Uma leitura velha nunca sobrescreve um
// status terminal.
func (r *AppointmentGormRepository) UpdateStatusFrom(
	ctx context.Context,
	ap *models.Appointment,
	from ...domain.Status,
) error {

	allowed := make([]string, 0, len(from))
	for _, s := range from {
		allowed = append(allowed, string(s))
	}

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status IN ?", ap.ID, allowed).
		Updates(map[string]any{
			"status":       ap.Status,
			"declined_at":  ap.DeclinedAt,
			"cancelled_at": ap.CancelledAt,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	return nil
}

// --------------------------------------------------
// Read model
// --------------------------------------------------

func (r *AppointmentGormRepository) listOrdered(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Joins("JOIN time_slots ON time_slots.id = appointments.slot_id").
		Order("time_slots.date ASC, time_slots.time ASC, appointments.id ASC").
		Preload("Slot").
		Preload("Barber").
		Preload("Client")
}

func (r *AppointmentGormRepository) ListForBarber(
	ctx context.Context,
	barberID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.listOrdered(ctx).
		Where("appointments.barber_id = ?", barberID).
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListForClient(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.listOrdered(ctx).
		Where("appointments.client_id = ?", clientID).
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.listOrdered(ctx).Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
