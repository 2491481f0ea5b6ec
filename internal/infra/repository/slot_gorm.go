package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/availability"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

func (r *SlotGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {

	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		// índice único (barber_id, date, time)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness(httperr.CodeDuplicateSlot)
		}
		return err
	}
	return nil
}

func (r *SlotGormRepository) GetSlot(
	ctx context.Context,
	slotID string,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotNotFound)
		}
		return nil, err
	}
	return &slot, nil
}

func (r *SlotGormRepository) DeleteAvailableSlot(
	ctx context.Context,
	slotID string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND available = ?", slotID, true).
		Delete(&models.TimeSlot{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		// ou o slot não existe, ou está reservado
		if _, err := r.GetSlot(ctx, slotID); err != nil {
			return err
		}
		return httperr.ErrBusiness(httperr.CodeSlotInUse)
	}

	return nil
}

// Reserve é um UPDATE condicional: a cláusula available = true faz o
// banco decidir o vencedor entre reservas concorrentes.
func (r *SlotGormRepository) Reserve(
	ctx context.Context,
	slotID string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ? AND available = ?", slotID, true).
		Update("available", false)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		if _, err := r.GetSlot(ctx, slotID); err != nil {
			return err
		}
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	return nil
}

func (r *SlotGormRepository) Release(
	ctx context.Context,
	slotID string,
) error {

	// idempotente: liberar slot já livre (ou inexistente) é no-op
	return r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ?", slotID).
		Update("available", true).Error
}

func (r *SlotGormRepository) ListRange(
	ctx context.Context,
	barberID string,
	from string,
	to string,
) ([]models.TimeSlot, error) {

	q := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID)

	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var slots []models.TimeSlot
	if err := q.Order("date ASC, time ASC").Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// Compile-time check
var _ domain.Repository = (*SlotGormRepository)(nil)
