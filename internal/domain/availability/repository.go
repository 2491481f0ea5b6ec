package availability

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Repository é a única porta de mutação de TimeSlot. Reserve é o
// check-and-set atômico que impede double-booking: sob chamadas
// concorrentes, exatamente uma vence.
type Repository interface {
	CreateSlot(
		ctx context.Context,
		slot *models.TimeSlot,
	) error

	GetSlot(
		ctx context.Context,
		slotID string,
	) (*models.TimeSlot, error)

	// DeleteAvailableSlot remove o slot apenas enquanto available = true.
	// Retorna slot_in_use se houver agendamento apoiado nele.
	DeleteAvailableSlot(
		ctx context.Context,
		slotID string,
	) error

	// Reserve falha com slot_unavailable se já reservado.
	Reserve(
		ctx context.Context,
		slotID string,
	) error

	// Release é idempotente: liberar um slot já livre é no-op.
	Release(
		ctx context.Context,
		slotID string,
	) error

	// ListRange retorna os slots do barbeiro ordenados por (date, time).
	// from/to são datas YYYY-MM-DD opcionais (vazio = sem limite).
	ListRange(
		ctx context.Context,
		barberID string,
		from string,
		to string,
	) ([]models.TimeSlot, error)
}
