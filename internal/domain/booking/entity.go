package booking

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanRespond(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Decline(ap *models.Appointment, now time.Time) error {
	if err := CanRespond(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusDeclined)
	ap.DeclinedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// ReleasesSlot diz se a transição para o status devolve o slot
// ao Availability Manager.
func ReleasesSlot(s Status) bool {
	return s == StatusDeclined || s == StatusCancelled
}
