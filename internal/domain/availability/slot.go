package availability

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ===============================
// Slot rules
// ===============================

// CanManageSlots define quem pode criar/remover horários de um barbeiro:
// o próprio barbeiro ou um admin.
func CanManageSlots(caller identity.Identity, barberID string) error {
	if caller.IsAdmin() {
		return nil
	}
	if caller.IsBarber() && caller.UserID == barberID {
		return nil
	}
	return httperr.ErrBusiness(httperr.CodeForbidden)
}

// ValidateSlotTime valida formato e rejeita horário no passado.
func ValidateSlotTime(date, hhmm string, now time.Time) error {
	if !timezone.ValidDate(date) || !timezone.ValidTime(hhmm) {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	start, err := timezone.ParseSlot(date, hhmm)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	if start.Before(now) {
		return httperr.ErrBusiness("slot_in_past")
	}

	return nil
}

// ValidateRange valida um intervalo opcional de datas para listagem.
func ValidateRange(from, to string) error {
	if from != "" && !timezone.ValidDate(from) {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if to != "" && !timezone.ValidDate(to) {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	return nil
}
