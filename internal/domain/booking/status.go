package booking

import "github.com/BruksfildServices01/barbershop-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

// LiveStatuses são os status que mantêm o slot reservado.
var LiveStatuses = []Status{StatusPending, StatusConfirmed}

func InitialStatus() Status {
	return StatusPending
}

// IsTerminal: declined e cancelled não saem mais do lugar.
func IsTerminal(s Status) bool {
	return s == StatusDeclined || s == StatusCancelled
}

// ===============================
// Transition guards
// ===============================

// CanRespond: barbeiro só responde (confirma/recusa) enquanto pendente.
func CanRespond(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

// CanCancel: cliente cancela pendente ou confirmado; nunca um terminal.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}
