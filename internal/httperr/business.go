package httperr

import "errors"

// ===============================
// Business error codes
// ===============================

const (
	CodeDuplicateSlot       = "duplicate_slot"
	CodeSlotNotFound        = "slot_not_found"
	CodeSlotInUse           = "slot_in_use"
	CodeSlotUnavailable     = "slot_unavailable"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeInvalidTransition   = "invalid_transition"
	CodeForbidden           = "forbidden"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código, se for erro de negócio.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
