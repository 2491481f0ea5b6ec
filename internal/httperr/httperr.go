package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Business mapeia um erro de negócio do core para a resposta HTTP.
// Qualquer outro erro vira 500 genérico.
func Business(c *gin.Context, err error) {
	code, ok := BusinessCode(err)
	if !ok {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case CodeForbidden:
		Forbidden(c, code, "Você não tem permissão para esta operação.")
	case CodeSlotNotFound:
		NotFound(c, code, "Horário não encontrado.")
	case CodeAppointmentNotFound:
		NotFound(c, code, "Agendamento não encontrado.")
	case CodeDuplicateSlot:
		Conflict(c, code, "Já existe um horário cadastrado nesta data e hora.")
	case CodeSlotInUse:
		Conflict(c, code, "Horário está ocupado por um agendamento.")
	case CodeSlotUnavailable:
		Conflict(c, code, "Horário indisponível. Escolha outro horário.")
	case CodeInvalidTransition:
		Conflict(c, code, "Agendamento não permite esta mudança de status.")
	default:
		BadRequest(c, code, "Operação inválida.")
	}
}
