package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book    *ucBooking.Book
	respond *ucBooking.Respond
	cancel  *ucBooking.Cancel
	list    *ucBooking.ListAppointments
}

func NewAppointmentHandler(
	book *ucBooking.Book,
	respond *ucBooking.Respond,
	cancel *ucBooking.Cancel,
	list *ucBooking.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:    book,
		respond: respond,
		cancel:  cancel,
		list:    list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookRequest struct {
	BarberID string `json:"barber_id" binding:"required"`
	SlotID   string `json:"slot_id" binding:"required"`
}

type RespondRequest struct {
	Decision string `json:"decision" binding:"required,oneof=confirmed declined"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	caller := middleware.Caller(c)

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), caller, ucBooking.BookInput{
		BarberID: req.BarberID,
		SlotID:   req.SlotID,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// RESPOND (barbeiro confirma/recusa)
// ======================================================

func (h *AppointmentHandler) Respond(c *gin.Context) {
	caller := middleware.Caller(c)
	id := c.Param("id")

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Decisão deve ser confirmed ou declined.")
		return
	}

	ap, err := h.respond.Execute(c.Request.Context(), caller, id, domain.Status(req.Decision))
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL (cliente)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	caller := middleware.Caller(c)
	id := c.Param("id")

	ap, err := h.cancel.Execute(c.Request.Context(), caller, id)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST (os meus — barbeiro ou cliente)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	caller := middleware.Caller(c)
	ctx := c.Request.Context()

	if caller.IsBarber() {
		aps, err := h.list.ForBarber(ctx, caller, caller.UserID)
		if err != nil {
			httperr.Business(c, err)
			return
		}
		httpresp.List(c, aps)
		return
	}

	aps, err := h.list.ForClient(ctx, caller, caller.UserID)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.List(c, aps)
}

// ======================================================
// LIST ALL (admin)
// ======================================================

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	caller := middleware.Caller(c)

	aps, err := h.list.All(c.Request.Context(), caller)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, aps)
}
