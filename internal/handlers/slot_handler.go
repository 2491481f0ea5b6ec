package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucAvailability "github.com/BruksfildServices01/barbershop-booking/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	addSlot    *ucAvailability.AddSlot
	removeSlot *ucAvailability.RemoveSlot
	listSlots  *ucAvailability.ListSlots
}

func NewSlotHandler(
	addSlot *ucAvailability.AddSlot,
	removeSlot *ucAvailability.RemoveSlot,
	listSlots *ucAvailability.ListSlots,
) *SlotHandler {
	return &SlotHandler{
		addSlot:    addSlot,
		removeSlot: removeSlot,
		listSlots:  listSlots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSlotRequest struct {
	// admin pode criar em nome de outro barbeiro; vazio = o próprio caller
	BarberID string `json:"barber_id"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // HH:MM
}

// ======================================================
// CREATE
// ======================================================

func (h *SlotHandler) Create(c *gin.Context) {
	caller := middleware.Caller(c)

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barberID := req.BarberID
	if barberID == "" {
		barberID = caller.UserID
	}

	slot, err := h.addSlot.Execute(c.Request.Context(), caller, ucAvailability.AddSlotInput{
		BarberID: barberID,
		Date:     req.Date,
		Time:     req.Time,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.Created(c, slot)
}

// ======================================================
// DELETE
// ======================================================

func (h *SlotHandler) Delete(c *gin.Context) {
	caller := middleware.Caller(c)
	slotID := c.Param("id")

	if err := h.removeSlot.Execute(c.Request.Context(), caller, slotID); err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

// ======================================================
// LIST (agenda do próprio barbeiro)
// ======================================================

func (h *SlotHandler) ListMine(c *gin.Context) {
	caller := middleware.Caller(c)

	barberID := caller.UserID
	if caller.IsAdmin() && c.Query("barber_id") != "" {
		barberID = c.Query("barber_id")
	}

	slots, err := h.listSlots.Execute(c.Request.Context(), ucAvailability.ListSlotsInput{
		BarberID: barberID,
		From:     c.Query("from"),
		To:       c.Query("to"),
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// LIST (público — cliente escolhendo horário)
// ======================================================

func (h *SlotHandler) ListForBarber(c *gin.Context) {
	slots, err := h.listSlots.Execute(c.Request.Context(), ucAvailability.ListSlotsInput{
		BarberID: c.Param("id"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, slots)
}
