package handlers

import (
	"net/http"

	"sattva/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the consultation booking wizard.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// View handles GET /api/booking.
func (h *BookingHandler) View(c *gin.Context) {
	view, err := h.Svc.View(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectProvider handles POST /api/booking/provider.
func (h *BookingHandler) SelectProvider(c *gin.Context) {
	var body struct {
		ProviderID *int `json:"providerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.Svc.SelectProvider(c.Request.Context(), sessionID(c), *body.ProviderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ChangeProvider handles POST /api/booking/change-provider.
func (h *BookingHandler) ChangeProvider(c *gin.Context) {
	view, err := h.Svc.ChangeProvider(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectDate handles PUT /api/booking/date.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var body struct {
		Index *int `json:"index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.Svc.SelectDate(c.Request.Context(), sessionID(c), *body.Index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectTime handles PUT /api/booking/time.
func (h *BookingHandler) SelectTime(c *gin.Context) {
	var body struct {
		Slot string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.Svc.SelectTime(c.Request.Context(), sessionID(c), body.Slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Confirm handles POST /api/booking/confirm. The submission completes
// asynchronously, so the pending view is returned with 202.
func (h *BookingHandler) Confirm(c *gin.Context) {
	view, err := h.Svc.Confirm(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("booking submission accepted")
	c.JSON(http.StatusAccepted, view)
}

// BookAnother handles POST /api/booking/reset.
func (h *BookingHandler) BookAnother(c *gin.Context) {
	view, err := h.Svc.BookAnother(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Teardown handles DELETE /api/booking.
func (h *BookingHandler) Teardown(c *gin.Context) {
	if err := h.Svc.Teardown(c.Request.Context(), sessionID(c)); err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Debug("booking wizard discarded", zap.String("sessionID", sessionID(c)))
	c.Status(http.StatusNoContent)
}
