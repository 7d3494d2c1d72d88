package handlers

import (
	"net/http"

	"sattva/middleware"
	"sattva/services/booking"
	"sattva/services/newsletter"
	"sattva/services/session"
	"sattva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler ends a visitor's session.
type SessionHandler struct {
	Store        session.Store
	Booking      booking.BookingService
	Newsletter   newsletter.NewsletterService
	SecureCookie bool
}

// End handles DELETE /api/session. Pending tasks are cancelled before the
// session state is dropped.
func (h *SessionHandler) End(c *gin.Context) {
	ctx := c.Request.Context()
	sid := sessionID(c)
	logger := getLogger(c)

	if err := h.Booking.Teardown(ctx, sid); err != nil {
		logger.Warn("session end: booking teardown failed", zap.Error(err))
	}
	if err := h.Newsletter.Teardown(ctx, sid); err != nil {
		logger.Warn("session end: newsletter teardown failed", zap.Error(err))
	}
	if err := h.Store.Clear(ctx, sid); err != nil {
		respondError(c, err)
		return
	}
	middleware.ClearSessionCookie(c, h.SecureCookie)
	logger.Info("session ended")
	c.Status(http.StatusNoContent)
}

// HealthHandler reports the last dependency probe.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.Monitor.Status()
	code := http.StatusOK
	state := "ok"
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{
		"status":       state,
		"message":      "Hi, I'm Sattva",
		"dependencies": status.Dependencies,
		"checkedAt":    status.CheckedAt,
	})
}
