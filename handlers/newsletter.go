package handlers

import (
	"net/http"

	"sattva/services/newsletter"

	"github.com/gin-gonic/gin"
)

// NewsletterHandler serves the newsletter prompt.
type NewsletterHandler struct {
	Svc newsletter.NewsletterService
}

func NewNewsletterHandler(svc newsletter.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{Svc: svc}
}

// State handles GET /api/newsletter.
func (h *NewsletterHandler) State(c *gin.Context) {
	view, err := h.Svc.State(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Scroll handles POST /api/newsletter/scroll.
func (h *NewsletterHandler) Scroll(c *gin.Context) {
	var body struct {
		Fraction *float64 `json:"fraction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.Svc.ReportScroll(c.Request.Context(), sessionID(c), *body.Fraction)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Dismiss handles POST /api/newsletter/dismiss.
func (h *NewsletterHandler) Dismiss(c *gin.Context) {
	view, err := h.Svc.Dismiss(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Subscribe handles POST /api/newsletter/subscribe.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, newsletter.ErrInvalidEmail)
		return
	}
	view, err := h.Svc.Subscribe(c.Request.Context(), sessionID(c), body.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
