package handlers

import (
	"net/http"

	"sattva/services/pages"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	Svc pages.PageService
}

func NewPageHandler(svc pages.PageService) *PageHandler {
	return &PageHandler{Svc: svc}
}

// Nav handles GET /api/nav.
func (h *PageHandler) Nav(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Nav())
}

// Home handles GET /api/home.
func (h *PageHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Home())
}
