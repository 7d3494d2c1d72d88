package handlers

import (
	"net/http"

	"sattva/services/filter"

	"github.com/gin-gonic/gin"
)

type filterBody struct {
	Filter string `json:"filter" binding:"required"`
}

// CatalogHandler serves the filtered shop and journal listings.
type CatalogHandler struct {
	Shop    filter.ShopService
	Journal filter.JournalService
}

func NewCatalogHandler(shop filter.ShopService, journal filter.JournalService) *CatalogHandler {
	return &CatalogHandler{Shop: shop, Journal: journal}
}

// ShopView handles GET /api/shop.
func (h *CatalogHandler) ShopView(c *gin.Context) {
	page, err := h.Shop.View(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ShopFilter handles PUT /api/shop/filter.
func (h *CatalogHandler) ShopFilter(c *gin.Context) {
	var body filterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.Shop.Select(c.Request.Context(), sessionID(c), body.Filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// JournalView handles GET /api/journal.
func (h *CatalogHandler) JournalView(c *gin.Context) {
	page, err := h.Journal.View(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// JournalFilter handles PUT /api/journal/filter.
func (h *CatalogHandler) JournalFilter(c *gin.Context) {
	var body filterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.Journal.Select(c.Request.Context(), sessionID(c), body.Filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
