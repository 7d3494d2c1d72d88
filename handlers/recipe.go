package handlers

import (
	"net/http"
	"strconv"

	"sattva/services/recipe"

	"github.com/gin-gonic/gin"
)

// RecipeHandler serves the recipe browser.
type RecipeHandler struct {
	Svc recipe.RecipeService
}

func NewRecipeHandler(svc recipe.RecipeService) *RecipeHandler {
	return &RecipeHandler{Svc: svc}
}

// View handles GET /api/recipes.
func (h *RecipeHandler) View(c *gin.Context) {
	page, err := h.Svc.View(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Select handles PUT /api/recipes/selected.
func (h *RecipeHandler) Select(c *gin.Context) {
	var body struct {
		RecipeID string `json:"recipeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.Svc.Select(c.Request.Context(), sessionID(c), body.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// SetMultiplier handles PUT /api/recipes/multiplier.
func (h *RecipeHandler) SetMultiplier(c *gin.Context) {
	var body struct {
		Multiplier *int `json:"multiplier" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.Svc.SetMultiplier(c.Request.Context(), sessionID(c), *body.Multiplier)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ToggleStep handles POST /api/recipes/steps/:index/toggle.
func (h *RecipeHandler) ToggleStep(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, recipe.ErrInvalidStep)
		return
	}
	page, err := h.Svc.ToggleStep(c.Request.Context(), sessionID(c), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// SetCookMode handles PUT /api/recipes/cook-mode.
func (h *RecipeHandler) SetCookMode(c *gin.Context) {
	var body struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.Svc.SetCookMode(c.Request.Context(), sessionID(c), *body.Enabled)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
