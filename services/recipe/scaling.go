package recipe

import (
	"math"
	"strconv"

	"sattva/models"
)

// Multipliers are the batch sizes offered by the recipe page.
var Multipliers = []int{1, 2, 3}

// ValidMultiplier reports whether m is one of Multipliers.
func ValidMultiplier(m int) bool {
	for _, v := range Multipliers {
		if v == m {
			return true
		}
	}
	return false
}

// Scale returns the recipe's ingredients at BaseQty × m × Servings, in
// recipe order.
func Scale(r models.Recipe, m int) []models.ScaledIngredient {
	factor := float64(m * r.Servings)
	out := make([]models.ScaledIngredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		qty := ing.BaseQty * factor
		out[i] = models.ScaledIngredient{
			Name:    ing.Name,
			Qty:     qty,
			Unit:    ing.Unit,
			Display: FormatQuantity(qty),
		}
	}
	return out
}

// FormatQuantity prints whole quantities without decimals and everything
// else with one decimal, rounding halves up.
func FormatQuantity(q float64) string {
	if q == math.Trunc(q) {
		return strconv.FormatFloat(q, 'f', 0, 64)
	}
	return strconv.FormatFloat(math.Round(q*10)/10, 'f', 1, 64)
}
