package recipe

import "fmt"

type ViewError struct {
	Code    string
	Message string
}

func (e *ViewError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrRecipeNotFound    = &ViewError{Code: "recipeNotFound", Message: "no recipe with that id"}
	ErrInvalidMultiplier = &ViewError{Code: "invalidMultiplier", Message: "multiplier must be 1, 2 or 3"}
	ErrInvalidStep       = &ViewError{Code: "invalidStep", Message: "step index is outside the recipe"}
)
