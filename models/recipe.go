package models

// Ingredient is one line of a recipe at its base quantity.
type Ingredient struct {
	Name    string  `bson:"name" json:"name"`
	BaseQty float64 `bson:"baseQty" json:"baseQty"`
	Unit    string  `bson:"unit" json:"unit"`
}

// Recipe is an immutable catalog entry.
type Recipe struct {
	ID          string       `bson:"id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	PrepTime    string       `bson:"prepTime" json:"prepTime"`
	CookTime    string       `bson:"cookTime" json:"cookTime"`
	Servings    int          `bson:"servings" json:"servings"`
	Tags        []string     `bson:"tags" json:"tags"`
	Ingredients []Ingredient `bson:"ingredients" json:"ingredients"`
	Steps       []string     `bson:"steps" json:"steps"`
	Category    string       `bson:"category" json:"category"` // display tag, e.g. "orange"
	Position    int          `bson:"position" json:"-"`
}

// ScaledIngredient is an ingredient at the quantity shown to the visitor.
type ScaledIngredient struct {
	Name    string  `json:"name"`
	Qty     float64 `json:"qty"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"`
}

// RecipeSummary is the sidebar entry of a recipe.
type RecipeSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	PrepTime string `json:"prepTime"`
	Tag      string `json:"tag"`
	Selected bool   `json:"selected"`
}

// RecipeStep is one instruction with its completion mark.
type RecipeStep struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Done  bool   `json:"done"`
}

// RecipeDetail is the detail pane of the selected recipe.
type RecipeDetail struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	PrepTime    string             `json:"prepTime"`
	CookTime    string             `json:"cookTime"`
	Servings    int                `json:"servings"`
	Tags        []string           `json:"tags"`
	Category    string             `json:"category"`
	Multiplier  int                `json:"multiplier"`
	Ingredients []ScaledIngredient `json:"ingredients"`
	Steps       []RecipeStep       `json:"steps"`
}

// RecipeViewState is the per-session state of the recipe page.
type RecipeViewState struct {
	SelectedID     string `json:"selectedId"`
	Multiplier     int    `json:"multiplier"`
	CompletedSteps []int  `json:"completedSteps"`
	CookMode       bool   `json:"cookMode"`
}

// RecipePage is the response for the recipe page.
type RecipePage struct {
	Recipes     []RecipeSummary `json:"recipes"`
	Multipliers []int           `json:"multipliers"`
	CookMode    bool            `json:"cookMode"`
	Detail      RecipeDetail    `json:"detail"`
}
