package recipe

import (
	"context"
	"errors"
	"fmt"
	"sort"

	catalogRepo "sattva/database/repository/catalog"
	"sattva/models"
	"sattva/services/session"

	"go.uber.org/zap"
)

// RecipeService manages the recipe page of one visitor.
type RecipeService interface {
	View(ctx context.Context, sessionID string) (*models.RecipePage, error)
	Select(ctx context.Context, sessionID, recipeID string) (*models.RecipePage, error)
	SetMultiplier(ctx context.Context, sessionID string, multiplier int) (*models.RecipePage, error)
	ToggleStep(ctx context.Context, sessionID string, index int) (*models.RecipePage, error)
	SetCookMode(ctx context.Context, sessionID string, enabled bool) (*models.RecipePage, error)
}

// DefaultRecipeService implements RecipeService.
type DefaultRecipeService struct {
	Catalog catalogRepo.CatalogRepository
	Store   session.Store
	Locker  *session.Locker
	Logger  *zap.Logger
}

func (s *DefaultRecipeService) View(ctx context.Context, sessionID string) (*models.RecipePage, error) {
	return s.update(ctx, sessionID, nil)
}

// Select switches the detail pane to another recipe. The new recipe always
// starts at 1x with no completed steps and cook mode off. Selecting the recipe
// already shown changes nothing.
func (s *DefaultRecipeService) Select(ctx context.Context, sessionID, recipeID string) (*models.RecipePage, error) {
	if _, err := s.Catalog.RecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to load recipe %s: %w", recipeID, err)
	}
	return s.update(ctx, sessionID, func(st *models.RecipeViewState, _ models.Recipe) error {
		if st.SelectedID == recipeID {
			return nil
		}
		*st = freshState(recipeID)
		return nil
	})
}

func (s *DefaultRecipeService) SetMultiplier(ctx context.Context, sessionID string, multiplier int) (*models.RecipePage, error) {
	if !ValidMultiplier(multiplier) {
		return nil, ErrInvalidMultiplier
	}
	return s.update(ctx, sessionID, func(st *models.RecipeViewState, _ models.Recipe) error {
		st.Multiplier = multiplier
		return nil
	})
}

func (s *DefaultRecipeService) ToggleStep(ctx context.Context, sessionID string, index int) (*models.RecipePage, error) {
	return s.update(ctx, sessionID, func(st *models.RecipeViewState, r models.Recipe) error {
		if index < 0 || index >= len(r.Steps) {
			return ErrInvalidStep
		}
		for i, done := range st.CompletedSteps {
			if done == index {
				st.CompletedSteps = append(st.CompletedSteps[:i], st.CompletedSteps[i+1:]...)
				return nil
			}
		}
		st.CompletedSteps = append(st.CompletedSteps, index)
		sort.Ints(st.CompletedSteps)
		return nil
	})
}

func (s *DefaultRecipeService) SetCookMode(ctx context.Context, sessionID string, enabled bool) (*models.RecipePage, error) {
	return s.update(ctx, sessionID, func(st *models.RecipeViewState, _ models.Recipe) error {
		st.CookMode = enabled
		return nil
	})
}

func freshState(recipeID string) models.RecipeViewState {
	return models.RecipeViewState{
		SelectedID:     recipeID,
		Multiplier:     1,
		CompletedSteps: []int{},
	}
}

// update loads the page state under the session lock, applies fn (if any),
// persists the result and renders the page.
func (s *DefaultRecipeService) update(ctx context.Context, sessionID string, fn func(*models.RecipeViewState, models.Recipe) error) (*models.RecipePage, error) {
	unlock := s.Locker.Lock(sessionID)
	defer unlock()

	recipes, err := s.Catalog.Recipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("recipe catalog is empty")
	}

	var st models.RecipeViewState
	found, err := s.Store.Get(ctx, sessionID, session.KeyRecipes, &st)
	if err != nil {
		return nil, err
	}
	selected, ok := findRecipe(recipes, st.SelectedID)
	if !found || !ok {
		st = freshState(recipes[0].ID)
		selected = recipes[0]
	}

	if fn != nil {
		if err := fn(&st, selected); err != nil {
			return nil, err
		}
		if st.SelectedID != selected.ID {
			selected, _ = findRecipe(recipes, st.SelectedID)
		}
		if err := s.Store.Set(ctx, sessionID, session.KeyRecipes, st); err != nil {
			return nil, err
		}
		s.Logger.Debug("recipe view updated",
			zap.String("sessionID", sessionID),
			zap.String("recipe", st.SelectedID),
			zap.Int("multiplier", st.Multiplier),
		)
	}

	return render(recipes, selected, st), nil
}

func findRecipe(recipes []models.Recipe, id string) (models.Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r, true
		}
	}
	return models.Recipe{}, false
}

func render(recipes []models.Recipe, selected models.Recipe, st models.RecipeViewState) *models.RecipePage {
	summaries := make([]models.RecipeSummary, len(recipes))
	for i, r := range recipes {
		tag := ""
		if len(r.Tags) > 0 {
			tag = r.Tags[0]
		}
		summaries[i] = models.RecipeSummary{
			ID:       r.ID,
			Title:    r.Title,
			PrepTime: r.PrepTime,
			Tag:      tag,
			Selected: r.ID == selected.ID,
		}
	}

	done := make(map[int]bool, len(st.CompletedSteps))
	for _, i := range st.CompletedSteps {
		done[i] = true
	}
	steps := make([]models.RecipeStep, len(selected.Steps))
	for i, text := range selected.Steps {
		steps[i] = models.RecipeStep{Index: i, Text: text, Done: done[i]}
	}

	return &models.RecipePage{
		Recipes:     summaries,
		Multipliers: Multipliers,
		CookMode:    st.CookMode,
		Detail: models.RecipeDetail{
			ID:          selected.ID,
			Title:       selected.Title,
			Description: selected.Description,
			PrepTime:    selected.PrepTime,
			CookTime:    selected.CookTime,
			Servings:    selected.Servings,
			Tags:        selected.Tags,
			Category:    selected.Category,
			Multiplier:  st.Multiplier,
			Ingredients: Scale(selected, st.Multiplier),
			Steps:       steps,
		},
	}
}
