package catalogRepo

import (
	"context"
	"errors"

	"sattva/models"
)

// ErrNotFound is returned when a catalog lookup has no match.
var ErrNotFound = errors.New("catalog item not found")

// CatalogRepository exposes the read-only storefront catalogs. Every list is
// returned in catalog order, and callers own the returned slices.
type CatalogRepository interface {
	// Recipes returns all recipes.
	Recipes(ctx context.Context) ([]models.Recipe, error)
	// RecipeByID returns a single recipe.
	RecipeByID(ctx context.Context, id string) (*models.Recipe, error)
	// Providers returns all bookable providers.
	Providers(ctx context.Context) ([]models.Provider, error)
	// ProviderByID returns a single provider.
	ProviderByID(ctx context.Context, id int) (*models.Provider, error)
	// TimeSlots returns the fixed consultation times.
	TimeSlots(ctx context.Context) ([]string, error)
	// Products returns the apothecary catalog.
	Products(ctx context.Context) ([]models.Product, error)
	// Articles returns the journal catalog.
	Articles(ctx context.Context) ([]models.Article, error)
}
