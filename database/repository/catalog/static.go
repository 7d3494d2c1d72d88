package catalogRepo

import (
	"context"

	"sattva/models"
)

// StaticCatalogRepo serves the compiled-in catalogs.
type StaticCatalogRepo struct{}

// NewStaticCatalogRepo returns the compiled-in catalog.
func NewStaticCatalogRepo() CatalogRepository {
	return &StaticCatalogRepo{}
}

func (r *StaticCatalogRepo) Recipes(ctx context.Context) ([]models.Recipe, error) {
	out := make([]models.Recipe, len(recipes))
	for i, rec := range recipes {
		out[i] = copyRecipe(rec)
	}
	return out, nil
}

func (r *StaticCatalogRepo) RecipeByID(ctx context.Context, id string) (*models.Recipe, error) {
	for _, rec := range recipes {
		if rec.ID == id {
			c := copyRecipe(rec)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *StaticCatalogRepo) Providers(ctx context.Context) ([]models.Provider, error) {
	out := make([]models.Provider, len(providers))
	for i, p := range providers {
		p.Availability = append([]string(nil), p.Availability...)
		out[i] = p
	}
	return out, nil
}

func (r *StaticCatalogRepo) ProviderByID(ctx context.Context, id int) (*models.Provider, error) {
	for _, p := range providers {
		if p.ID == id {
			p.Availability = append([]string(nil), p.Availability...)
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *StaticCatalogRepo) TimeSlots(ctx context.Context) ([]string, error) {
	return append([]string(nil), timeSlots...), nil
}

func (r *StaticCatalogRepo) Products(ctx context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), products...), nil
}

func (r *StaticCatalogRepo) Articles(ctx context.Context) ([]models.Article, error) {
	return append([]models.Article(nil), articles...), nil
}

func copyRecipe(r models.Recipe) models.Recipe {
	r.Tags = append([]string(nil), r.Tags...)
	r.Ingredients = append([]models.Ingredient(nil), r.Ingredients...)
	r.Steps = append([]string(nil), r.Steps...)
	return r
}
