package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sattva/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	recipesCollection   = "recipes"
	providersCollection = "providers"
	productsCollection  = "products"
	articlesCollection  = "articles"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB. The catalog is
// never written through this type; Seed loads it from the compiled-in data.
type MongoCatalogRepo struct {
	recipes   *mongo.Collection
	providers *mongo.Collection
	products  *mongo.Collection
	articles  *mongo.Collection
}

// NewMongoCatalogRepo creates a catalog repository over the given database.
func NewMongoCatalogRepo(db *mongo.Database) *MongoCatalogRepo {
	return &MongoCatalogRepo{
		recipes:   db.Collection(recipesCollection),
		providers: db.Collection(providersCollection),
		products:  db.Collection(productsCollection),
		articles:  db.Collection(articlesCollection),
	}
}

var byPosition = options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

func findAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := coll.Find(ctx, bson.M{}, byPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)
	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var out T
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch from %s: %w", coll.Name(), err)
	}
	return &out, nil
}

func (r *MongoCatalogRepo) Recipes(ctx context.Context) ([]models.Recipe, error) {
	return findAll[models.Recipe](ctx, r.recipes)
}

func (r *MongoCatalogRepo) RecipeByID(ctx context.Context, id string) (*models.Recipe, error) {
	return findOne[models.Recipe](ctx, r.recipes, bson.M{"id": id})
}

func (r *MongoCatalogRepo) Providers(ctx context.Context) ([]models.Provider, error) {
	return findAll[models.Provider](ctx, r.providers)
}

func (r *MongoCatalogRepo) ProviderByID(ctx context.Context, id int) (*models.Provider, error) {
	return findOne[models.Provider](ctx, r.providers, bson.M{"id": id})
}

// TimeSlots are a UI enumeration, not catalog content, so they are always
// served from the compiled-in list.
func (r *MongoCatalogRepo) TimeSlots(ctx context.Context) ([]string, error) {
	return append([]string(nil), timeSlots...), nil
}

func (r *MongoCatalogRepo) Products(ctx context.Context) ([]models.Product, error) {
	return findAll[models.Product](ctx, r.products)
}

func (r *MongoCatalogRepo) Articles(ctx context.Context) ([]models.Article, error) {
	return findAll[models.Article](ctx, r.articles)
}
