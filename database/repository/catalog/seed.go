package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique id index on every catalog collection.
func (r *MongoCatalogRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "position", Value: 1}}},
	}
	for _, coll := range []*mongo.Collection{r.recipes, r.providers, r.products, r.articles} {
		if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
		}
	}
	return nil
}

// Seed upserts the compiled-in catalog so the Mongo copy matches it. It is
// safe to run on every start.
func (r *MongoCatalogRepo) Seed(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	upsert := options.Replace().SetUpsert(true)
	for _, rec := range recipes {
		if _, err := r.recipes.ReplaceOne(ctx, bson.M{"id": rec.ID}, rec, upsert); err != nil {
			return fmt.Errorf("failed to seed recipe %s: %w", rec.ID, err)
		}
	}
	for _, p := range providers {
		if _, err := r.providers.ReplaceOne(ctx, bson.M{"id": p.ID}, p, upsert); err != nil {
			return fmt.Errorf("failed to seed provider %d: %w", p.ID, err)
		}
	}
	for _, p := range products {
		if _, err := r.products.ReplaceOne(ctx, bson.M{"id": p.ID}, p, upsert); err != nil {
			return fmt.Errorf("failed to seed product %d: %w", p.ID, err)
		}
	}
	for _, a := range articles {
		if _, err := r.articles.ReplaceOne(ctx, bson.M{"id": a.ID}, a, upsert); err != nil {
			return fmt.Errorf("failed to seed article %d: %w", a.ID, err)
		}
	}
	return nil
}
