package filter

import (
	"context"
	"fmt"

	catalogRepo "sattva/database/repository/catalog"
	"sattva/models"
	"sattva/services/session"
	"sattva/utils"

	"go.uber.org/zap"
)

const shopMarquee = "Wildcrafted • Organic • Small Batch • Ancient Wisdom • Modern Science •"

var (
	shopFeatured = models.ContentPoint{Title: "Triphala", Description: "The ultimate gut reset."}
	shopWhy      = []models.ContentPoint{
		{Title: "Potency", Description: "3x higher active alkaloids than farmed herbs."},
		{Title: "Purity", Description: "No pesticides, just rainwater and sunshine."},
		{Title: "Karma", Description: "Sustainably harvested to protect the ecosystem."},
	}
)

// ShopService serves the apothecary page filtered by dosha.
type ShopService interface {
	View(ctx context.Context, sessionID string) (*models.ShopPage, error)
	Select(ctx context.Context, sessionID, value string) (*models.ShopPage, error)
}

type DefaultShopService struct {
	Catalog catalogRepo.CatalogRepository
	Store   session.Store
	Locker  *session.Locker
	Media   utils.MediaResolver
	Logger  *zap.Logger
}

func (s *DefaultShopService) View(ctx context.Context, sessionID string) (*models.ShopPage, error) {
	active, err := activeFilter(ctx, s.Store, sessionID, session.KeyShop, ShopFilters)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, active)
}

func (s *DefaultShopService) Select(ctx context.Context, sessionID, value string) (*models.ShopPage, error) {
	unlock := s.Locker.Lock(sessionID)
	err := setFilter(ctx, s.Store, sessionID, session.KeyShop, ShopFilters, value)
	unlock()
	if err != nil {
		return nil, err
	}
	s.Logger.Debug("shop filter changed", zap.String("sessionID", sessionID), zap.String("filter", value))
	return s.render(ctx, value)
}

func (s *DefaultShopService) render(ctx context.Context, active string) (*models.ShopPage, error) {
	products, err := s.Catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	visible := Apply(products, active, func(p models.Product) string { return p.Dosha })
	if s.Media != nil {
		for i := range visible {
			visible[i].ImageURL = s.Media.ImageURL(visible[i].ImageID)
		}
	}
	return &models.ShopPage{
		Filter:   controls(ShopFilters, active),
		Products: visible,
		Marquee:  shopMarquee,
		Featured: shopFeatured,
		Why:      shopWhy,
	}, nil
}
