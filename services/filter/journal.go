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

// JournalService serves the journal listing filtered by tag.
type JournalService interface {
	View(ctx context.Context, sessionID string) (*models.JournalPage, error)
	Select(ctx context.Context, sessionID, value string) (*models.JournalPage, error)
}

type DefaultJournalService struct {
	Catalog catalogRepo.CatalogRepository
	Store   session.Store
	Locker  *session.Locker
	Media   utils.MediaResolver
	Logger  *zap.Logger
}

func (s *DefaultJournalService) View(ctx context.Context, sessionID string) (*models.JournalPage, error) {
	active, err := activeFilter(ctx, s.Store, sessionID, session.KeyJournal, JournalFilters)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, active)
}

func (s *DefaultJournalService) Select(ctx context.Context, sessionID, value string) (*models.JournalPage, error) {
	unlock := s.Locker.Lock(sessionID)
	err := setFilter(ctx, s.Store, sessionID, session.KeyJournal, JournalFilters, value)
	unlock()
	if err != nil {
		return nil, err
	}
	s.Logger.Debug("journal filter changed", zap.String("sessionID", sessionID), zap.String("filter", value))
	return s.render(ctx, value)
}

func (s *DefaultJournalService) render(ctx context.Context, active string) (*models.JournalPage, error) {
	articles, err := s.Catalog.Articles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load articles: %w", err)
	}
	visible := Apply(articles, active, func(a models.Article) string { return a.Tag })
	if s.Media != nil {
		for i := range visible {
			visible[i].ImageURL = s.Media.ImageURL(visible[i].ImageID)
		}
	}
	return &models.JournalPage{
		Filter:   controls(JournalFilters, active),
		Articles: visible,
	}, nil
}
