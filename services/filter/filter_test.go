package filter

import (
	"context"
	"testing"
	"time"

	catalogRepo "sattva/database/repository/catalog"
	"sattva/models"
	"sattva/services/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMedia struct{}

func (fakeMedia) ImageURL(id string) string { return "https://img.example/" + id }

func TestApply(t *testing.T) {
	items := []string{"a1", "b1", "a2", "c1", "a3"}
	first := func(s string) string { return s[:1] }

	tests := []struct {
		active string
		want   []string
	}{
		{models.FilterAll, items},
		{"a", []string{"a1", "a2", "a3"}},
		{"c", []string{"c1"}},
		{"z", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.active, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(items, tt.active, first))
		})
	}
}

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestShopFilterScenario(t *testing.T) {
	svc := &DefaultShopService{
		Catalog: catalogRepo.NewStaticCatalogRepo(),
		Store:   session.NewMemoryStore(time.Hour),
		Locker:  session.NewLocker(),
		Logger:  zap.NewNop(),
	}
	ctx := context.Background()

	page, err := svc.View(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, models.FilterAll, page.Filter.Active)
	assert.Equal(t, []string{"All", "Vata", "Pitta", "Kapha"}, page.Filter.Options)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(page.Products))
	assert.NotEmpty(t, page.Marquee)
	assert.Len(t, page.Why, 3)

	page, err = svc.Select(ctx, "sid", "Vata")
	require.NoError(t, err)
	for _, p := range page.Products {
		assert.Equal(t, "Vata", p.Dosha)
	}
	assert.Equal(t, []int{2}, ids(page.Products))

	page, err = svc.View(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "Vata", page.Filter.Active)

	page, err = svc.Select(ctx, "sid", "Kapha")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, ids(page.Products))

	page, err = svc.Select(ctx, "sid", models.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(page.Products))
}

func TestShopUnknownFilter(t *testing.T) {
	svc := &DefaultShopService{
		Catalog: catalogRepo.NewStaticCatalogRepo(),
		Store:   session.NewMemoryStore(time.Hour),
		Locker:  session.NewLocker(),
		Logger:  zap.NewNop(),
	}
	ctx := context.Background()

	_, err := svc.Select(ctx, "sid", "Pitta")
	require.NoError(t, err)
	_, err = svc.Select(ctx, "sid", "vata")
	assert.ErrorIs(t, err, ErrUnknownFilter)

	page, err := svc.View(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "Pitta", page.Filter.Active)
}

func TestJournalFilter(t *testing.T) {
	svc := &DefaultJournalService{
		Catalog: catalogRepo.NewStaticCatalogRepo(),
		Store:   session.NewMemoryStore(time.Hour),
		Locker:  session.NewLocker(),
		Media:   fakeMedia{},
		Logger:  zap.NewNop(),
	}
	ctx := context.Background()

	page, err := svc.View(ctx, "sid")
	require.NoError(t, err)
	require.Len(t, page.Articles, 3)
	assert.Equal(t, "https://img.example/sattva/journal/vata-morning-rituals", page.Articles[0].ImageURL)

	page, err = svc.Select(ctx, "sid", "Herbs")
	require.NoError(t, err)
	require.Len(t, page.Articles, 1)
	assert.Equal(t, "Understanding Ashwagandha", page.Articles[0].Title)

	// Meditation is offered but nothing is tagged with it yet.
	page, err = svc.Select(ctx, "sid", "Meditation")
	require.NoError(t, err)
	assert.Empty(t, page.Articles)

	_, err = svc.Select(ctx, "sid", "Sleep")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}
