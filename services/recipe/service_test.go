package recipe

import (
	"context"
	"testing"
	"time"

	catalogRepo "sattva/database/repository/catalog"
	"sattva/services/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *DefaultRecipeService {
	return &DefaultRecipeService{
		Catalog: catalogRepo.NewStaticCatalogRepo(),
		Store:   session.NewMemoryStore(time.Hour),
		Locker:  session.NewLocker(),
		Logger:  zap.NewNop(),
	}
}

func TestViewDefaultsToFirstRecipe(t *testing.T) {
	svc := newTestService()
	page, err := svc.View(context.Background(), "sid")
	require.NoError(t, err)

	require.Len(t, page.Recipes, 10)
	assert.True(t, page.Recipes[0].Selected)
	assert.Equal(t, "Sleep", page.Recipes[0].Tag)
	assert.Equal(t, "golden-milk", page.Detail.ID)
	assert.Equal(t, 1, page.Detail.Multiplier)
	assert.Equal(t, []int{1, 2, 3}, page.Multipliers)
	assert.False(t, page.CookMode)

	// 2 cups × 1 × 2 servings.
	assert.Equal(t, "4", page.Detail.Ingredients[0].Display)
	// 0.5 tsp × 1 × 2 servings.
	assert.Equal(t, "1", page.Detail.Ingredients[1].Display)
	for _, st := range page.Detail.Steps {
		assert.False(t, st.Done)
	}
}

func TestSetMultiplierScalesIngredients(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Select(ctx, "sid", "kitchari")
	require.NoError(t, err)
	page, err := svc.SetMultiplier(ctx, "sid", 3)
	require.NoError(t, err)

	assert.Equal(t, 3, page.Detail.Multiplier)
	// Split Mung Beans: 0.5 × 3 × 4.
	assert.Equal(t, 6.0, page.Detail.Ingredients[1].Qty)

	_, err = svc.SetMultiplier(ctx, "sid", 4)
	assert.ErrorIs(t, err, ErrInvalidMultiplier)

	page, err = svc.View(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, 3, page.Detail.Multiplier)
}

func TestSwitchingRecipeResetsState(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SetMultiplier(ctx, "sid", 2)
	require.NoError(t, err)
	_, err = svc.ToggleStep(ctx, "sid", 0)
	require.NoError(t, err)
	_, err = svc.ToggleStep(ctx, "sid", 3)
	require.NoError(t, err)
	page, err := svc.SetCookMode(ctx, "sid", true)
	require.NoError(t, err)
	require.True(t, page.CookMode)
	require.True(t, page.Detail.Steps[3].Done)

	page, err = svc.Select(ctx, "sid", "ccf-tea")
	require.NoError(t, err)
	assert.Equal(t, "ccf-tea", page.Detail.ID)
	assert.Equal(t, 1, page.Detail.Multiplier)
	assert.False(t, page.CookMode)
	for _, st := range page.Detail.Steps {
		assert.False(t, st.Done)
	}
}

func TestSelectSameRecipeKeepsState(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SetMultiplier(ctx, "sid", 3)
	require.NoError(t, err)
	_, err = svc.ToggleStep(ctx, "sid", 1)
	require.NoError(t, err)
	_, err = svc.SetCookMode(ctx, "sid", true)
	require.NoError(t, err)

	page, err := svc.Select(ctx, "sid", "golden-milk")
	require.NoError(t, err)
	assert.Equal(t, "golden-milk", page.Detail.ID)
	assert.Equal(t, 3, page.Detail.Multiplier)
	assert.True(t, page.Detail.Steps[1].Done)
	assert.True(t, page.CookMode)
}

func TestToggleStep(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	page, err := svc.ToggleStep(ctx, "sid", 2)
	require.NoError(t, err)
	assert.True(t, page.Detail.Steps[2].Done)

	page, err = svc.ToggleStep(ctx, "sid", 2)
	require.NoError(t, err)
	assert.False(t, page.Detail.Steps[2].Done)

	_, err = svc.ToggleStep(ctx, "sid", 5)
	assert.ErrorIs(t, err, ErrInvalidStep)
	_, err = svc.ToggleStep(ctx, "sid", -1)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestSelectUnknownRecipe(t *testing.T) {
	svc := newTestService()
	_, err := svc.Select(context.Background(), "sid", "pizza")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestSessionsAreIndependent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Select(ctx, "a", "mung-soup")
	require.NoError(t, err)

	page, err := svc.View(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "golden-milk", page.Detail.ID)
}
