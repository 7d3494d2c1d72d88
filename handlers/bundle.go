package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Shell endpoints
	HealthHandler gin.HandlerFunc
	NavHandler    gin.HandlerFunc
	HomeHandler   gin.HandlerFunc

	// Catalog endpoints
	ShopViewHandler      gin.HandlerFunc
	ShopFilterHandler    gin.HandlerFunc
	JournalViewHandler   gin.HandlerFunc
	JournalFilterHandler gin.HandlerFunc

	// Recipe endpoints
	RecipeViewHandler       gin.HandlerFunc
	RecipeSelectHandler     gin.HandlerFunc
	RecipeMultiplierHandler gin.HandlerFunc
	RecipeStepHandler       gin.HandlerFunc
	RecipeCookModeHandler   gin.HandlerFunc

	// Booking endpoints
	BookingViewHandler           gin.HandlerFunc
	BookingProviderHandler       gin.HandlerFunc
	BookingChangeProviderHandler gin.HandlerFunc
	BookingDateHandler           gin.HandlerFunc
	BookingTimeHandler           gin.HandlerFunc
	BookingConfirmHandler        gin.HandlerFunc
	BookingResetHandler          gin.HandlerFunc
	BookingTeardownHandler       gin.HandlerFunc

	// Newsletter endpoints
	NewsletterStateHandler     gin.HandlerFunc
	NewsletterScrollHandler    gin.HandlerFunc
	NewsletterDismissHandler   gin.HandlerFunc
	NewsletterSubscribeHandler gin.HandlerFunc

	// Session endpoints
	EndSessionHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler's methods into the bundle.
func NewHandlerBundle(health *HealthHandler, page *PageHandler, catalog *CatalogHandler, recipe *RecipeHandler, booking *BookingHandler, newsletter *NewsletterHandler, sess *SessionHandler) *HandlerBundle {
	return &HandlerBundle{
		HealthHandler: health.Health,
		NavHandler:    page.Nav,
		HomeHandler:   page.Home,

		ShopViewHandler:      catalog.ShopView,
		ShopFilterHandler:    catalog.ShopFilter,
		JournalViewHandler:   catalog.JournalView,
		JournalFilterHandler: catalog.JournalFilter,

		RecipeViewHandler:       recipe.View,
		RecipeSelectHandler:     recipe.Select,
		RecipeMultiplierHandler: recipe.SetMultiplier,
		RecipeStepHandler:       recipe.ToggleStep,
		RecipeCookModeHandler:   recipe.SetCookMode,

		BookingViewHandler:           booking.View,
		BookingProviderHandler:       booking.SelectProvider,
		BookingChangeProviderHandler: booking.ChangeProvider,
		BookingDateHandler:           booking.SelectDate,
		BookingTimeHandler:           booking.SelectTime,
		BookingConfirmHandler:        booking.Confirm,
		BookingResetHandler:          booking.BookAnother,
		BookingTeardownHandler:       booking.Teardown,

		NewsletterStateHandler:     newsletter.State,
		NewsletterScrollHandler:    newsletter.Scroll,
		NewsletterDismissHandler:   newsletter.Dismiss,
		NewsletterSubscribeHandler: newsletter.Subscribe,

		EndSessionHandler: sess.End,
	}
}
