package routes

import (
	"strings"
	"time"

	"sattva/handlers"
	"sattva/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouteOptions carries the settings the route-level middleware needs.
type RouteOptions struct {
	AllowedOrigins string
	SessionTTL     time.Duration
	SecureCookie   bool
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterShellRoutes registers the navigation and home content endpoints.
func RegisterShellRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/nav", hb.NavHandler)
	api.GET("/home", hb.HomeHandler)
}

// RegisterCatalogRoutes registers the filtered shop and journal endpoints.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/shop", hb.ShopViewHandler)
	api.PUT("/shop/filter", hb.ShopFilterHandler)
	api.GET("/journal", hb.JournalViewHandler)
	api.PUT("/journal/filter", hb.JournalFilterHandler)
}

// RegisterRecipeRoutes registers the recipe browser endpoints.
func RegisterRecipeRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	recipes := api.Group("/recipes")
	{
		recipes.GET("", hb.RecipeViewHandler)
		recipes.PUT("/selected", hb.RecipeSelectHandler)
		recipes.PUT("/multiplier", hb.RecipeMultiplierHandler)
		recipes.POST("/steps/:index/toggle", hb.RecipeStepHandler)
		recipes.PUT("/cook-mode", hb.RecipeCookModeHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookingGroup := api.Group("/booking")
	{
		bookingGroup.GET("", hb.BookingViewHandler)
		bookingGroup.POST("/provider", hb.BookingProviderHandler)
		bookingGroup.POST("/change-provider", hb.BookingChangeProviderHandler)
		bookingGroup.PUT("/date", hb.BookingDateHandler)
		bookingGroup.PUT("/time", hb.BookingTimeHandler)
		bookingGroup.POST("/confirm", hb.BookingConfirmHandler)
		bookingGroup.POST("/reset", hb.BookingResetHandler)
		bookingGroup.DELETE("", hb.BookingTeardownHandler)
	}
}

// RegisterNewsletterRoutes registers the newsletter prompt endpoints.
func RegisterNewsletterRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	nl := api.Group("/newsletter")
	{
		nl.GET("", hb.NewsletterStateHandler)
		nl.POST("/scroll", hb.NewsletterScrollHandler)
		nl.POST("/dismiss", hb.NewsletterDismissHandler)
		nl.POST("/subscribe", hb.NewsletterSubscribeHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts RouteOptions) {
	origins := strings.Split(opts.AllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// The session cookie needs credentials, which rule out a literal "*".
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsConfig.AllowOrigins = origins
	}
	r.Use(cors.New(corsConfig))

	RegisterHealthRoute(r, hb)

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(opts.SessionTTL, opts.SecureCookie))
	RegisterShellRoutes(api, hb)
	RegisterCatalogRoutes(api, hb)
	RegisterRecipeRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterNewsletterRoutes(api, hb)
	api.DELETE("/session", hb.EndSessionHandler)
}
