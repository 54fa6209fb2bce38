// Package routes defines the API routing configuration.
// It wires repositories, services and handlers and groups routes by
// authentication requirement.
package routes

import (
	"shiprate/internal/handlers"
	"shiprate/internal/middleware"
	"shiprate/internal/repositories"
	"shiprate/internal/services/method"
	"shiprate/internal/services/payments"
	"shiprate/internal/services/pricing"
	"shiprate/internal/services/settings"
	"shiprate/internal/services/zone"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	zoneRepo := repositories.NewZoneRepository(db)
	methodRepo := repositories.NewMethodRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// Services
	settingsService := settings.NewService(settingsRepo, repositories.CacheService)
	zoneService := zone.NewService(zoneRepo)
	methodService := method.NewService(methodRepo, zoneRepo)
	pricingService := pricing.NewService(zoneRepo, methodRepo, settingsService)
	paymentsService := payments.NewService()

	// Handlers
	zoneHandler := handlers.NewZoneHandler(zoneService)
	methodHandler := handlers.NewMethodHandler(methodService)
	pricingHandler := handlers.NewPricingHandler(pricingService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	webhookHandler := handlers.NewWebhookHandler(paymentsService)

	app.Get("/health", handlers.HealthCheck)
	app.Post("/webhooks/payments", webhookHandler.HandlePaymentEvent)

	authMiddleware := middleware.NewAuthMiddleware()
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(settingsService)

	api := app.Group("/api/v1")

	// Storefront endpoints authenticated with an extension API key.
	public := api.Group("/public", apiKeyMiddleware.Handler)
	public.Post("/calculate_price", pricingHandler.CalculatePrice)

	// Platform endpoints authenticated with the platform's JWTs.
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/regions", zoneHandler.CreateZone)
	protected.Get("/regions/paginated", zoneHandler.ListZones)
	protected.Get("/regions/:id", zoneHandler.GetZone)
	protected.Put("/regions/:id", zoneHandler.UpdateZone)
	protected.Delete("/regions/:id", zoneHandler.DeleteZone)

	protected.Post("/methods", methodHandler.CreateMethod)
	protected.Get("/methods/paginated", methodHandler.ListMethods)
	protected.Get("/methods/:id", methodHandler.GetMethod)
	protected.Put("/methods/:id", methodHandler.UpdateMethod)
	protected.Delete("/methods/:id", methodHandler.DeleteMethod)

	protected.Get("/get_regions", pricingHandler.GetAvailableRegions)
	protected.Post("/calculate_price", pricingHandler.CalculatePrice)

	protected.Get("/settings", settingsHandler.GetSettings)
	protected.Put("/settings", settingsHandler.UpdateSettings)
	protected.Post("/settings/apikey", settingsHandler.GenerateAPIKey)
}
