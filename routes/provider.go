package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsaini/home-service-app/controllers"
)

// SetupProviderRoutes configures the provider catalogue routes
func SetupProviderRoutes(app *fiber.App) {
	provider := app.Group("/providers")
	provider.Get("/", controllers.GetAllProviders)
	provider.Get("/featured", controllers.GetFeaturedProviders)
	provider.Get("/search", controllers.SearchProviders)
	provider.Post("/filter", controllers.FilterProviders)
	provider.Get("/:id", controllers.GetProviderDetails)
	provider.Get("/:id/reviews", controllers.GetProviderReviews)
	provider.Get("/:id/reviews/stats", controllers.GetProviderReviewStats)
}
