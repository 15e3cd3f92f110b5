package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsaini/home-service-app/controllers"
	"github.com/kunalsaini/home-service-app/middleware"
)

// SetupConsumerRoutes configures profile, wishlist and review routes
func SetupConsumerRoutes(app *fiber.App) {
	consumer := app.Group("/consumer", middleware.Protected())

	consumer.Patch("/profile", controllers.UpdateProfile)
	consumer.Post("/profile/picture", controllers.UpdateProfilePicture)

	consumer.Get("/wishlist", controllers.GetWishlist)
	consumer.Post("/wishlist", controllers.AddToWishlist)
	consumer.Delete("/wishlist/:providerId", controllers.RemoveFromWishlist)

	consumer.Post("/reviews", controllers.CreateReview)
}
