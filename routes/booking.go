package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsaini/home-service-app/controllers"
	"github.com/kunalsaini/home-service-app/middleware"
)

// SetupBookingRoutes configures the multi-step booking flow and history
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())

	// Draft pipeline: customize -> schedule -> checkout -> payment
	booking.Post("/drafts", controllers.CreateBookingDraft)
	booking.Put("/drafts/:id/customization", controllers.UpdateCustomization)
	booking.Put("/drafts/:id/schedule", controllers.UpdateSchedule)
	booking.Get("/drafts/:id/checkout", controllers.GetCheckoutSummary)
	booking.Post("/drafts/:id/coupon", controllers.ApplyCoupon)
	booking.Delete("/drafts/:id/coupon", controllers.RemoveCoupon)
	booking.Post("/drafts/:id/payment", controllers.MakePayment)

	// History
	booking.Get("/", controllers.GetBookingHistory)
	booking.Get("/:ref", controllers.GetBookingDetails)
}
