package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsaini/home-service-app/controllers"
	"github.com/kunalsaini/home-service-app/middleware"
)

// SetupCouponRoutes configures the coupon routes
func SetupCouponRoutes(app *fiber.App) {
	coupon := app.Group("/coupons", middleware.Protected())
	coupon.Get("/", controllers.GetCoupons)
	coupon.Get("/validate", controllers.ValidateCoupon)
	coupon.Post("/", middleware.RequireRole("admin"), controllers.CreateCoupon)
}
