package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/kunalsaini/home-service-app/controllers"
	"github.com/kunalsaini/home-service-app/cron"
	"github.com/kunalsaini/home-service-app/db"
	"github.com/kunalsaini/home-service-app/payments"
	"github.com/kunalsaini/home-service-app/redis"
	"github.com/kunalsaini/home-service-app/routes"
)

func main() {
	app := fiber.New()
	db.Migrate()
	db.Seed()
	redis.InitRedis()

	controllers.PaymentGateway = payments.FromEnv()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupConsumerRoutes(app)
	routes.SetupCouponRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
