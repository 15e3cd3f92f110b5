package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsaini/home-service-app/db"
	"github.com/kunalsaini/home-service-app/models"
)

// GetBookingHistory returns the caller's bookings for the selected tab
// (all / past / upcoming), most recent booking date first
func GetBookingHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	tab := models.HistoryTab(c.Query("tab", string(models.TabAll)))

	var bookings []models.Booking
	if err := db.DB.Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}

	filtered, err := models.FilterHistory(bookings, tab)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"bookings": filtered,
		"tab":      tab,
		"count":    len(filtered),
	})
}

// GetBookingDetails returns a single booking owned by the caller
func GetBookingDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var booking models.Booking
	if err := db.DB.Where("booking_ref = ? AND user_id = ?", c.Params("ref"), userID).
		First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	return c.JSON(booking)
}
