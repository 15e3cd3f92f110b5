package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsaini/home-service-app/db"
	"github.com/kunalsaini/home-service-app/models"
)

// GetWishlist returns the caller's saved providers
func GetWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var items []models.WishlistItem
	if err := db.DB.Preload("Provider").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch wishlist",
		})
	}

	return c.JSON(fiber.Map{
		"items": items,
		"count": len(items),
	})
}

// AddToWishlist saves a provider. Adding the same provider twice is a no-op.
func AddToWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	type WishlistInput struct {
		ProviderID uint `json:"provider_id"`
	}

	input := new(WishlistInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var provider models.Provider
	if err := db.DB.First(&provider, input.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	var existing models.WishlistItem
	if db.DB.Where("user_id = ? AND provider_id = ?", userID, input.ProviderID).
		First(&existing).RowsAffected > 0 {
		return c.JSON(existing)
	}

	item := models.WishlistItem{
		UserID:     userID,
		ProviderID: input.ProviderID,
	}
	if err := db.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add to wishlist",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// RemoveFromWishlist deletes a saved provider
func RemoveFromWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	result := db.DB.Where("user_id = ? AND provider_id = ?", userID, c.Params("providerId")).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove from wishlist",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not in wishlist",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
