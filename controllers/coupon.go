package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsaini/home-service-app/db"
	"github.com/kunalsaini/home-service-app/models"
)

// GetCoupons returns the available offers shown in the coupon sheet
func GetCoupons(c *fiber.Ctx) error {
	var coupons []models.Coupon
	if err := db.DB.Find(&coupons).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch coupons",
		})
	}

	return c.JSON(fiber.Map{
		"coupons": coupons,
	})
}

// ValidateCoupon checks a code without attaching it to a draft
func ValidateCoupon(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter a coupon code",
		})
	}

	coupon, err := models.FindCoupon(db.DB, code)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invalid coupon code",
		})
	}
	if coupon.Expired() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Coupon has expired",
		})
	}

	return c.JSON(coupon)
}

// CreateCoupon adds a new offer to the table. Admin only.
func CreateCoupon(c *fiber.Ctx) error {
	coupon := new(models.Coupon)
	if err := c.BodyParser(coupon); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if coupon.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Coupon code is required",
		})
	}
	if coupon.DiscountPercent < 1 || coupon.DiscountPercent > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Discount percent must be between 1 and 100",
		})
	}
	if coupon.MaxDiscount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maximum discount must be positive",
		})
	}

	if err := db.DB.Create(coupon).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Coupon code already exists",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(coupon)
}
