package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/kunalsaini/home-service-app/db"
	"github.com/kunalsaini/home-service-app/models"
)

// CreateReview adds a new review for a provider. The overall rating is
// derived from the four criteria in the model hook; an all-zero submission
// is rejected there.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	review := new(models.Review)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	review.CustomerID = userID

	// Check if the provider exists
	var provider models.Provider
	if err := db.DB.First(&provider, review.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	hasExisting, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if hasExisting {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this provider. Please update your existing review.",
		})
	}

	// If a booking is linked, verify it exists and belongs to the customer
	if review.BookingID != nil && *review.BookingID > 0 {
		var booking models.Booking
		if err := db.DB.Where("id = ? AND user_id = ? AND provider_id = ?",
			*review.BookingID, userID, review.ProviderID).
			First(&booking).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Booking not found or does not match the review details",
			})
		}
		review.IsVerified = true
	}

	if err := db.DB.Create(review).Error; err != nil {
		// BeforeCreate surfaces validation failures ("rating required")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	refreshProviderRating(review.ProviderID)

	return c.Status(fiber.StatusCreated).JSON(review)
}

// refreshProviderRating recomputes the catalogue rating from the reviews
func refreshProviderRating(providerID uint) {
	var result struct {
		AvgRating float64
		Count     int64
	}
	db.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(overall), 0) as avg_rating, COUNT(*) as count").
		Where("provider_id = ?", providerID).
		Scan(&result)

	db.DB.Model(&models.Provider{}).Where("id = ?", providerID).
		Updates(map[string]interface{}{
			"rating":       result.AvgRating,
			"review_count": result.Count,
		})
}

// GetProviderReviews retrieves all reviews for a specific provider
func GetProviderReviews(c *fiber.Ctx) error {
	providerID := c.Params("id")

	page, limit, offset := parsePagination(c.Query("page", "1"), c.Query("limit", "10"))

	var reviews []models.Review
	if err := db.DB.Preload("Customer", func(db *gorm.DB) *gorm.DB {
		// Only select non-sensitive fields
		return db.Select("id, name, created_at")
	}).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	// Count total reviews for pagination
	var count int64
	db.DB.Model(&models.Review{}).Where("provider_id = ?", providerID).Count(&count)

	// Handle anonymous reviews - hide customer information
	for i := range reviews {
		if reviews[i].IsAnonymous {
			reviews[i].Customer.Name = "Anonymous User"
		}
	}

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"total":   count,
		"page":    page,
		"limit":   limit,
		"pages":   (int(count) + limit - 1) / limit,
	})
}

// GetProviderReviewStats retrieves review statistics for a provider
func GetProviderReviewStats(c *fiber.Ctx) error {
	providerID := c.Params("id")

	type ReviewStats struct {
		ProviderID   uint    `json:"provider_id"`
		TotalReviews int64   `json:"total_reviews"`
		AvgRating    float64 `json:"average_rating"`
		Rating5Count int64   `json:"rating_5_count"`
		Rating4Count int64   `json:"rating_4_count"`
		Rating3Count int64   `json:"rating_3_count"`
		Rating2Count int64   `json:"rating_2_count"`
		Rating1Count int64   `json:"rating_1_count"`
	}

	providerIDUint, _ := strconv.ParseUint(providerID, 10, 32)
	stats := ReviewStats{
		ProviderID: uint(providerIDUint),
	}

	db.DB.Model(&models.Review{}).Where("provider_id = ?", providerID).Count(&stats.TotalReviews)

	var avgResult struct {
		AvgRating float64
	}
	db.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(overall), 0) as avg_rating").
		Where("provider_id = ?", providerID).
		Scan(&avgResult)

	stats.AvgRating = avgResult.AvgRating

	// Count reviews by rating band
	db.DB.Model(&models.Review{}).Where("provider_id = ? AND overall >= 4.5 AND overall <= 5.0", providerID).Count(&stats.Rating5Count)
	db.DB.Model(&models.Review{}).Where("provider_id = ? AND overall >= 3.5 AND overall < 4.5", providerID).Count(&stats.Rating4Count)
	db.DB.Model(&models.Review{}).Where("provider_id = ? AND overall >= 2.5 AND overall < 3.5", providerID).Count(&stats.Rating3Count)
	db.DB.Model(&models.Review{}).Where("provider_id = ? AND overall >= 1.5 AND overall < 2.5", providerID).Count(&stats.Rating2Count)
	db.DB.Model(&models.Review{}).Where("provider_id = ? AND overall >= 0.5 AND overall < 1.5", providerID).Count(&stats.Rating1Count)

	return c.JSON(stats)
}
