package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/kunalsaini/home-service-app/db"
	"github.com/kunalsaini/home-service-app/models"
	"github.com/kunalsaini/home-service-app/utils"
)

// GetAllProviders returns the provider catalogue
func GetAllProviders(c *fiber.Ctx) error {
	var providers []models.Provider

	page, limit, offset := parsePagination(c.Query("page", "1"), c.Query("limit", "10"))

	if err := db.DB.Limit(limit).Offset(offset).Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch providers",
		})
	}

	// Count total records for pagination
	var count int64
	db.DB.Model(&models.Provider{}).Count(&count)

	return c.JSON(fiber.Map{
		"providers": providers,
		"total":     count,
		"page":      page,
		"limit":     limit,
		"pages":     (int(count) + limit - 1) / limit,
	})
}

// GetProviderDetails returns details for a specific provider
func GetProviderDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var provider models.Provider
	if err := db.DB.First(&provider, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	return c.JSON(provider)
}

// FilterProviders returns the providers matching the selected filter
// criteria. Categories combine with AND; the job and language sets use OR
// semantics. An empty criteria record returns the full catalogue.
func FilterProviders(c *fiber.Ctx) error {
	criteria := new(utils.FilterCriteria)
	if err := c.BodyParser(criteria); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var providers []models.Provider
	if err := db.DB.Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch providers",
		})
	}

	filtered := utils.FilterProviders(providers, *criteria)

	return c.JSON(fiber.Map{
		"providers": filtered,
		"count":     len(filtered),
	})
}

// SearchProviders searches providers by name or job role
func SearchProviders(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query is required",
		})
	}

	var providers []models.Provider
	searchQuery := fmt.Sprintf("%%%s%%", query)

	if err := db.DB.
		Where("name ILIKE ? OR job_roles::text ILIKE ?", searchQuery, searchQuery).
		Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search providers",
		})
	}

	return c.JSON(fiber.Map{
		"providers": providers,
		"count":     len(providers),
	})
}

// GetFeaturedProviders returns top-rated providers
func GetFeaturedProviders(c *fiber.Ctx) error {
	var providers []models.Provider

	if err := db.DB.
		Order("rating DESC, review_count DESC").
		Limit(10).
		Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch featured providers",
		})
	}

	return c.JSON(fiber.Map{
		"providers": providers,
	})
}
