// handlers/resorts.go
package handlers

import (
	"snowline/database"
	"snowline/models"

	"github.com/gofiber/fiber/v2"
)

// GetResorts lists the known resorts, optionally filtered by country.
func GetResorts(c *fiber.Ctx) error {
	db := database.GetDB()

	var resorts []models.Resort
	query := db.Order("name ASC")
	if country := c.Query("country"); country != "" {
		query = query.Where("country = ?", country)
	}
	if err := query.Find(&resorts).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load resorts"})
	}

	return c.JSON(fiber.Map{"success": true, "resorts": resorts})
}

// GetResort returns a single resort by slug.
func GetResort(c *fiber.Ctx) error {
	db := database.GetDB()

	var resort models.Resort
	if err := db.First(&resort, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Resort not found"})
	}

	return c.JSON(fiber.Map{"success": true, "resort": resort})
}
