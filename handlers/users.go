// handlers/users.go
package handlers

import (
	"snowline/database"
	"snowline/middleware"
	"snowline/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateUserRequest struct {
	DisplayName  *string `json:"display_name"`
	Avatar       *string `json:"avatar"`
	Bio          *string `json:"bio"`
	HomeResortID *string `json:"home_resort_id"`
}

// GetCurrentUser returns the authenticated user's profile.
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}

// UpdateCurrentUser updates the profile fields the client sent.
func UpdateCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		if len(*req.DisplayName) > 100 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Display name too long"})
		}
		updates["display_name"] = *req.DisplayName
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Bio != nil {
		if len(*req.Bio) > 500 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Bio too long"})
		}
		updates["bio"] = *req.Bio
	}
	if req.HomeResortID != nil {
		if *req.HomeResortID != "" {
			var resort models.Resort
			if err := db.First(&resort, "id = ?", *req.HomeResortID).Error; err != nil {
				return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unknown resort"})
			}
		}
		updates["home_resort_id"] = *req.HomeResortID
	}

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update profile"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}
