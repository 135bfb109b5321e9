// handlers/premium.go
package handlers

import (
	"snowline/database"
	"snowline/middleware"
	"snowline/models"

	"github.com/gofiber/fiber/v2"
)

// UpgradeToPro flags the account as verified and re-runs the achievement
// evaluation so pro_upgrade achievements unlock immediately.
func UpgradeToPro(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	if user.IsGuest {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Guests cannot upgrade. Create an account first."})
	}

	if !user.IsVerified {
		if err := db.Model(&user).Update("is_verified", true).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to upgrade account"})
		}
		user.IsVerified = true
	}

	var runs []models.Run
	if err := db.Where("user_id = ?", userID).Order("start_time ASC").Find(&runs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load run history"})
	}

	// No triggering run here; only cumulative requirements can fire.
	result := achievementSvc.RecordRun(&user, runs, nil)

	return c.JSON(fiber.Map{
		"success":        true,
		"user":           user,
		"newly_unlocked": result.NewlyUnlocked,
	})
}
