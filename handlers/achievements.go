// handlers/achievements.go
package handlers

import (
	"time"

	"snowline/database"
	"snowline/middleware"
	"snowline/models"
	"snowline/services"

	"github.com/gofiber/fiber/v2"
)

// AchievementView is a catalog entry merged with the caller's state.
type AchievementView struct {
	models.Achievement
	Points     int                         `json:"points"`
	Unlocked   bool                        `json:"unlocked"`
	UnlockedAt string                      `json:"unlocked_at,omitempty"`
	Progress   *models.AchievementProgress `json:"progress,omitempty"`
}

// GetAchievements returns the catalog merged with the caller's unlock and
// progress state. Pro achievements are hidden from unverified users.
func GetAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	ledger := achievementSvc.Ledger(userID)

	unlockedAt := make(map[string]string, len(ledger.Unlocked))
	for _, ua := range ledger.Unlocked {
		unlockedAt[ua.ID] = ua.UnlockedAt.UTC().Format(time.RFC3339)
	}
	progressByID := make(map[string]models.AchievementProgress, len(ledger.Progress))
	for _, p := range ledger.Progress {
		progressByID[p.AchievementID] = p
	}

	category := c.Query("category")

	views := make([]AchievementView, 0, services.CatalogSize())
	for _, a := range services.AllAchievements() {
		if a.Category == models.CategoryPro && !user.IsVerified {
			continue
		}
		if category != "" && string(a.Category) != category {
			continue
		}

		view := AchievementView{
			Achievement: a,
			Points:      services.RarityPoints(a.Rarity),
		}
		if at, ok := unlockedAt[a.ID]; ok {
			view.Unlocked = true
			view.UnlockedAt = at
		} else if p, ok := progressByID[a.ID]; ok {
			progress := p
			view.Progress = &progress
		}
		views = append(views, view)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": views,
	})
}

// GetAchievementSummary returns the caller's ledger totals plus their
// current stats snapshot.
func GetAchievementSummary(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	var runs []models.Run
	if err := db.Where("user_id = ?", userID).Find(&runs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load runs"})
	}

	ledger := achievementSvc.Ledger(userID)
	snapshot := services.ComputeStats(&user, runs)

	return c.JSON(fiber.Map{
		"success":           true,
		"unlocked_count":    len(ledger.Unlocked),
		"total_points":      ledger.TotalPoints,
		"completion_rate":   ledger.CompletionRate,
		"favorite_category": ledger.FavoriteCategory,
		"stats":             snapshot,
	})
}

// GetNotifications lists the caller's unlock notifications, newest first.
func GetNotifications(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	notifications := achievementSvc.Notifications().List(userID)

	unseen := 0
	for _, n := range notifications {
		if n.IsNew {
			unseen++
		}
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"notifications": notifications,
		"unseen":        unseen,
	})
}

// AcknowledgeNotifications marks all of the caller's notifications as seen.
func AcknowledgeNotifications(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	achievementSvc.Notifications().AcknowledgeAll(userID)

	return c.JSON(fiber.Map{"success": true})
}

// PruneNotifications drops the caller's notifications older than max_age_days
// (defaults to the retention window).
func PruneNotifications(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	maxAgeDays := c.QueryInt("max_age_days", 0)
	removed := achievementSvc.Notifications().Prune(userID, maxAgeDays)

	return c.JSON(fiber.Map{"success": true, "removed": removed})
}
