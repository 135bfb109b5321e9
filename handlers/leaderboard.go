// handlers/leaderboard.go
package handlers

import (
	"snowline/database"
	"snowline/models"
	"snowline/services"

	"github.com/gofiber/fiber/v2"
)

// LeaderboardRow is one ranked user with display fields resolved.
type LeaderboardRow struct {
	Rank        int     `json:"rank"`
	UserID      uint    `json:"user_id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar,omitempty"`
	Value       float64 `json:"value"`
}

// GetLeaderboard ranks all non-guest users by the requested category:
// distance, vertical, runs or achievement points.
func GetLeaderboard(c *fiber.Ctx) error {
	category := services.LeaderboardCategory(c.Query("category", "distance"))
	switch category {
	case services.LeaderboardDistance, services.LeaderboardVertical,
		services.LeaderboardRuns, services.LeaderboardPoints:
	default:
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unknown leaderboard category"})
	}

	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	db := database.GetDB()

	var users []models.User
	if err := db.Where("is_guest = ?", false).Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load users"})
	}
	eligible := make(map[uint]models.User, len(users))
	for _, u := range users {
		eligible[u.ID] = u
	}

	values := make(map[uint]float64)
	if category == services.LeaderboardPoints {
		for id := range eligible {
			if points := achievementSvc.Ledger(id).TotalPoints; points > 0 {
				values[id] = float64(points)
			}
		}
	} else {
		var runs []models.Run
		if err := db.Find(&runs).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load runs"})
		}
		for id, totals := range services.AggregateRunTotals(runs) {
			if _, ok := eligible[id]; !ok {
				continue
			}
			switch category {
			case services.LeaderboardDistance:
				values[id] = totals.Distance
			case services.LeaderboardVertical:
				values[id] = totals.Vertical
			case services.LeaderboardRuns:
				values[id] = float64(totals.Runs)
			}
		}
	}

	entries := services.RankByValue(values)
	if offset >= len(entries) {
		entries = nil
	} else {
		entries = entries[offset:]
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	rows := make([]LeaderboardRow, 0, len(entries))
	for _, e := range entries {
		user := eligible[e.UserID]
		rows = append(rows, LeaderboardRow{
			Rank:        e.Rank,
			UserID:      e.UserID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
			Avatar:      user.Avatar,
			Value:       e.Value,
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"category":    category,
		"leaderboard": rows,
	})
}

// GetResortRankings ranks each user's best public run at a resort by
// distance.
func GetResortRankings(c *fiber.Ctx) error {
	resortID := c.Params("id")
	if resortID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Resort id required"})
	}

	db := database.GetDB()

	var resort models.Resort
	if err := db.First(&resort, "id = ?", resortID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Resort not found"})
	}

	var runs []models.Run
	if err := db.Where("resort_id = ? AND is_public = ?", resortID, true).Find(&runs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load runs"})
	}

	rankings := services.RankResortRuns(runs, resortID)

	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 100 {
		limit = 50
	}
	if len(rankings) > limit {
		rankings = rankings[:limit]
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"resort":   resort,
		"rankings": rankings,
	})
}
