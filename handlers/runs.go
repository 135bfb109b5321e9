// handlers/runs.go
package handlers

import (
	"time"

	"snowline/database"
	"snowline/middleware"
	"snowline/models"

	"github.com/gofiber/fiber/v2"
)

type CreateRunRequest struct {
	ResortID          string    `json:"resort_id"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	Distance          float64   `json:"distance"`
	Vertical          float64   `json:"vertical"`
	MaxSpeed          float64   `json:"max_speed"`
	AverageSpeed      float64   `json:"average_speed"`
	IsPublic          bool      `json:"is_public"`
	WeatherConditions string    `json:"weather_conditions"`
}

// CreateRun saves a tracked run and runs the achievement evaluation over
// the user's full history with the new run as trigger.
func CreateRun(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	var req CreateRunRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.StartTime.IsZero() {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "start_time is required"})
	}
	if req.Distance < 0 || req.Vertical < 0 || req.MaxSpeed < 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Run stats cannot be negative"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	run := models.Run{
		UserID:            userID,
		ResortID:          req.ResortID,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Distance:          req.Distance,
		Vertical:          req.Vertical,
		MaxSpeed:          req.MaxSpeed,
		AverageSpeed:      req.AverageSpeed,
		IsPublic:          req.IsPublic,
		WeatherConditions: req.WeatherConditions,
	}

	if req.ResortID != "" {
		var resort models.Resort
		if err := db.First(&resort, "id = ?", req.ResortID).Error; err == nil {
			run.ResortName = resort.Name
		}
	}

	if err := db.Create(&run).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save run"})
	}

	var runs []models.Run
	if err := db.Where("user_id = ?", userID).Order("start_time ASC").Find(&runs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load run history"})
	}

	result := achievementSvc.RecordRun(&user, runs, &run)

	return c.Status(201).JSON(fiber.Map{
		"success":        true,
		"run":            run,
		"newly_unlocked": result.NewlyUnlocked,
		"stats":          result.Snapshot,
		"achievements": fiber.Map{
			"total_points":      result.Ledger.TotalPoints,
			"completion_rate":   result.Ledger.CompletionRate,
			"favorite_category": result.Ledger.FavoriteCategory,
		},
	})
}

// GetRuns returns the caller's runs, newest first, paginated.
func GetRuns(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	db := database.GetDB()

	var runs []models.Run
	query := db.Where("user_id = ?", userID).Order("start_time DESC")
	if resortID := c.Query("resort_id"); resortID != "" {
		query = query.Where("resort_id = ?", resortID)
	}
	if err := query.Limit(limit).Offset(offset).Find(&runs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load runs"})
	}

	var total int64
	db.Model(&models.Run{}).Where("user_id = ?", userID).Count(&total)

	return c.JSON(fiber.Map{
		"success": true,
		"runs":    runs,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// LikeRun increments a public run's like count and re-evaluates the run
// owner's achievements, since the social achievements track likes.
func LikeRun(c *fiber.Ctx) error {
	if _, err := middleware.GetUserID(c); err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	runID, err := c.ParamsInt("id")
	if err != nil || runID < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid run id"})
	}

	db := database.GetDB()

	var run models.Run
	if err := db.First(&run, runID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Run not found"})
	}
	if !run.IsPublic {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Run is not public"})
	}

	run.Likes++
	if err := db.Model(&run).Update("likes", run.Likes).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to like run"})
	}

	// The owner may have just crossed a likes threshold. The liked run is
	// passed as trigger so single_run_likes requirements see it.
	var owner models.User
	if err := db.First(&owner, run.UserID).Error; err == nil {
		var runs []models.Run
		if err := db.Where("user_id = ?", owner.ID).Order("start_time ASC").Find(&runs).Error; err == nil {
			achievementSvc.RecordRun(&owner, runs, &run)
		}
	}

	return c.JSON(fiber.Map{"success": true, "likes": run.Likes})
}
