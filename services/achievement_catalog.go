// services/achievement_catalog.go
package services

import (
	"snowline/models"
)

// RarityInfo describes a rarity tier for the UI and scoring.
type RarityInfo struct {
	Label  string `json:"label"`
	Color  string `json:"color"`
	Points int    `json:"points"`
}

// CategoryInfo describes an achievement category for the UI.
type CategoryInfo struct {
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var rarityInfo = map[models.Rarity]RarityInfo{
	models.RarityCommon:    {Label: "Common", Color: "#9CA3AF", Points: 10},
	models.RarityUncommon:  {Label: "Uncommon", Color: "#22C55E", Points: 25},
	models.RarityRare:      {Label: "Rare", Color: "#3B82F6", Points: 50},
	models.RarityEpic:      {Label: "Epic", Color: "#A855F7", Points: 100},
	models.RarityLegendary: {Label: "Legendary", Color: "#F59E0B", Points: 250},
}

var categoryInfo = map[models.Category]CategoryInfo{
	models.CategoryDistance: {Label: "Distance", Color: "#38BDF8", Description: "Kilometres covered on snow"},
	models.CategorySpeed:    {Label: "Speed", Color: "#EF4444", Description: "Top and average speed milestones"},
	models.CategoryVertical: {Label: "Vertical", Color: "#8B5CF6", Description: "Metres of descent"},
	models.CategorySocial:   {Label: "Social", Color: "#EC4899", Description: "Sharing runs and earning likes"},
	models.CategoryResort:   {Label: "Resorts", Color: "#10B981", Description: "Exploring different ski fields"},
	models.CategoryStreak:   {Label: "Streaks", Color: "#F97316", Description: "Consecutive days on the mountain"},
	models.CategorySpecial:  {Label: "Special", Color: "#EAB308", Description: "Out-of-the-ordinary feats"},
	models.CategorySeasonal: {Label: "Seasonal", Color: "#14B8A6", Description: "Season opening and closing events"},
	models.CategoryPro:      {Label: "Pro", Color: "#6366F1", Description: "Exclusive to Snowline Pro members"},
}

// RarityPoints returns the point value for a rarity, 0 for unknown tiers.
func RarityPoints(r models.Rarity) int {
	return rarityInfo[r].Points
}

// GetRarityInfo returns display metadata for a rarity tier.
func GetRarityInfo(r models.Rarity) (RarityInfo, bool) {
	info, ok := rarityInfo[r]
	return info, ok
}

// GetCategoryInfo returns display metadata for a category.
func GetCategoryInfo(c models.Category) (CategoryInfo, bool) {
	info, ok := categoryInfo[c]
	return info, ok
}

// AllAchievements returns a copy of the full catalog in its defined order.
// The order is load-bearing: it fixes the order of simultaneous unlocks and
// the favorite-category tie-break.
func AllAchievements() []models.Achievement {
	out := make([]models.Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogSize returns the number of achievements in the catalog, Pro
// entries included.
func CatalogSize() int {
	return len(catalog)
}

// FindAchievement looks an achievement up by ID.
func FindAchievement(id string) (models.Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return models.Achievement{}, false
}

var catalog = []models.Achievement{

	// ── Special ────────────────────────────────────────────────────────

	{
		ID: "first-tracks", Name: "First Tracks",
		Description: "Record your first run",
		Icon:        "🎿", Category: models.CategorySpecial, Rarity: models.RarityCommon,
		Requirement: models.Requirement{Type: models.RequirementRuns, Value: 1, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "early-bird", Name: "Early Bird",
		Description: "Start 10 runs before 8am",
		Icon:        "🌅", Category: models.CategorySpecial, Rarity: models.RarityUncommon,
		Requirement: models.Requirement{Type: models.RequirementCustom, Value: 10, Condition: models.ConditionEarlyStarts, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "night-owl", Name: "Night Owl",
		Description: "Finish 10 runs after 6pm",
		Icon:        "🦉", Category: models.CategorySpecial, Rarity: models.RarityUncommon,
		Requirement: models.Requirement{Type: models.RequirementCustom, Value: 10, Condition: models.ConditionLateFinishes, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "powder-hound", Name: "Powder Hound",
		Description: "Ski 5 fresh snow days",
		Icon:        "❄️", Category: models.CategorySpecial, Rarity: models.RarityUncommon,
		Requirement: models.Requirement{Type: models.RequirementCustom, Value: 5, Condition: models.ConditionFreshSnowDays, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "all-weather", Name: "All-Weather Skier",
		Description: "Ski in 5 different weather conditions",
		Icon:        "🌦️", Category: models.CategorySpecial, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementCustom, Value: 5, Condition: models.ConditionWeatherTypes, Timeframe: models.TimeframeTotal},
	},

	// ── Distance ───────────────────────────────────────────────────────

	{
		ID: "distance-10k", Name: "Warming Up",
		Description: "Cover 10km total distance",
		Icon:        "📏", Category: models.CategoryDistance, Rarity: models.RarityCommon,
		Requirement: models.Requirement{Type: models.RequirementDistance, Value: 10, Unit: "km", Timeframe: models.TimeframeTotal},
	},
	{
		ID: "distance-50k", Name: "Finding a Rhythm",
		Description: "Cover 50km total distance",
		Icon:        "📏", Category: models.CategoryDistance, Rarity: models.RarityUncommon,
		Requirement: models.Requirement{Type: models.RequirementDistance, Value: 50, Unit: "km", Timeframe: models.TimeframeTotal},
	},
	{
		ID: "distance-100k", Name: "Serious Mileage",
		Description: "Cover 100km total distance",
		Icon:        "🗺️", Category: models.CategoryDistance, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementDistance, Value: 100, Unit: "km", Timeframe: models.TimeframeTotal},
	},
	{
		ID: "distance-500k", Name: "Distance Devourer",
		Description: "Cover 500km total distance",
		Icon:        "🌍", Category: models.CategoryDistance, Rarity: models.RarityEpic,
		Requirement: models.Requirement{Type: models.RequirementDistance, Value: 500, Unit: "km", Timeframe: models.TimeframeTotal},
	},
	{
		ID: "marathon-day", Name: "Marathon Day",
		Description: "Cover 20km in a single run",
		Icon:        "🏔️", Category: models.CategoryDistance, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementDistance, Value: 20, Unit: "km", Timeframe: models.TimeframeSingleRun},
	},

	// ── Speed ──────────────────────────────────────────────────────────

	{
		ID: "speed-50", Name: "Cruiser",
		Description: "Hit 50km/h in a single run",
		Icon:        "💨", Category: models.CategorySpeed, Rarity: models.RarityCommon,
		Requirement: models.Requirement{Type: models.RequirementSpeed, Value: 50, Unit: "km/h", Timeframe: models.TimeframeSingleRun},
	},
	{
		ID: "speed-80", Name: "Speed Demon",
		Description: "Hit 80km/h in a single run",
		Icon:        "⚡", Category: models.CategorySpeed, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementSpeed, Value: 80, Unit: "km/h", Timeframe: models.TimeframeSingleRun},
	},
	{
		ID: "speed-100", Name: "Terminal Velocity",
		Description: "Hit 100km/h in a single run",
		Icon:        "🚀", Category: models.CategorySpeed, Rarity: models.RarityEpic,
		Requirement: models.Requirement{Type: models.RequirementSpeed, Value: 100, Unit: "km/h", Timeframe: models.TimeframeSingleRun},
	},
	{
		ID: "cruise-control", Name: "Cruise Control",
		Description: "Average 40km/h across a whole run",
		Icon:        "🎯", Category: models.CategorySpeed, Rarity: models.RarityUncommon,
		Requirement: models.Requirement{Type: models.RequirementCustom, Value: 40, Unit: "km/h", Condition: models.ConditionAverageSpeed, Timeframe: models.TimeframeSingleRun},
	},

	// ── Vertical ───────────────────────────────────────────────────────

	{
		ID: "vertical-1k", Name: "Leg Burner",
		Description: "Descend 1,000m in a single run",
		Icon:        "⛷️", Category: models.CategoryVertical, Rarity: models.RarityCommon,
		Requirement: models.Requirement{Type: models.RequirementVertical, Value: 1000, Unit: "m", Timeframe: models.TimeframeSingleRun},
	},
	{
		ID: "vertical-everest", Name: "Everest and Change",
		Description: "Descend 8,848m total vertical",
		Icon:        "🏔️", Category: models.CategoryVertical, Rarity: models.RarityUncommon,
		Requirement: models.Requirement{Type: models.RequirementVertical, Value: 8848, Unit: "m", Timeframe: models.TimeframeTotal},
	},
	{
		ID: "vertical-100k", Name: "Gravity's Best Friend",
		Description: "Descend 100,000m total vertical",
		Icon:        "🪂", Category: models.CategoryVertical, Rarity: models.RarityEpic,
		Requirement: models.Requirement{Type: models.RequirementVertical, Value: 100000, Unit: "m", Timeframe: models.TimeframeTotal},
	},

	// ── Runs ───────────────────────────────────────────────────────────

	{
		ID: "runs-10", Name: "Regular",
		Description: "Record 10 runs",
		Icon:        "🔟", Category: models.CategorySpecial, Rarity: models.RarityCommon,
		Requirement: models.Requirement{Type: models.RequirementRuns, Value: 10, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "runs-50", Name: "Dedicated",
		Description: "Record 50 runs",
		Icon:        "🎖️", Category: models.CategorySpecial, Rarity: models.RarityUncommon,
		Requirement: models.Requirement{Type: models.RequirementRuns, Value: 50, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "runs-100", Name: "Hundred Club",
		Description: "Record 100 runs",
		Icon:        "💯", Category: models.CategorySpecial, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementRuns, Value: 100, Timeframe: models.TimeframeTotal},
	},

	// ── Resorts ────────────────────────────────────────────────────────

	{
		ID: "resort-explorer", Name: "Explorer",
		Description: "Ski at 3 different resorts",
		Icon:        "🧭", Category: models.CategoryResort, Rarity: models.RarityCommon,
		Requirement: models.Requirement{Type: models.RequirementResorts, Value: 3, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "resort-hopper", Name: "Resort Hopper",
		Description: "Ski at 5 different resorts",
		Icon:        "🚡", Category: models.CategoryResort, Rarity: models.RarityUncommon,
		Requirement: models.Requirement{Type: models.RequirementResorts, Value: 5, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "globe-trotter", Name: "Globe Trotter",
		Description: "Ski at 10 different resorts",
		Icon:        "🌐", Category: models.CategoryResort, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementResorts, Value: 10, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "queenstown-local", Name: "Queenstown Local",
		Description: "Record 25 runs at Coronet Peak or The Remarkables",
		Icon:        "🥝", Category: models.CategoryResort, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementCustom, Value: 25, Condition: models.ConditionQueenstownRuns, Timeframe: models.TimeframeTotal},
	},

	// ── Social ─────────────────────────────────────────────────────────

	{
		ID: "first-share", Name: "Going Public",
		Description: "Share your first run",
		Icon:        "📣", Category: models.CategorySocial, Rarity: models.RarityCommon,
		Requirement: models.Requirement{Type: models.RequirementSocial, Value: 1, Condition: models.ConditionSharedRuns, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "social-butterfly", Name: "Social Butterfly",
		Description: "Share 20 runs",
		Icon:        "🦋", Category: models.CategorySocial, Rarity: models.RarityUncommon,
		Requirement: models.Requirement{Type: models.RequirementSocial, Value: 20, Condition: models.ConditionSharedRuns, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "crowd-favorite", Name: "Crowd Favorite",
		Description: "Collect 100 likes across all runs",
		Icon:        "❤️", Category: models.CategorySocial, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementSocial, Value: 100, Condition: models.ConditionTotalLikes, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "viral-run", Name: "Viral Run",
		Description: "Earn 50 likes on a single run",
		Icon:        "🔥", Category: models.CategorySocial, Rarity: models.RarityEpic,
		Requirement: models.Requirement{Type: models.RequirementSocial, Value: 50, Condition: models.ConditionSingleRunLikes, Timeframe: models.TimeframeSingleRun},
	},

	// ── Streaks ────────────────────────────────────────────────────────

	{
		ID: "streak-3", Name: "Long Weekend",
		Description: "Ski 3 days in a row",
		Icon:        "📆", Category: models.CategoryStreak, Rarity: models.RarityCommon,
		Requirement: models.Requirement{Type: models.RequirementStreak, Value: 3, Unit: "days", Timeframe: models.TimeframeTotal},
	},
	{
		ID: "streak-7", Name: "Week Warrior",
		Description: "Ski 7 days in a row",
		Icon:        "🗓️", Category: models.CategoryStreak, Rarity: models.RarityUncommon,
		Requirement: models.Requirement{Type: models.RequirementStreak, Value: 7, Unit: "days", Timeframe: models.TimeframeTotal},
	},
	{
		ID: "streak-14", Name: "Fortnight of Snow",
		Description: "Ski 14 days in a row",
		Icon:        "🧊", Category: models.CategoryStreak, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementStreak, Value: 14, Unit: "days", Timeframe: models.TimeframeTotal},
	},
	{
		ID: "streak-30", Name: "Iron Legs",
		Description: "Ski 30 days in a row",
		Icon:        "🦿", Category: models.CategoryStreak, Rarity: models.RarityLegendary,
		Requirement: models.Requirement{Type: models.RequirementStreak, Value: 30, Unit: "days", Timeframe: models.TimeframeTotal},
	},

	// ── Seasonal ───────────────────────────────────────────────────────
	// Opening/closing day tracking has no data source yet; these stay
	// locked with zero progress until it exists.

	{
		ID: "opening-day", Name: "Opening Day",
		Description: "Ski on a resort's opening day",
		Icon:        "🎉", Category: models.CategorySeasonal, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementCustom, Value: 1, Condition: models.ConditionOpeningDay, Timeframe: models.TimeframeSeasonal},
	},
	{
		ID: "closing-day", Name: "Last Chair",
		Description: "Ski on a resort's closing day",
		Icon:        "🌇", Category: models.CategorySeasonal, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementCustom, Value: 1, Condition: models.ConditionClosingDay, Timeframe: models.TimeframeSeasonal},
	},

	// ── Pro ────────────────────────────────────────────────────────────

	{
		ID: "pro-member", Name: "Going Pro",
		Description: "Upgrade to Snowline Pro",
		Icon:        "⭐", Category: models.CategoryPro, Rarity: models.RarityUncommon,
		Requirement: models.Requirement{Type: models.RequirementCustom, Value: 1, Condition: models.ConditionProUpgrade, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "pro-analyst", Name: "Data Cruncher",
		Description: "Open your analytics dashboard 50 times",
		Icon:        "📊", Category: models.CategoryPro, Rarity: models.RarityRare,
		Requirement: models.Requirement{Type: models.RequirementCustom, Value: 50, Condition: models.ConditionAnalyticsViews, Timeframe: models.TimeframeTotal},
	},
	{
		ID: "pro-elite", Name: "Elite Mileage",
		Description: "Cover 1,000km total distance as a Pro member",
		Icon:        "👑", Category: models.CategoryPro, Rarity: models.RarityLegendary,
		Requirement: models.Requirement{Type: models.RequirementDistance, Value: 1000, Unit: "km", Timeframe: models.TimeframeTotal},
	},
}
