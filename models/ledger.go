// models/ledger.go
package models

import "time"

// UserStatsSnapshot aggregates a user's full run history. It is recomputed
// on every evaluation and never persisted.
type UserStatsSnapshot struct {
	TotalDistance  float64 `json:"total_distance"`
	TotalVertical  float64 `json:"total_vertical"`
	MaxSpeed       float64 `json:"max_speed"`
	TotalRuns      int     `json:"total_runs"`
	TotalLikes     int     `json:"total_likes"`
	SharedRuns     int     `json:"shared_runs"`
	UniqueResorts  int     `json:"unique_resorts"`
	Streak         int     `json:"streak"`
	FreshSnowDays  int     `json:"fresh_snow_days"`
	EarlyStarts    int     `json:"early_starts"`
	LateFinishes   int     `json:"late_finishes"`
	WeatherTypes   int     `json:"weather_types"`
	QueenstownRuns int     `json:"queenstown_runs"`
	IsVerified     bool    `json:"is_verified"`
}

// AchievementProgress tracks a still-locked achievement the user has made
// measurable progress toward.
type AchievementProgress struct {
	AchievementID string    `json:"achievement_id"`
	Current       float64   `json:"current"`
	Target        float64   `json:"target"`
	Percentage    float64   `json:"percentage"` // clamped to [0,100]
	LastUpdated   time.Time `json:"last_updated"`
}

// UserAchievements is the per-user ledger: the single source of truth for
// what is unlocked. Invariants: no achievement ID appears twice in Unlocked
// and never in both Unlocked and Progress; TotalPoints is always a pure
// function of Unlocked.
type UserAchievements struct {
	Unlocked         []UnlockedAchievement `json:"unlocked"`
	Progress         []AchievementProgress `json:"progress"`
	TotalPoints      int                   `json:"total_points"`
	CompletionRate   float64               `json:"completion_rate"`
	FavoriteCategory Category              `json:"favorite_category"`
}

// AchievementNotification is one "newly unlocked" feed entry, decoupled
// from the ledger so the UI can acknowledge it independently.
type AchievementNotification struct {
	ID          string              `json:"id"`
	Achievement UnlockedAchievement `json:"achievement"`
	Timestamp   time.Time           `json:"timestamp"`
	IsNew       bool                `json:"is_new"`
}
