// models/achievement.go
package models

import "time"

// Category groups achievements in the UI.
type Category string

const (
	CategoryDistance Category = "distance"
	CategorySpeed    Category = "speed"
	CategoryVertical Category = "vertical"
	CategorySocial   Category = "social"
	CategoryResort   Category = "resort"
	CategoryStreak   Category = "streak"
	CategorySpecial  Category = "special"
	CategorySeasonal Category = "seasonal"
	CategoryPro      Category = "pro"
)

// Rarity is an achievement's tier; it determines the point value.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// RequirementType selects which stat a requirement is checked against.
type RequirementType string

const (
	RequirementDistance RequirementType = "distance"
	RequirementSpeed    RequirementType = "speed"
	RequirementVertical RequirementType = "vertical"
	RequirementRuns     RequirementType = "runs"
	RequirementResorts  RequirementType = "resorts"
	RequirementSocial   RequirementType = "social"
	RequirementStreak   RequirementType = "streak"
	RequirementCustom   RequirementType = "custom"
)

// Condition disambiguates social and custom requirements.
type Condition string

const (
	ConditionSharedRuns     Condition = "shared_runs"
	ConditionTotalLikes     Condition = "total_likes"
	ConditionSingleRunLikes Condition = "single_run_likes"
	ConditionAverageSpeed   Condition = "average_speed"
	ConditionFreshSnowDays  Condition = "fresh_snow_days"
	ConditionEarlyStarts    Condition = "early_starts"
	ConditionLateFinishes   Condition = "late_finishes"
	ConditionWeatherTypes   Condition = "weather_types"
	ConditionQueenstownRuns Condition = "queenstown_runs"
	ConditionProUpgrade     Condition = "pro_upgrade"

	// Tracked nowhere yet: these never satisfy and report zero progress.
	ConditionAnalyticsViews Condition = "analytics_views"
	ConditionOpeningDay     Condition = "opening_day"
	ConditionClosingDay     Condition = "closing_day"
)

// Timeframe says whether a requirement is checked against a single run or
// the cumulative history.
type Timeframe string

const (
	TimeframeSingleRun Timeframe = "single_run"
	TimeframeTotal     Timeframe = "total"
	TimeframeDaily     Timeframe = "daily"
	TimeframeWeekly    Timeframe = "weekly"
	TimeframeMonthly   Timeframe = "monthly"
	TimeframeSeasonal  Timeframe = "seasonal"
)

// Requirement is the predicate specification that decides when an
// achievement unlocks.
type Requirement struct {
	Type      RequirementType `json:"type"`
	Value     float64         `json:"value"`
	Unit      string          `json:"unit,omitempty"`
	Condition Condition       `json:"condition,omitempty"`
	Timeframe Timeframe       `json:"timeframe"`
}

// Reward is cosmetic; the engine only carries it through.
type Reward struct {
	Type        string `json:"type"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Achievement is one immutable catalog entry.
type Achievement struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon,omitempty"`
	Category    Category    `json:"category"`
	Rarity      Rarity      `json:"rarity"`
	Requirement Requirement `json:"requirement"`
	Rewards     []Reward    `json:"rewards,omitempty"`
}

// UnlockedAchievement is a catalog entry plus the moment it was earned.
type UnlockedAchievement struct {
	Achievement
	UnlockedAt time.Time `json:"unlocked_at"`
}
