// services/achievement_evaluator.go
package services

import (
	"time"

	"snowline/models"
)

// Evaluate checks every locked catalog achievement for the user against a
// freshly computed stats snapshot (plus the just-saved run, when there is
// one), mutating the ledger in place and returning the newly unlocked
// achievements in catalog order.
//
// The evaluator never fails: missing run fields read as zero and simply
// lose their comparisons. Replaying the same call is safe because already
// unlocked achievements are skipped up front.
func Evaluate(user *models.User, runs []models.Run, ledger *models.UserAchievements, newRun *models.Run) []models.Achievement {
	snap := ComputeStats(user, runs)
	now := time.Now().UTC()

	unlocked := make(map[string]bool, len(ledger.Unlocked))
	for _, ua := range ledger.Unlocked {
		unlocked[ua.ID] = true
	}

	var newly []models.Achievement

	for _, a := range catalog {
		if unlocked[a.ID] {
			continue
		}
		// Pro-exclusive achievements do not exist for unverified users:
		// no unlock, no progress, never listed.
		if a.Category == models.CategoryPro && !snap.IsVerified {
			continue
		}

		current, measurable := measureRequirement(a.Requirement, snap, newRun)
		if !measurable {
			continue
		}

		if current >= a.Requirement.Value {
			ledger.Unlocked = append(ledger.Unlocked, models.UnlockedAchievement{
				Achievement: a,
				UnlockedAt:  now,
			})
			removeProgress(ledger, a.ID)
			newly = append(newly, a)
			continue
		}

		if current > 0 {
			upsertProgress(ledger, a.ID, current, a.Requirement.Value, now)
		}
	}

	recomputeTotals(ledger)
	return newly
}

// measureRequirement maps a requirement to its raw metric. The second
// return is false when the metric cannot be measured right now: single-run
// rules outside a new-run evaluation, and conditions with no data source
// yet. An unmeasurable requirement neither unlocks nor touches progress.
func measureRequirement(req models.Requirement, snap models.UserStatsSnapshot, newRun *models.Run) (float64, bool) {
	singleRun := req.Timeframe == models.TimeframeSingleRun

	switch req.Type {
	case models.RequirementDistance:
		if singleRun {
			if newRun == nil {
				return 0, false
			}
			return newRun.Distance, true
		}
		return snap.TotalDistance, true

	case models.RequirementSpeed:
		if singleRun {
			if newRun == nil {
				return 0, false
			}
			return newRun.MaxSpeed, true
		}
		return snap.MaxSpeed, true

	case models.RequirementVertical:
		if singleRun {
			if newRun == nil {
				return 0, false
			}
			return newRun.Vertical, true
		}
		return snap.TotalVertical, true

	case models.RequirementRuns:
		return float64(snap.TotalRuns), true

	case models.RequirementResorts:
		return float64(snap.UniqueResorts), true

	case models.RequirementStreak:
		return float64(snap.Streak), true

	case models.RequirementSocial:
		switch req.Condition {
		case models.ConditionSharedRuns:
			return float64(snap.SharedRuns), true
		case models.ConditionTotalLikes:
			return float64(snap.TotalLikes), true
		case models.ConditionSingleRunLikes:
			if newRun == nil {
				return 0, false
			}
			return float64(newRun.Likes), true
		}
		return 0, false

	case models.RequirementCustom:
		switch req.Condition {
		case models.ConditionAverageSpeed:
			if newRun == nil || !singleRun {
				return 0, false
			}
			return newRun.AverageSpeed, true
		case models.ConditionFreshSnowDays:
			return float64(snap.FreshSnowDays), true
		case models.ConditionEarlyStarts:
			return float64(snap.EarlyStarts), true
		case models.ConditionLateFinishes:
			return float64(snap.LateFinishes), true
		case models.ConditionWeatherTypes:
			return float64(snap.WeatherTypes), true
		case models.ConditionQueenstownRuns:
			return float64(snap.QueenstownRuns), true
		case models.ConditionProUpgrade:
			if snap.IsVerified {
				return 1, true
			}
			return 0, true
		case models.ConditionAnalyticsViews, models.ConditionOpeningDay, models.ConditionClosingDay:
			// No data source yet.
			return 0, false
		}
		return 0, false
	}

	return 0, false
}

func removeProgress(ledger *models.UserAchievements, achievementID string) {
	for i, p := range ledger.Progress {
		if p.AchievementID == achievementID {
			ledger.Progress = append(ledger.Progress[:i], ledger.Progress[i+1:]...)
			return
		}
	}
}

func upsertProgress(ledger *models.UserAchievements, achievementID string, current, target float64, now time.Time) {
	percentage := 0.0
	if target > 0 {
		percentage = current / target * 100
		if percentage > 100 {
			percentage = 100
		}
	}

	for i := range ledger.Progress {
		if ledger.Progress[i].AchievementID == achievementID {
			ledger.Progress[i].Current = current
			ledger.Progress[i].Target = target
			ledger.Progress[i].Percentage = percentage
			ledger.Progress[i].LastUpdated = now
			return
		}
	}

	ledger.Progress = append(ledger.Progress, models.AchievementProgress{
		AchievementID: achievementID,
		Current:       current,
		Target:        target,
		Percentage:    percentage,
		LastUpdated:   now,
	})
}

// recomputeTotals rebuilds every derived ledger field from the unlocked
// list. Completion rate divides by the full catalog size, Pro achievements
// included, so an unverified user tops out below 100%.
func recomputeTotals(ledger *models.UserAchievements) {
	points := 0
	for _, ua := range ledger.Unlocked {
		points += RarityPoints(ua.Rarity)
	}
	ledger.TotalPoints = points
	ledger.CompletionRate = float64(len(ledger.Unlocked)) / float64(CatalogSize()) * 100
	ledger.FavoriteCategory = favoriteCategory(ledger.Unlocked)
}

// favoriteCategory picks the category with the most unlocks. Ties go to
// whichever category appears first in the catalog, which keeps the result
// deterministic across runs.
func favoriteCategory(unlocked []models.UnlockedAchievement) models.Category {
	if len(unlocked) == 0 {
		return models.CategoryDistance
	}

	counts := make(map[models.Category]int)
	for _, ua := range unlocked {
		counts[ua.Category]++
	}

	firstSeen := make(map[models.Category]int)
	for i, a := range catalog {
		if _, ok := firstSeen[a.Category]; !ok {
			firstSeen[a.Category] = i
		}
	}

	best := models.CategoryDistance
	bestCount := -1
	bestOrder := len(catalog) + 1
	for cat, n := range counts {
		order, ok := firstSeen[cat]
		if !ok {
			order = len(catalog)
		}
		if n > bestCount || (n == bestCount && order < bestOrder) {
			best = cat
			bestCount = n
			bestOrder = order
		}
	}
	return best
}

// NewLedger returns the empty default ledger for a user with no history.
func NewLedger() *models.UserAchievements {
	return &models.UserAchievements{
		Unlocked:         []models.UnlockedAchievement{},
		Progress:         []models.AchievementProgress{},
		TotalPoints:      0,
		CompletionRate:   0,
		FavoriteCategory: models.CategoryDistance,
	}
}
