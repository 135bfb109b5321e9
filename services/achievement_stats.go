// services/achievement_stats.go
package services

import (
	"sort"
	"strings"
	"time"

	"snowline/models"
)

// QueenstownResortIDs are the two ski fields counted toward the
// Queenstown-local achievements.
var QueenstownResortIDs = []string{"coronet-peak", "the-remarkables"}

// ComputeStats derives the aggregate snapshot for one user from their full
// run history. Pure: it never mutates the inputs, and an empty history
// yields all zeroes.
func ComputeStats(user *models.User, runs []models.Run) models.UserStatsSnapshot {
	snap := models.UserStatsSnapshot{}
	if user != nil {
		snap.IsVerified = user.IsVerified
	}

	resorts := make(map[string]bool)
	weather := make(map[string]bool)

	for _, run := range runs {
		snap.TotalRuns++
		snap.TotalDistance += run.Distance
		snap.TotalVertical += run.Vertical
		snap.TotalLikes += run.Likes
		if run.MaxSpeed > snap.MaxSpeed {
			snap.MaxSpeed = run.MaxSpeed
		}
		if run.IsPublic {
			snap.SharedRuns++
		}
		if run.ResortID != "" {
			resorts[run.ResortID] = true
		}
		if isQueenstownResort(run.ResortID) {
			snap.QueenstownRuns++
		}
		if run.StartTime.Hour() < 8 {
			snap.EarlyStarts++
		}
		if run.EndTime.Hour() >= 18 {
			snap.LateFinishes++
		}

		conditions := strings.ToLower(strings.TrimSpace(run.WeatherConditions))
		if conditions != "" {
			weather[conditions] = true
			if strings.Contains(conditions, "fresh") || strings.Contains(conditions, "powder") {
				snap.FreshSnowDays++
			}
		}
	}

	snap.UniqueResorts = len(resorts)
	snap.WeatherTypes = len(weather)
	snap.Streak = computeStreak(runs)

	return snap
}

func isQueenstownResort(resortID string) bool {
	for _, id := range QueenstownResortIDs {
		if resortID == id {
			return true
		}
	}
	return false
}

// computeStreak counts consecutive calendar days ending at the most recent
// run. Multiple runs on one day count once; a gap of more than one day ends
// the streak. Zero only when there are no runs.
func computeStreak(runs []models.Run) int {
	if len(runs) == 0 {
		return 0
	}

	sorted := make([]models.Run, len(runs))
	copy(sorted, runs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.After(sorted[j].StartTime)
	})

	streak := 1
	anchor := dateOnly(sorted[0].StartTime)

	for _, run := range sorted[1:] {
		day := dateOnly(run.StartTime)
		if day.Equal(anchor) {
			continue
		}
		if day.Equal(anchor.AddDate(0, 0, -1)) {
			streak++
			anchor = day
			continue
		}
		break
	}

	return streak
}

// dateOnly strips the time of day, keeping the calendar date as observed in
// the run's own timezone.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
