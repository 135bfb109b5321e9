// services/leaderboard.go
package services

import (
	"sort"
	"time"

	"snowline/models"
)

// LeaderboardCategory selects what a global leaderboard is ranked by.
type LeaderboardCategory string

const (
	LeaderboardDistance LeaderboardCategory = "distance"
	LeaderboardVertical LeaderboardCategory = "vertical"
	LeaderboardRuns     LeaderboardCategory = "runs"
	LeaderboardPoints   LeaderboardCategory = "points"
)

// RunTotals are one user's cumulative figures across all their runs.
type RunTotals struct {
	UserID   uint    `json:"user_id"`
	Distance float64 `json:"distance"`
	Vertical float64 `json:"vertical"`
	Runs     int     `json:"runs"`
	MaxSpeed float64 `json:"max_speed"`
}

// AggregateRunTotals groups runs by user and sums their stats.
func AggregateRunTotals(runs []models.Run) map[uint]*RunTotals {
	totals := make(map[uint]*RunTotals)
	for _, run := range runs {
		t, ok := totals[run.UserID]
		if !ok {
			t = &RunTotals{UserID: run.UserID}
			totals[run.UserID] = t
		}
		t.Distance += run.Distance
		t.Vertical += run.Vertical
		t.Runs++
		if run.MaxSpeed > t.MaxSpeed {
			t.MaxSpeed = run.MaxSpeed
		}
	}
	return totals
}

// LeaderboardEntry is one ranked row. Users with equal values share a rank
// (standard competition ranking: 1, 1, 3).
type LeaderboardEntry struct {
	Rank   int     `json:"rank"`
	UserID uint    `json:"user_id"`
	Value  float64 `json:"value"`
}

// RankByValue sorts users by value descending and assigns ranks, sharing
// ranks on ties. Equal-value users are ordered by user ID so the output is
// deterministic.
func RankByValue(values map[uint]float64) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(values))
	for id, v := range values {
		entries = append(entries, LeaderboardEntry{UserID: id, Value: v})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		if i > 0 && entries[i].Value == entries[i-1].Value {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
	}
	return entries
}

// ResortRanking is one user's best run at a resort.
type ResortRanking struct {
	Rank      int       `json:"rank"`
	UserID    uint      `json:"user_id"`
	RunID     uint      `json:"run_id"`
	Distance  float64   `json:"distance"`
	Vertical  float64   `json:"vertical"`
	MaxSpeed  float64   `json:"max_speed"`
	StartTime time.Time `json:"start_time"`
}

// RankResortRuns keeps each user's best run (longest distance, earlier run
// winning ties) at the given resort and ranks them by distance descending.
func RankResortRuns(runs []models.Run, resortID string) []ResortRanking {
	best := make(map[uint]models.Run)
	for _, run := range runs {
		if run.ResortID != resortID {
			continue
		}
		cur, ok := best[run.UserID]
		if !ok || run.Distance > cur.Distance ||
			(run.Distance == cur.Distance && run.StartTime.Before(cur.StartTime)) {
			best[run.UserID] = run
		}
	}

	rankings := make([]ResortRanking, 0, len(best))
	for _, run := range best {
		rankings = append(rankings, ResortRanking{
			UserID:    run.UserID,
			RunID:     run.ID,
			Distance:  run.Distance,
			Vertical:  run.Vertical,
			MaxSpeed:  run.MaxSpeed,
			StartTime: run.StartTime,
		})
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].Distance != rankings[j].Distance {
			return rankings[i].Distance > rankings[j].Distance
		}
		return rankings[i].StartTime.Before(rankings[j].StartTime)
	})

	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}
