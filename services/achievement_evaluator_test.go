package services

import (
	"testing"
	"time"

	"snowline/models"
)

func unlockedIDs(ledger *models.UserAchievements) map[string]bool {
	out := make(map[string]bool, len(ledger.Unlocked))
	for _, ua := range ledger.Unlocked {
		out[ua.ID] = true
	}
	return out
}

func progressFor(ledger *models.UserAchievements, id string) (models.AchievementProgress, bool) {
	for _, p := range ledger.Progress {
		if p.AchievementID == id {
			return p, true
		}
	}
	return models.AchievementProgress{}, false
}

func containsID(achievements []models.Achievement, id string) bool {
	for _, a := range achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

func TestEvaluate_FirstRunScenario(t *testing.T) {
	user := &models.User{ID: 1}
	newRun := models.Run{
		UserID:    1,
		StartTime: baseDay,
		EndTime:   baseDay.Add(time.Hour),
		Distance:  10,
	}
	runs := []models.Run{newRun}
	ledger := NewLedger()

	newly := Evaluate(user, runs, ledger, &newRun)

	if len(newly) != 2 {
		t.Fatalf("newly unlocked = %d achievements, want 2", len(newly))
	}
	if newly[0].ID != "first-tracks" || newly[1].ID != "distance-10k" {
		t.Errorf("unlock order = [%s, %s], want [first-tracks, distance-10k]", newly[0].ID, newly[1].ID)
	}
	if len(ledger.Unlocked) != 2 {
		t.Errorf("ledger.Unlocked has %d entries, want 2", len(ledger.Unlocked))
	}
	if ledger.TotalPoints != 20 {
		t.Errorf("TotalPoints = %d, want 20 (two commons)", ledger.TotalPoints)
	}
	want := float64(2) / float64(CatalogSize()) * 100
	if ledger.CompletionRate != want {
		t.Errorf("CompletionRate = %v, want %v", ledger.CompletionRate, want)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	user := &models.User{ID: 1}
	runs := []models.Run{{UserID: 1, StartTime: baseDay, Distance: 10}}
	ledger := NewLedger()

	Evaluate(user, runs, ledger, nil)
	before := len(ledger.Unlocked)
	if before == 0 {
		t.Fatal("expected unlocks on first evaluation")
	}

	again := Evaluate(user, runs, ledger, nil)
	if len(again) != 0 {
		t.Errorf("second evaluation returned %d unlocks, want 0", len(again))
	}
	if len(ledger.Unlocked) != before {
		t.Errorf("ledger.Unlocked grew from %d to %d on replay", before, len(ledger.Unlocked))
	}
}

func TestEvaluate_Monotonic(t *testing.T) {
	user := &models.User{ID: 1}
	ledger := NewLedger()

	var runs []models.Run
	prevCount := 0
	for i := 0; i < 12; i++ {
		run := models.Run{
			UserID:    1,
			StartTime: baseDay.AddDate(0, 0, i),
			EndTime:   baseDay.AddDate(0, 0, i).Add(time.Hour),
			Distance:  5,
			Vertical:  400,
		}
		runs = append(runs, run)
		Evaluate(user, runs, ledger, &run)

		if len(ledger.Unlocked) < prevCount {
			t.Fatalf("unlocked shrank from %d to %d at run %d", prevCount, len(ledger.Unlocked), i+1)
		}
		prevCount = len(ledger.Unlocked)
	}

	if !unlockedIDs(ledger)["streak-7"] {
		t.Error("streak-7 not unlocked after 12 consecutive days")
	}
	if !unlockedIDs(ledger)["runs-10"] {
		t.Error("runs-10 not unlocked after 12 runs")
	}
}

func TestEvaluate_PointsConsistency(t *testing.T) {
	user := &models.User{ID: 1}
	runs := []models.Run{
		{UserID: 1, StartTime: baseDay, Distance: 60, Vertical: 9000, Likes: 10, IsPublic: true},
		{UserID: 1, StartTime: baseDay.AddDate(0, 0, -1), Distance: 55, MaxSpeed: 70},
	}
	ledger := NewLedger()
	Evaluate(user, runs, ledger, nil)

	sum := 0
	for _, ua := range ledger.Unlocked {
		sum += RarityPoints(ua.Rarity)
	}
	if ledger.TotalPoints != sum {
		t.Errorf("TotalPoints = %d, sum of rarity points = %d", ledger.TotalPoints, sum)
	}
	if ledger.CompletionRate < 0 || ledger.CompletionRate > 100 {
		t.Errorf("CompletionRate = %v, want within [0,100]", ledger.CompletionRate)
	}
}

func TestEvaluate_ProGating(t *testing.T) {
	user := &models.User{ID: 1, IsVerified: false}
	// A history big enough to satisfy pro-elite's 1,000km were the gate absent.
	var runs []models.Run
	for i := 0; i < 30; i++ {
		runs = append(runs, models.Run{UserID: 1, StartTime: baseDay.AddDate(0, 0, -i * 3), Distance: 50})
	}
	ledger := NewLedger()
	Evaluate(user, runs, ledger, nil)

	for _, ua := range ledger.Unlocked {
		if ua.Category == models.CategoryPro {
			t.Errorf("pro achievement %s unlocked for unverified user", ua.ID)
		}
	}
	for _, p := range ledger.Progress {
		if a, ok := FindAchievement(p.AchievementID); ok && a.Category == models.CategoryPro {
			t.Errorf("pro achievement %s has progress for unverified user", p.AchievementID)
		}
	}
}

func TestEvaluate_ProUpgradeUnlocks(t *testing.T) {
	user := &models.User{ID: 1, IsVerified: true}
	ledger := NewLedger()
	newly := Evaluate(user, nil, ledger, nil)

	if !containsID(newly, "pro-member") {
		t.Error("pro-member not unlocked for a verified user")
	}
}

func TestEvaluate_SingleRunNotSatisfiedByCumulative(t *testing.T) {
	user := &models.User{ID: 1}
	// 25km across two runs, but no single run reaches marathon-day's 20km.
	runs := []models.Run{
		{UserID: 1, StartTime: baseDay, Distance: 13},
		{UserID: 1, StartTime: baseDay.AddDate(0, 0, -2), Distance: 12},
	}
	ledger := NewLedger()
	newly := Evaluate(user, runs, ledger, &runs[0])

	if containsID(newly, "marathon-day") {
		t.Error("marathon-day unlocked from cumulative distance")
	}
	if !containsID(newly, "distance-10k") {
		t.Error("distance-10k (cumulative) not unlocked at 25km total")
	}

	// A qualifying single run unlocks it.
	big := models.Run{UserID: 1, StartTime: baseDay.AddDate(0, 0, 1), Distance: 21}
	runs = append(runs, big)
	newly = Evaluate(user, runs, ledger, &big)
	if !containsID(newly, "marathon-day") {
		t.Error("marathon-day not unlocked by a 21km run")
	}
}

func TestEvaluate_SingleRunSpeedNeedsNewRun(t *testing.T) {
	user := &models.User{ID: 1}
	runs := []models.Run{{UserID: 1, StartTime: baseDay, MaxSpeed: 60}}
	ledger := NewLedger()

	Evaluate(user, runs, ledger, nil)
	if unlockedIDs(ledger)["speed-50"] {
		t.Error("speed-50 unlocked without a new-run evaluation")
	}

	Evaluate(user, runs, ledger, &runs[0])
	if !unlockedIDs(ledger)["speed-50"] {
		t.Error("speed-50 not unlocked when the new run hit 60km/h")
	}
}

func TestEvaluate_ProgressUpsert(t *testing.T) {
	user := &models.User{ID: 1}
	runs := []models.Run{{UserID: 1, StartTime: baseDay, Distance: 10}}
	ledger := NewLedger()
	Evaluate(user, runs, ledger, nil)

	p, ok := progressFor(ledger, "distance-50k")
	if !ok {
		t.Fatal("no progress entry for distance-50k at 10km")
	}
	if p.Current != 10 || p.Target != 50 || p.Percentage != 20 {
		t.Errorf("progress = %+v, want current 10, target 50, 20%%", p)
	}

	// More distance moves the same entry forward.
	runs = append(runs, models.Run{UserID: 1, StartTime: baseDay.AddDate(0, 0, 1), Distance: 15})
	Evaluate(user, runs, ledger, nil)
	p, _ = progressFor(ledger, "distance-50k")
	if p.Current != 25 || p.Percentage != 50 {
		t.Errorf("progress after second run = %+v, want current 25, 50%%", p)
	}

	entries := 0
	for _, pr := range ledger.Progress {
		if pr.AchievementID == "distance-50k" {
			entries++
		}
	}
	if entries != 1 {
		t.Errorf("distance-50k has %d progress entries, want 1", entries)
	}
}

func TestEvaluate_ProgressRemovedOnUnlock(t *testing.T) {
	user := &models.User{ID: 1}
	runs := []models.Run{{UserID: 1, StartTime: baseDay, Distance: 30}}
	ledger := NewLedger()
	Evaluate(user, runs, ledger, nil)

	if _, ok := progressFor(ledger, "distance-50k"); !ok {
		t.Fatal("expected progress toward distance-50k at 30km")
	}

	runs = append(runs, models.Run{UserID: 1, StartTime: baseDay.AddDate(0, 0, 1), Distance: 25})
	Evaluate(user, runs, ledger, nil)

	if !unlockedIDs(ledger)["distance-50k"] {
		t.Fatal("distance-50k not unlocked at 55km")
	}
	if _, ok := progressFor(ledger, "distance-50k"); ok {
		t.Error("stale progress entry kept after unlock")
	}
}

func TestEvaluate_SingleRunProgressWithNewRun(t *testing.T) {
	user := &models.User{ID: 1}
	run := models.Run{UserID: 1, StartTime: baseDay, MaxSpeed: 30}
	ledger := NewLedger()
	Evaluate(user, []models.Run{run}, ledger, &run)

	p, ok := progressFor(ledger, "speed-50")
	if !ok {
		t.Fatal("no progress toward speed-50 from a 30km/h run")
	}
	if p.Current != 30 || p.Percentage != 60 {
		t.Errorf("speed-50 progress = %+v, want current 30, 60%%", p)
	}
}

func TestEvaluate_NoProgressWithoutMeasurement(t *testing.T) {
	user := &models.User{ID: 1}
	runs := []models.Run{{UserID: 1, StartTime: baseDay, MaxSpeed: 30}}
	ledger := NewLedger()
	Evaluate(user, runs, ledger, nil)

	if _, ok := progressFor(ledger, "speed-50"); ok {
		t.Error("single-run speed rule progressed outside a new-run evaluation")
	}
}

func TestEvaluate_UnimplementedConditionsStayLocked(t *testing.T) {
	user := &models.User{ID: 1, IsVerified: true}
	run := models.Run{UserID: 1, StartTime: baseDay, Distance: 10}
	ledger := NewLedger()
	Evaluate(user, []models.Run{run}, ledger, &run)

	for _, id := range []string{"opening-day", "closing-day", "pro-analyst"} {
		if unlockedIDs(ledger)[id] {
			t.Errorf("%s unlocked despite having no data source", id)
		}
		if _, ok := progressFor(ledger, id); ok {
			t.Errorf("%s has a progress entry despite having no data source", id)
		}
	}
}

func TestEvaluate_FavoriteCategory(t *testing.T) {
	if NewLedger().FavoriteCategory != models.CategoryDistance {
		t.Error("empty ledger favorite category should default to distance")
	}

	user := &models.User{ID: 1}
	run := models.Run{UserID: 1, StartTime: baseDay, Distance: 10}
	ledger := NewLedger()
	Evaluate(user, []models.Run{run}, ledger, &run)

	// first-tracks (special) and distance-10k (distance) tie 1-1; special
	// appears first in the catalog, so it wins the tie.
	if ledger.FavoriteCategory != models.CategorySpecial {
		t.Errorf("FavoriteCategory = %s, want special on a catalog-order tie", ledger.FavoriteCategory)
	}

	// More distance unlocks break the tie.
	runs := []models.Run{run,
		{UserID: 1, StartTime: baseDay.AddDate(0, 0, 2), Distance: 45},
		{UserID: 1, StartTime: baseDay.AddDate(0, 0, 4), Distance: 50},
	}
	Evaluate(user, runs, ledger, nil)
	if ledger.FavoriteCategory != models.CategoryDistance {
		t.Errorf("FavoriteCategory = %s, want distance after three distance unlocks", ledger.FavoriteCategory)
	}
}

func TestEvaluate_ToleratesZeroValueRuns(t *testing.T) {
	user := &models.User{ID: 1}
	runs := []models.Run{{}, {UserID: 1}}
	ledger := NewLedger()

	newly := Evaluate(user, runs, ledger, &runs[0])
	// Two runs exist, however empty; first-tracks still counts runs.
	if !containsID(newly, "first-tracks") {
		t.Error("first-tracks not unlocked for zero-value runs")
	}
	if containsID(newly, "distance-10k") {
		t.Error("distance-10k unlocked with zero distance")
	}
}
