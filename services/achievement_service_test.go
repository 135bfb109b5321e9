package services

import (
	"testing"
	"time"

	"snowline/models"
)

type capturePublisher struct {
	userID   uint
	unlocked []models.UnlockedAchievement
	calls    int
}

func (p *capturePublisher) PublishUnlocks(userID uint, unlocked []models.UnlockedAchievement) {
	p.userID = userID
	p.unlocked = unlocked
	p.calls++
}

func TestAchievementService_RecordRunFlow(t *testing.T) {
	svc := NewAchievementService(NewMemoryStore())
	pub := &capturePublisher{}
	svc.SetPublisher(pub)

	user := &models.User{ID: 5}
	run := models.Run{UserID: 5, StartTime: baseDay, EndTime: baseDay.Add(time.Hour), Distance: 10}

	result := svc.RecordRun(user, []models.Run{run}, &run)

	if len(result.NewlyUnlocked) != 2 {
		t.Fatalf("NewlyUnlocked = %d, want 2", len(result.NewlyUnlocked))
	}
	for _, ua := range result.NewlyUnlocked {
		if ua.UnlockedAt.IsZero() {
			t.Errorf("%s missing unlock timestamp", ua.ID)
		}
	}
	if result.Snapshot.TotalRuns != 1 || result.Snapshot.TotalDistance != 10 {
		t.Errorf("snapshot = %+v, want 1 run, 10km", result.Snapshot)
	}

	// Ledger persisted.
	if got := svc.Ledger(5); len(got.Unlocked) != 2 {
		t.Errorf("persisted ledger has %d unlocks, want 2", len(got.Unlocked))
	}

	// Notifications enqueued, newest first.
	list := svc.Notifications().List(5)
	if len(list) != 2 {
		t.Fatalf("notification list = %d entries, want 2", len(list))
	}
	if list[0].Achievement.ID != "distance-10k" {
		t.Errorf("newest notification = %s, want distance-10k", list[0].Achievement.ID)
	}

	// Publisher saw the same unlocks.
	if pub.calls != 1 || pub.userID != 5 || len(pub.unlocked) != 2 {
		t.Errorf("publisher calls=%d user=%d unlocks=%d, want 1/5/2", pub.calls, pub.userID, len(pub.unlocked))
	}
}

func TestAchievementService_ReplayDoesNotDoubleEnqueue(t *testing.T) {
	svc := NewAchievementService(NewMemoryStore())
	user := &models.User{ID: 5}
	run := models.Run{UserID: 5, StartTime: baseDay, Distance: 10}
	runs := []models.Run{run}

	svc.RecordRun(user, runs, &run)
	second := svc.RecordRun(user, runs, &run)

	if len(second.NewlyUnlocked) != 0 {
		t.Errorf("replay unlocked %d achievements, want 0", len(second.NewlyUnlocked))
	}
	if got := len(svc.Notifications().List(5)); got != 2 {
		t.Errorf("replay grew notifications to %d, want 2", got)
	}
	if got := svc.Ledger(5); got.TotalPoints != 20 {
		t.Errorf("replay changed TotalPoints to %d, want 20", got.TotalPoints)
	}
}

func TestAchievementService_NoPublisherIsFine(t *testing.T) {
	svc := NewAchievementService(NewMemoryStore())
	user := &models.User{ID: 5}
	run := models.Run{UserID: 5, StartTime: baseDay, Distance: 10}

	// Must not panic without a publisher attached.
	result := svc.RecordRun(user, []models.Run{run}, &run)
	if len(result.NewlyUnlocked) == 0 {
		t.Error("expected unlocks on first run")
	}
}

func TestAchievementService_StorageFaultStillReturnsResult(t *testing.T) {
	svc := NewAchievementService(failingStore{})
	user := &models.User{ID: 5}
	run := models.Run{UserID: 5, StartTime: baseDay, Distance: 10}

	result := svc.RecordRun(user, []models.Run{run}, &run)

	// The in-memory evaluation survives a dead store.
	if len(result.NewlyUnlocked) != 2 {
		t.Errorf("NewlyUnlocked = %d under storage fault, want 2", len(result.NewlyUnlocked))
	}
	if result.Ledger.TotalPoints != 20 {
		t.Errorf("TotalPoints = %d under storage fault, want 20", result.Ledger.TotalPoints)
	}
}
