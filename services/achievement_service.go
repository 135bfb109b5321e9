// services/achievement_service.go
package services

import (
	"snowline/models"
)

// UnlockPublisher receives freshly unlocked achievements for live delivery
// (the websocket feed implements it).
type UnlockPublisher interface {
	PublishUnlocks(userID uint, unlocked []models.UnlockedAchievement)
}

// AchievementService ties the catalog, evaluator, ledger store and
// notification queue together behind one entry point per run-save event.
type AchievementService struct {
	ledgers   *LedgerStore
	queue     *NotificationQueue
	publisher UnlockPublisher
}

// NewAchievementService wires the engine to the given storage backend.
func NewAchievementService(store KVStore) *AchievementService {
	return &AchievementService{
		ledgers: NewLedgerStore(store),
		queue:   NewNotificationQueue(store),
	}
}

// SetPublisher attaches an optional live unlock feed.
func (s *AchievementService) SetPublisher(p UnlockPublisher) {
	s.publisher = p
}

// RunEvaluation is what one evaluation pass produced.
type RunEvaluation struct {
	Ledger        *models.UserAchievements     `json:"ledger"`
	NewlyUnlocked []models.UnlockedAchievement `json:"newly_unlocked"`
	Snapshot      models.UserStatsSnapshot     `json:"snapshot"`
}

// RecordRun is the save-run entry point: recompute stats over the full
// history, evaluate every locked achievement, persist the ledger, enqueue
// and publish whatever newly unlocked. The in-memory result is returned
// even if persistence failed, so the caller's session stays correct.
func (s *AchievementService) RecordRun(user *models.User, runs []models.Run, newRun *models.Run) RunEvaluation {
	ledger := s.ledgers.Load(user.ID)
	newly := Evaluate(user, runs, ledger, newRun)
	s.ledgers.Save(user.ID, ledger)

	unlocked := withUnlockTimes(ledger, newly)
	if len(unlocked) > 0 {
		s.queue.Enqueue(user.ID, unlocked)
		if s.publisher != nil {
			s.publisher.PublishUnlocks(user.ID, unlocked)
		}
	}

	return RunEvaluation{
		Ledger:        ledger,
		NewlyUnlocked: unlocked,
		Snapshot:      ComputeStats(user, runs),
	}
}

// Ledger returns the user's current persisted ledger (empty default for
// new users).
func (s *AchievementService) Ledger(userID uint) *models.UserAchievements {
	return s.ledgers.Load(userID)
}

// Notifications exposes the unlock notification queue.
func (s *AchievementService) Notifications() *NotificationQueue {
	return s.queue
}

// withUnlockTimes resolves the newly unlocked catalog entries to their
// ledger records, which carry the unlock timestamps.
func withUnlockTimes(ledger *models.UserAchievements, newly []models.Achievement) []models.UnlockedAchievement {
	if len(newly) == 0 {
		return []models.UnlockedAchievement{}
	}

	byID := make(map[string]models.UnlockedAchievement, len(ledger.Unlocked))
	for _, ua := range ledger.Unlocked {
		byID[ua.ID] = ua
	}

	out := make([]models.UnlockedAchievement, 0, len(newly))
	for _, a := range newly {
		if ua, ok := byID[a.ID]; ok {
			out = append(out, ua)
		}
	}
	return out
}
