// services/achievement_notifications.go
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"snowline/models"

	"github.com/google/uuid"
)

// DefaultNotificationMaxAgeDays is how long unlock notifications are kept
// before Prune drops them.
const DefaultNotificationMaxAgeDays = 30

// NotificationQueue records "newly unlocked" events per user, newest first.
// The ledger stays the source of truth for what is unlocked; this queue
// only feeds the UI's toasts and banners, so persistence is best-effort
// like the ledger's.
type NotificationQueue struct {
	store KVStore
}

func NewNotificationQueue(store KVStore) *NotificationQueue {
	return &NotificationQueue{store: store}
}

func notificationsKey(userID uint) string {
	return fmt.Sprintf("achievement_notifications:%d", userID)
}

// Enqueue prepends one notification per unlocked achievement, so the most
// recent unlock is always first in the stored list.
func (q *NotificationQueue) Enqueue(userID uint, unlocked []models.UnlockedAchievement) {
	if len(unlocked) == 0 {
		return
	}

	list := q.load(userID)
	now := time.Now().UTC()
	for _, ua := range unlocked {
		entry := models.AchievementNotification{
			ID:          uuid.New().String(),
			Achievement: ua,
			Timestamp:   now,
			IsNew:       true,
		}
		list = append([]models.AchievementNotification{entry}, list...)
	}
	q.save(userID, list)
}

// List returns every stored notification, acknowledged ones included;
// callers filter on IsNew as needed.
func (q *NotificationQueue) List(userID uint) []models.AchievementNotification {
	return q.load(userID)
}

// AcknowledgeAll marks every stored notification as seen.
func (q *NotificationQueue) AcknowledgeAll(userID uint) {
	list := q.load(userID)
	changed := false
	for i := range list {
		if list[i].IsNew {
			list[i].IsNew = false
			changed = true
		}
	}
	if changed {
		q.save(userID, list)
	}
}

// Prune drops notifications older than maxAgeDays (non-positive means the
// default) and returns how many were removed.
func (q *NotificationQueue) Prune(userID uint, maxAgeDays int) int {
	if maxAgeDays <= 0 {
		maxAgeDays = DefaultNotificationMaxAgeDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -maxAgeDays)

	list := q.load(userID)
	kept := list[:0]
	for _, n := range list {
		if n.Timestamp.After(cutoff) {
			kept = append(kept, n)
		}
	}

	removed := len(list) - len(kept)
	if removed > 0 {
		q.save(userID, kept)
	}
	return removed
}

func (q *NotificationQueue) load(userID uint) []models.AchievementNotification {
	raw, ok := q.store.Get(notificationsKey(userID))
	if !ok {
		return []models.AchievementNotification{}
	}

	var list []models.AchievementNotification
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Printf("achievements: corrupt notification list for user %d, resetting: %v", userID, err)
		return []models.AchievementNotification{}
	}
	return list
}

func (q *NotificationQueue) save(userID uint, list []models.AchievementNotification) {
	raw, err := json.Marshal(list)
	if err != nil {
		log.Printf("achievements: failed to serialize notifications for user %d: %v", userID, err)
		return
	}
	if err := q.store.Set(notificationsKey(userID), raw); err != nil {
		log.Printf("achievements: failed to save notifications for user %d: %v", userID, err)
	}
}
