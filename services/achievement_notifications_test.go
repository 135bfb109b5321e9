package services

import (
	"encoding/json"
	"testing"
	"time"

	"snowline/models"
)

func unlockedEntry(id string, at time.Time) models.UnlockedAchievement {
	a, ok := FindAchievement(id)
	if !ok {
		panic("unknown achievement in test: " + id)
	}
	return models.UnlockedAchievement{Achievement: a, UnlockedAt: at}
}

func TestNotificationQueue_EnqueueNewestFirst(t *testing.T) {
	q := NewNotificationQueue(NewMemoryStore())

	q.Enqueue(1, []models.UnlockedAchievement{unlockedEntry("first-tracks", baseDay)})
	q.Enqueue(1, []models.UnlockedAchievement{unlockedEntry("distance-10k", baseDay)})

	list := q.List(1)
	if len(list) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(list))
	}
	if list[0].Achievement.ID != "distance-10k" {
		t.Errorf("newest entry is %s, want distance-10k first", list[0].Achievement.ID)
	}
	for _, n := range list {
		if !n.IsNew {
			t.Errorf("entry %s not marked new on enqueue", n.Achievement.ID)
		}
		if n.ID == "" {
			t.Error("entry missing generated ID")
		}
	}
}

func TestNotificationQueue_EmptyEnqueueIsNoop(t *testing.T) {
	kv := NewMemoryStore()
	q := NewNotificationQueue(kv)
	q.Enqueue(1, nil)

	if _, ok := kv.Get(notificationsKey(1)); ok {
		t.Error("empty enqueue wrote to the store")
	}
}

func TestNotificationQueue_AcknowledgeAll(t *testing.T) {
	q := NewNotificationQueue(NewMemoryStore())
	q.Enqueue(1, []models.UnlockedAchievement{
		unlockedEntry("first-tracks", baseDay),
		unlockedEntry("distance-10k", baseDay),
	})

	q.AcknowledgeAll(1)

	for _, n := range q.List(1) {
		if n.IsNew {
			t.Errorf("entry %s still new after AcknowledgeAll", n.Achievement.ID)
		}
	}
}

func TestNotificationQueue_ListKeepsAcknowledged(t *testing.T) {
	q := NewNotificationQueue(NewMemoryStore())
	q.Enqueue(1, []models.UnlockedAchievement{unlockedEntry("first-tracks", baseDay)})
	q.AcknowledgeAll(1)

	if len(q.List(1)) != 1 {
		t.Error("acknowledged entries dropped from List; callers filter on IsNew")
	}
}

func TestNotificationQueue_Prune(t *testing.T) {
	kv := NewMemoryStore()
	q := NewNotificationQueue(kv)

	old := models.AchievementNotification{
		ID:          "old",
		Achievement: unlockedEntry("first-tracks", baseDay),
		Timestamp:   time.Now().UTC().AddDate(0, 0, -40),
		IsNew:       false,
	}
	fresh := models.AchievementNotification{
		ID:          "fresh",
		Achievement: unlockedEntry("distance-10k", baseDay),
		Timestamp:   time.Now().UTC().AddDate(0, 0, -5),
		IsNew:       true,
	}
	raw, _ := json.Marshal([]models.AchievementNotification{fresh, old})
	kv.Set(notificationsKey(1), raw)

	removed := q.Prune(1, 30)
	if removed != 1 {
		t.Errorf("Prune removed %d, want 1", removed)
	}

	list := q.List(1)
	if len(list) != 1 || list[0].ID != "fresh" {
		t.Errorf("after prune list = %+v, want only the fresh entry", list)
	}
}

func TestNotificationQueue_PruneDefaultAge(t *testing.T) {
	kv := NewMemoryStore()
	q := NewNotificationQueue(kv)

	old := models.AchievementNotification{
		ID:          "old",
		Achievement: unlockedEntry("first-tracks", baseDay),
		Timestamp:   time.Now().UTC().AddDate(0, 0, -31),
	}
	raw, _ := json.Marshal([]models.AchievementNotification{old})
	kv.Set(notificationsKey(1), raw)

	if removed := q.Prune(1, 0); removed != 1 {
		t.Errorf("Prune with default age removed %d, want 1", removed)
	}
}

func TestNotificationQueue_CorruptListResets(t *testing.T) {
	kv := NewMemoryStore()
	kv.Set(notificationsKey(3), []byte("[[["))

	q := NewNotificationQueue(kv)
	if got := q.List(3); len(got) != 0 {
		t.Errorf("corrupt list returned %d entries, want 0", len(got))
	}
}
