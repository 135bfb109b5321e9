package services

import (
	"errors"
	"testing"
	"time"

	"snowline/models"
)

// failingStore rejects every write and returns nothing on reads.
type failingStore struct{}

func (failingStore) Get(string) ([]byte, bool)  { return nil, false }
func (failingStore) Set(string, []byte) error   { return errors.New("disk full") }
func (failingStore) Delete(string) error        { return errors.New("disk full") }

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Get("missing"); ok {
		t.Error("Get on empty store returned a value")
	}

	if err := s.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := s.Get("k")
	if !ok || string(v) != "v" {
		t.Errorf("Get = %q, %v; want \"v\", true", v, ok)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := s.Get("k"); ok {
		t.Error("value survived Delete")
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	buf := []byte("original")
	s.Set("k", buf)
	buf[0] = 'X'

	v, _ := s.Get("k")
	if string(v) != "original" {
		t.Error("store aliased the caller's buffer")
	}
}

func TestLedgerStore_DefaultForNewUser(t *testing.T) {
	store := NewLedgerStore(NewMemoryStore())
	ledger := store.Load(42)

	if len(ledger.Unlocked) != 0 || len(ledger.Progress) != 0 {
		t.Errorf("new user ledger not empty: %+v", ledger)
	}
	if ledger.TotalPoints != 0 || ledger.CompletionRate != 0 {
		t.Errorf("new user ledger has non-zero totals: %+v", ledger)
	}
	if ledger.FavoriteCategory != models.CategoryDistance {
		t.Errorf("FavoriteCategory = %s, want distance", ledger.FavoriteCategory)
	}
}

func TestLedgerStore_RoundTripPreservesTimestamps(t *testing.T) {
	kv := NewMemoryStore()
	store := NewLedgerStore(kv)

	unlockedAt := time.Date(2026, 7, 4, 9, 30, 0, 0, time.UTC)
	a, _ := FindAchievement("first-tracks")
	ledger := NewLedger()
	ledger.Unlocked = append(ledger.Unlocked, models.UnlockedAchievement{Achievement: a, UnlockedAt: unlockedAt})
	ledger.Progress = append(ledger.Progress, models.AchievementProgress{
		AchievementID: "distance-10k", Current: 4, Target: 10, Percentage: 40,
		LastUpdated: unlockedAt,
	})
	ledger.TotalPoints = 10

	store.Save(7, ledger)
	got := store.Load(7)

	if len(got.Unlocked) != 1 || got.Unlocked[0].ID != "first-tracks" {
		t.Fatalf("round-tripped ledger = %+v", got)
	}
	if !got.Unlocked[0].UnlockedAt.Equal(unlockedAt) {
		t.Errorf("UnlockedAt = %v, want %v", got.Unlocked[0].UnlockedAt, unlockedAt)
	}
	if !got.Progress[0].LastUpdated.Equal(unlockedAt) {
		t.Errorf("LastUpdated = %v, want %v", got.Progress[0].LastUpdated, unlockedAt)
	}
	if got.TotalPoints != 10 {
		t.Errorf("TotalPoints = %d, want 10", got.TotalPoints)
	}
}

func TestLedgerStore_CorruptValueResets(t *testing.T) {
	kv := NewMemoryStore()
	kv.Set(ledgerKey(9), []byte("{not json"))

	ledger := NewLedgerStore(kv).Load(9)
	if len(ledger.Unlocked) != 0 {
		t.Error("corrupt ledger did not reset to empty")
	}
	if ledger.FavoriteCategory != models.CategoryDistance {
		t.Errorf("FavoriteCategory = %s after reset, want distance", ledger.FavoriteCategory)
	}
}

func TestLedgerStore_SaveFailureIsSilent(t *testing.T) {
	store := NewLedgerStore(failingStore{})

	// Must not panic or surface the error.
	store.Save(1, NewLedger())

	ledger := store.Load(1)
	if len(ledger.Unlocked) != 0 {
		t.Errorf("Load after failed Save = %+v, want empty default", ledger)
	}
}

func TestLedgerKeys(t *testing.T) {
	if ledgerKey(12) != "achievements:12" {
		t.Errorf("ledgerKey(12) = %q", ledgerKey(12))
	}
	if notificationsKey(12) != "achievement_notifications:12" {
		t.Errorf("notificationsKey(12) = %q", notificationsKey(12))
	}
}
