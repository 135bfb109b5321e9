// services/achievement_store.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"snowline/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore is the storage port the achievement engine persists through.
// Implementations: MemoryStore for tests, GormStore for production.
type KVStore interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}

// MemoryStore is an in-process KVStore. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// GormStore keeps entries in the store_entries table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) ([]byte, bool) {
	var entry models.StoreEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("store: failed to read %q: %v", key, err)
		}
		return nil, false
	}
	return []byte(entry.Value), true
}

func (s *GormStore) Set(key string, value []byte) error {
	entry := models.StoreEntry{Key: key, Value: string(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (s *GormStore) Delete(key string) error {
	return s.db.Delete(&models.StoreEntry{}, "key = ?", key).Error
}

// LedgerStore loads and saves one UserAchievements record per user.
// Both directions are best-effort: unreadable state degrades to the empty
// ledger and write failures are logged, never surfaced. The ledger is
// re-derivable from run history, so losing a write is not critical.
type LedgerStore struct {
	store KVStore
}

func NewLedgerStore(store KVStore) *LedgerStore {
	return &LedgerStore{store: store}
}

func ledgerKey(userID uint) string {
	return fmt.Sprintf("achievements:%d", userID)
}

// Load returns the user's ledger, or the empty default when nothing is
// stored or the stored value cannot be parsed.
func (s *LedgerStore) Load(userID uint) *models.UserAchievements {
	raw, ok := s.store.Get(ledgerKey(userID))
	if !ok {
		return NewLedger()
	}

	var ledger models.UserAchievements
	if err := json.Unmarshal(raw, &ledger); err != nil {
		log.Printf("achievements: corrupt ledger for user %d, resetting: %v", userID, err)
		return NewLedger()
	}
	if ledger.Unlocked == nil {
		ledger.Unlocked = []models.UnlockedAchievement{}
	}
	if ledger.Progress == nil {
		ledger.Progress = []models.AchievementProgress{}
	}
	if ledger.FavoriteCategory == "" {
		ledger.FavoriteCategory = models.CategoryDistance
	}
	return &ledger
}

// Save persists the ledger. Fire and forget.
func (s *LedgerStore) Save(userID uint, ledger *models.UserAchievements) {
	raw, err := json.Marshal(ledger)
	if err != nil {
		log.Printf("achievements: failed to serialize ledger for user %d: %v", userID, err)
		return
	}
	if err := s.store.Set(ledgerKey(userID), raw); err != nil {
		log.Printf("achievements: failed to save ledger for user %d: %v", userID, err)
	}
}
