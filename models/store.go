// models/store.go
package models

import "time"

// StoreEntry is one row of the key-value table backing the achievement
// ledger and notification queue (keys like "achievements:<userId>").
type StoreEntry struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StoreEntry) TableName() string {
	return "store_entries"
}
