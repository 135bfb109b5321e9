// models/resort.go
package models

import "time"

// Resort is a ski field runs can be recorded at. The table is seeded from a
// fixed list during migration.
type Resort struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Region    string    `gorm:"size:100" json:"region"`
	Country   string    `gorm:"size:100" json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

func (Resort) TableName() string {
	return "resorts"
}
