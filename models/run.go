// models/run.go
package models

import (
	"time"
)

// Run is a single recorded ski run. The achievement engine only ever reads
// runs; they are written by the run-tracking endpoints.
type Run struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	User       *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ResortID   string `gorm:"size:64;index" json:"resort_id"`
	ResortName string `gorm:"size:100" json:"resort_name"`

	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Stats
	Distance     float64 `gorm:"default:0" json:"distance"` // kilometres
	Vertical     float64 `gorm:"default:0" json:"vertical"` // metres
	MaxSpeed     float64 `gorm:"default:0" json:"max_speed"` // km/h
	AverageSpeed float64 `gorm:"default:0" json:"average_speed"`

	// Social
	Likes    int  `gorm:"default:0" json:"likes"`
	IsPublic bool `gorm:"default:false" json:"is_public"`

	// Optional, free-form ("Fresh Powder", "Bluebird", ...). Empty when the
	// tracker had no weather fix.
	WeatherConditions string `gorm:"size:50" json:"weather_conditions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Run) TableName() string {
	return "runs"
}
