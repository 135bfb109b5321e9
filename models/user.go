// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar"`
	Bio         string  `json:"bio"`
	IsGuest     bool    `gorm:"default:false" json:"is_guest"`
	IsAdmin     bool    `gorm:"default:false" json:"is_admin"`

	// IsVerified marks a paid ("Pro") account. Pro-exclusive achievements
	// are never shown to, progressed for, or unlocked by unverified users.
	IsVerified bool `gorm:"default:false" json:"is_verified"`

	// Optional home resort shown on the profile.
	HomeResortID string `gorm:"size:64" json:"home_resort_id"`

	// Timestamps
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastActivity *time.Time `json:"last_activity,omitempty"`

	// Relationships
	Runs []Run `gorm:"foreignKey:UserID" json:"runs,omitempty"`
}
