package model

import "time"

// User is a mock-authenticated visitor. Nothing here is a credential.
// TokenVersion is bumped on logout so earlier tokens stop working.
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string    `gorm:"type:varchar(50);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	TokenVersion int       `gorm:"not null;default:0" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
	LastLoginAt  time.Time `json:"-"`
}
