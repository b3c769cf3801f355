package entities

import (
	"github.com/google/uuid"
	"time"
)

// UserActivity rows are append-only; they are never updated after creation.
type UserActivity struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	ActivityType string     `json:"activity_type"` // donation_created, donation_reserved, donation_completed, food_scanned
	Description  string     `json:"description"`
	RelatedID    *uuid.UUID `json:"related_id,omitempty"`
	Location     string     `json:"location,omitempty"`
	CreatedAt    time.Time  `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
