package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodListing struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	FoodType       string    `json:"food_type"`
	Quantity       string    `json:"quantity"`
	Description    string    `json:"description,omitempty"`
	Location       string    `json:"location"`
	ContactInfo    string    `json:"contact_info"`
	AvailableUntil time.Time `json:"available_until"`
	Status         string    `json:"status"` // available, reserved, completed

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
