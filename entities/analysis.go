package entities

import (
	"github.com/google/uuid"
)

type FoodAnalysis struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	FoodName            string    `json:"food_name"`
	Category            string    `json:"category"` // Fruit, Vegetables, Bakery, Meat, Dairy, Other
	Freshness           string    `json:"freshness"` // excellent, good, fair, poor
	EstimatedExpiry     string    `json:"estimated_expiry"`
	NutritionalValue    string    `json:"nutritional_value"`
	DonationSuitability string    `json:"donation_suitability"` // excellent, good, not_recommended
	Confidence          int       `json:"confidence"`
	RawLabel            string    `gorm:"type:text" json:"raw_label,omitempty"`
	ImageURL            string    `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
