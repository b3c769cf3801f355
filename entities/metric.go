package entities

import (
	"github.com/google/uuid"
	"time"
)

type ImpactMetric struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MetricType string    `gorm:"uniqueIndex:idx_impact_metrics_type_date" json:"metric_type"` // meals_saved, donations_completed, waste_reduced, users_helped
	Date       time.Time `gorm:"type:date;uniqueIndex:idx_impact_metrics_type_date" json:"date"`
	Value      int64     `json:"value"`

	Timestamp
}
