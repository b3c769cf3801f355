package metrics

import (
	"FoodShare-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MetricsRepository interface {
		IncrementMetric(ctx context.Context, metricType string, amount int64, date time.Time) error
		GetMetricsForDate(ctx context.Context, date time.Time, metricType string) ([]*entities.ImpactMetric, error)
		GetMetricsSince(ctx context.Context, cutoff time.Time, metricType string) ([]*entities.ImpactMetric, error)
	}

	metricsRepository struct {
		db *gorm.DB
	}
)

func NewMetricsRepository(db *gorm.DB) MetricsRepository {
	return &metricsRepository{db: db}
}

// IncrementMetric adds amount to the (metric_type, date) bucket as a single
// atomic upsert. Concurrent increments for the same bucket must not lose
// updates, so the addition happens inside the conflict clause rather than as
// a read followed by a write.
func (r *metricsRepository) IncrementMetric(ctx context.Context, metricType string, amount int64, date time.Time) error {
	metric := &entities.ImpactMetric{
		ID:         uuid.New(),
		MetricType: metricType,
		Date:       date,
		Value:      amount,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "metric_type"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value":      gorm.Expr("impact_metrics.value + ?", amount),
				"updated_at": time.Now(),
			}),
		}).
		Create(metric).Error
}

func (r *metricsRepository) GetMetricsForDate(ctx context.Context, date time.Time, metricType string) ([]*entities.ImpactMetric, error) {
	var metrics []*entities.ImpactMetric

	query := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("date DESC")

	if metricType != "" {
		query = query.Where("metric_type = ?", metricType)
	}

	if err := query.Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (r *metricsRepository) GetMetricsSince(ctx context.Context, cutoff time.Time, metricType string) ([]*entities.ImpactMetric, error) {
	var metrics []*entities.ImpactMetric

	query := r.db.WithContext(ctx).
		Where("date >= ?", cutoff).
		Order("date DESC")

	if metricType != "" {
		query = query.Where("metric_type = ?", metricType)
	}

	if err := query.Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}
