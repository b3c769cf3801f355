package metrics

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/activity"
	"context"
	"time"
)

const recentActivityLimit = 10

type (
	MetricsService interface {
		IncrementMetric(ctx context.Context, metricType string, amount int64) error
		GetImpactMetrics(ctx context.Context, period string, metricType string) (*domain.ImpactDashboard, error)
	}

	metricsService struct {
		metricsRepository  MetricsRepository
		activityRepository activity.ActivityRepository
	}
)

func NewMetricsService(metricsRepository MetricsRepository, activityRepository activity.ActivityRepository) MetricsService {
	return &metricsService{
		metricsRepository:  metricsRepository,
		activityRepository: activityRepository,
	}
}

// today returns the current UTC day bucket.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func (s *metricsService) IncrementMetric(ctx context.Context, metricType string, amount int64) error {
	return s.metricsRepository.IncrementMetric(ctx, metricType, amount, today())
}

func (s *metricsService) GetImpactMetrics(ctx context.Context, period string, metricType string) (*domain.ImpactDashboard, error) {
	switch period {
	case domain.PeriodToday:
		return s.getTodayDashboard(ctx, metricType)
	case domain.PeriodWeek:
		return s.getAggregated(ctx, today().AddDate(0, 0, -7), metricType)
	case domain.PeriodMonth:
		return s.getAggregated(ctx, today().AddDate(0, 0, -30), metricType)
	default:
		return nil, domain.ErrInvalidPeriod
	}
}

func (s *metricsService) getTodayDashboard(ctx context.Context, metricType string) (*domain.ImpactDashboard, error) {
	metrics, err := s.metricsRepository.GetMetricsForDate(ctx, today(), metricType)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepository.GetRecentActivities(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.UserActivity, 0, len(activities))
	for _, act := range activities {
		userName := ""
		if act.User != nil {
			userName = act.User.Name
		}
		result = append(result, &domain.UserActivity{
			ID:           act.ID.String(),
			UserName:     userName,
			ActivityType: act.ActivityType,
			Description:  act.Description,
			Location:     act.Location,
			CreatedAt:    act.CreatedAt,
		})
	}

	return &domain.ImpactDashboard{
		Metrics:          toDomainMetrics(metrics),
		RecentActivities: result,
	}, nil
}

func (s *metricsService) getAggregated(ctx context.Context, cutoff time.Time, metricType string) (*domain.ImpactDashboard, error) {
	metrics, err := s.metricsRepository.GetMetricsSince(ctx, cutoff, metricType)
	if err != nil {
		return nil, err
	}

	// Sum per metric type across the date range; rows arrive date DESC so the
	// kept date is the most recent bucket for that type.
	aggregated := make(map[string]*domain.ImpactMetric)
	order := make([]string, 0)
	for _, metric := range metrics {
		if existing, ok := aggregated[metric.MetricType]; ok {
			existing.Value += metric.Value
			continue
		}
		aggregated[metric.MetricType] = &domain.ImpactMetric{
			MetricType: metric.MetricType,
			Date:       metric.Date,
			Value:      metric.Value,
		}
		order = append(order, metric.MetricType)
	}

	result := make([]*domain.ImpactMetric, 0, len(order))
	for _, name := range order {
		result = append(result, aggregated[name])
	}

	return &domain.ImpactDashboard{Metrics: result}, nil
}

func toDomainMetrics(metrics []*entities.ImpactMetric) []*domain.ImpactMetric {
	result := make([]*domain.ImpactMetric, 0, len(metrics))
	for _, metric := range metrics {
		result = append(result, &domain.ImpactMetric{
			MetricType: metric.MetricType,
			Date:       metric.Date,
			Value:      metric.Value,
		})
	}
	return result
}
