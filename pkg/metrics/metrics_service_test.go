package metrics

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/activity"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMetricsTest(t *testing.T) (MetricsService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			name TEXT,
			email TEXT UNIQUE,
			password TEXT,
			role TEXT,
			is_verified BOOLEAN,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE impact_metrics (
			id TEXT PRIMARY KEY,
			metric_type TEXT,
			date DATETIME,
			value INTEGER,
			created_at DATETIME,
			updated_at DATETIME,
			UNIQUE (metric_type, date)
		)`,
		`CREATE TABLE user_activities (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			activity_type TEXT,
			description TEXT,
			related_id TEXT,
			location TEXT,
			created_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}

	service := NewMetricsService(NewMetricsRepository(db), activity.NewActivityRepository(db))
	return service, db
}

func insertMetric(t *testing.T, db *gorm.DB, metricType string, date time.Time, value int64) {
	t.Helper()
	require.NoError(t, db.Create(&entities.ImpactMetric{
		ID:         uuid.New(),
		MetricType: metricType,
		Date:       date,
		Value:      value,
	}).Error)
}

func TestIncrementMetricAccumulates(t *testing.T) {
	service, db := setupMetricsTest(t)
	ctx := context.Background()

	require.NoError(t, service.IncrementMetric(ctx, domain.MetricMealsSaved, 3))
	require.NoError(t, service.IncrementMetric(ctx, domain.MetricMealsSaved, 2))

	var rows []*entities.ImpactMetric
	require.NoError(t, db.Where("metric_type = ?", domain.MetricMealsSaved).Find(&rows).Error)

	// two increments for the same day land in a single bucket
	require.Len(t, rows, 1)
	assert.Equal(t, int64(5), rows[0].Value)
}

func TestIncrementMetricSeparateTypes(t *testing.T) {
	service, db := setupMetricsTest(t)
	ctx := context.Background()

	require.NoError(t, service.IncrementMetric(ctx, domain.MetricMealsSaved, 4))
	require.NoError(t, service.IncrementMetric(ctx, domain.MetricWasteReduced, 7))

	var count int64
	require.NoError(t, db.Model(&entities.ImpactMetric{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGetImpactMetricsToday(t *testing.T) {
	service, db := setupMetricsTest(t)
	ctx := context.Background()

	require.NoError(t, service.IncrementMetric(ctx, domain.MetricDonationsCompleted, 2))

	user := &entities.User{ID: uuid.New(), Name: "Jordan", Email: "jordan@example.com"}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&entities.UserActivity{
		ID:           uuid.New(),
		UserID:       user.ID,
		ActivityType: "donation_created",
		Description:  "Created donation listing for bread",
		CreatedAt:    time.Now(),
	}).Error)

	dashboard, err := service.GetImpactMetrics(ctx, domain.PeriodToday, "")
	require.NoError(t, err)

	require.Len(t, dashboard.Metrics, 1)
	assert.Equal(t, domain.MetricDonationsCompleted, dashboard.Metrics[0].MetricType)
	assert.Equal(t, int64(2), dashboard.Metrics[0].Value)

	require.Len(t, dashboard.RecentActivities, 1)
	assert.Equal(t, "Jordan", dashboard.RecentActivities[0].UserName)
	assert.Equal(t, "donation_created", dashboard.RecentActivities[0].ActivityType)
}

func TestGetImpactMetricsWeekAggregates(t *testing.T) {
	service, db := setupMetricsTest(t)
	ctx := context.Background()

	day := time.Now().UTC().Truncate(24 * time.Hour)
	insertMetric(t, db, domain.MetricMealsSaved, day, 5)
	insertMetric(t, db, domain.MetricMealsSaved, day.AddDate(0, 0, -3), 7)
	// outside the window, must not count
	insertMetric(t, db, domain.MetricMealsSaved, day.AddDate(0, 0, -10), 100)
	insertMetric(t, db, domain.MetricWasteReduced, day, 2)

	dashboard, err := service.GetImpactMetrics(ctx, domain.PeriodWeek, "")
	require.NoError(t, err)

	require.Len(t, dashboard.Metrics, 2)

	byType := make(map[string]int64)
	for _, metric := range dashboard.Metrics {
		byType[metric.MetricType] = metric.Value
	}
	assert.Equal(t, int64(12), byType[domain.MetricMealsSaved])
	assert.Equal(t, int64(2), byType[domain.MetricWasteReduced])
	assert.Empty(t, dashboard.RecentActivities)
}

func TestGetImpactMetricsTypeFilter(t *testing.T) {
	service, db := setupMetricsTest(t)
	ctx := context.Background()

	day := time.Now().UTC().Truncate(24 * time.Hour)
	insertMetric(t, db, domain.MetricMealsSaved, day, 5)
	insertMetric(t, db, domain.MetricWasteReduced, day, 2)

	dashboard, err := service.GetImpactMetrics(ctx, domain.PeriodWeek, domain.MetricWasteReduced)
	require.NoError(t, err)

	require.Len(t, dashboard.Metrics, 1)
	assert.Equal(t, domain.MetricWasteReduced, dashboard.Metrics[0].MetricType)
}

func TestGetImpactMetricsInvalidPeriod(t *testing.T) {
	service, _ := setupMetricsTest(t)
	ctx := context.Background()

	_, err := service.GetImpactMetrics(ctx, "year", "")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
