package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/pkg/activity"
	"FoodShare-Backend/pkg/metrics"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMetricsApp(t *testing.T) (*fiber.App, metrics.MetricsService) {
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

	metricsService := metrics.NewMetricsService(
		metrics.NewMetricsRepository(db),
		activity.NewActivityRepository(db),
	)

	app := fiber.New()
	app.Get("/api/v1/impact-metrics", NewMetricsHandler(metricsService).GetImpactMetrics)

	return app, metricsService
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGetImpactMetricsEndpoint(t *testing.T) {
	app, metricsService := setupMetricsApp(t)

	require.NoError(t, metricsService.IncrementMetric(context.Background(), domain.MetricMealsSaved, 6))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/impact-metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["status"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)

	listed, ok := data["metrics"].([]any)
	require.True(t, ok)
	require.Len(t, listed, 1)

	metric := listed[0].(map[string]any)
	assert.Equal(t, domain.MetricMealsSaved, metric["metric_type"])
	assert.Equal(t, float64(6), metric["value"])
}

func TestGetImpactMetricsEndpointInvalidPeriod(t *testing.T) {
	app, _ := setupMetricsApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/impact-metrics?period=year", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, domain.ErrInvalidPeriod.Error(), body["error"])
}

func TestGetImpactMetricsEndpointWeekPeriod(t *testing.T) {
	app, metricsService := setupMetricsApp(t)

	require.NoError(t, metricsService.IncrementMetric(context.Background(), domain.MetricWasteReduced, 3))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/impact-metrics?period=week", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)

	// aggregated periods return a bare metric array
	listed, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, listed, 1)
}
