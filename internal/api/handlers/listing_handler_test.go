package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/utils"
	"FoodShare-Backend/pkg/activity"
	"FoodShare-Backend/pkg/listing"
	"FoodShare-Backend/pkg/metrics"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupListingApp wires the listing routes behind a middleware that injects
// the given user id, standing in for JWT auth.
func setupListingApp(t *testing.T, userID string) (*fiber.App, listing.ListingService) {
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
		`CREATE TABLE food_listings (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			food_type TEXT,
			quantity TEXT,
			description TEXT,
			location TEXT,
			contact_info TEXT,
			available_until DATETIME,
			status TEXT,
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

	activityRepository := activity.NewActivityRepository(db)
	metricsService := metrics.NewMetricsService(metrics.NewMetricsRepository(db), activityRepository)
	listingService := listing.NewListingService(listing.NewListingRepository(db), activityRepository, metricsService)

	utils.InitValidator()
	handler := NewListingHandler(listingService, utils.Validate)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	group := app.Group("/api/v1/food-listings")
	group.Post("", handler.CreateListing)
	group.Get("/:id", handler.GetListingByID)
	group.Put("/:id", handler.UpdateListingStatus)

	return app, listingService
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateListingEndpoint(t *testing.T) {
	app, _ := setupListingApp(t, uuid.NewString())

	req := jsonRequest(t, http.MethodPost, "/api/v1/food-listings", map[string]string{
		"food_type":       "Bread",
		"quantity":        "12 loaves",
		"location":        "Main St shelter",
		"contact_info":    "bakery@example.com",
		"available_until": "2026-09-10",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateListingEndpointValidation(t *testing.T) {
	app, _ := setupListingApp(t, uuid.NewString())

	req := jsonRequest(t, http.MethodPost, "/api/v1/food-listings", map[string]string{
		"food_type": "Bread",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetListingEndpointNotFound(t *testing.T) {
	app, _ := setupListingApp(t, uuid.NewString())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/food-listings/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateListingEndpointForbiddenForNonOwner(t *testing.T) {
	requestUser := uuid.NewString()
	app, listingService := setupListingApp(t, requestUser)

	// listing owned by someone else
	created, err := listingService.CreateListing(context.Background(), domain.CreateListingRequest{
		FoodType:       "Apples",
		Quantity:       "10 lbs",
		Location:       "Community fridge",
		ContactInfo:    "x@example.com",
		AvailableUntil: "2026-09-10",
	}, uuid.NewString())
	require.NoError(t, err)

	req := jsonRequest(t, http.MethodPut, "/api/v1/food-listings/"+created.ID, map[string]string{
		"status": domain.ListingStatusReserved,
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
