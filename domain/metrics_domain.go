package domain

import (
	"errors"
	"time"
)

const (
	MetricMealsSaved         = "meals_saved"
	MetricDonationsCompleted = "donations_completed"
	MetricWasteReduced       = "waste_reduced"
	MetricUsersHelped        = "users_helped"

	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

var (
	MessageSuccessGetMetrics = "impact metrics retrieved successfully"
	MessageFailedGetMetrics  = "failed to retrieve impact metrics"

	ErrInvalidPeriod = errors.New("invalid metrics period")
)

type (
	ImpactMetric struct {
		MetricType string    `json:"metric_type"`
		Date       time.Time `json:"date,omitempty"`
		Value      int64     `json:"value"`
	}

	UserActivity struct {
		ID           string    `json:"id"`
		UserName     string    `json:"user_name"`
		ActivityType string    `json:"activity_type"`
		Description  string    `json:"description"`
		Location     string    `json:"location,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	ImpactDashboard struct {
		Metrics          []*ImpactMetric `json:"metrics"`
		RecentActivities []*UserActivity `json:"recent_activities"`
	}
)
