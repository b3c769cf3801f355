package activity

import (
	"FoodShare-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ActivityRepository interface {
		AddActivity(ctx context.Context, activity *entities.UserActivity) error
		GetRecentActivities(ctx context.Context, limit int) ([]*entities.UserActivity, error)
	}

	activityRepository struct {
		db *gorm.DB
	}
)

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) AddActivity(ctx context.Context, activity *entities.UserActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) GetRecentActivities(ctx context.Context, limit int) ([]*entities.UserActivity, error) {
	var activities []*entities.UserActivity
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
