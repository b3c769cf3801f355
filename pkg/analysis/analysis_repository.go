package analysis

import (
	"FoodShare-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	AnalysisRepository interface {
		SaveAnalysis(ctx context.Context, analysis *entities.FoodAnalysis) error
	}

	analysisRepository struct {
		db *gorm.DB
	}
)

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) SaveAnalysis(ctx context.Context, analysis *entities.FoodAnalysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}
