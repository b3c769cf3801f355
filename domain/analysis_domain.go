package domain

import (
	"errors"
)

const (
	CategoryFruit      = "Fruit"
	CategoryVegetables = "Vegetables"
	CategoryBakery     = "Bakery"
	CategoryMeat       = "Meat"
	CategoryDairy      = "Dairy"
	CategoryOther      = "Other"

	FreshnessExcellent = "excellent"
	FreshnessGood      = "good"
	FreshnessFair      = "fair"
	FreshnessPoor      = "poor"

	SuitabilityExcellent      = "excellent"
	SuitabilityGood           = "good"
	SuitabilityNotRecommended = "not_recommended"
)

var (
	MessageSuccessAnalyzeFood = "food analysis completed successfully"
	MessageFailedAnalyzeFood  = "failed to analyze food image"

	ErrNoImageData          = errors.New("no image data provided")
	ErrInvalidImageData     = errors.New("invalid image data")
	ErrClassificationFailed = errors.New("food classification service failed")
)

type (
	AnalyzeFoodRequest struct {
		ImageData string `json:"image_data" validate:"required"`
	}

	FoodAnalysisResult struct {
		FoodName            string `json:"food_name"`
		Category            string `json:"category"`
		Freshness           string `json:"freshness"`
		EstimatedExpiry     string `json:"estimated_expiry"`
		NutritionalValue    string `json:"nutritional_value"`
		DonationSuitability string `json:"donation_suitability"`
		Confidence          int    `json:"confidence"`
	}
)
