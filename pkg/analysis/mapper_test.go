package analysis

import (
	"FoodShare-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeFoodPropertiesCategories(t *testing.T) {
	tests := []struct {
		label     string
		category  string
		expiry    string
		nutrition string
	}{
		{"Granny Smith, apple", domain.CategoryFruit, "3-7 days", "High in vitamins, fiber, and antioxidants"},
		{"broccoli", domain.CategoryVegetables, "5-10 days", "Rich in vitamins, minerals, and fiber"},
		{"french bread", domain.CategoryBakery, "1-3 days", "Carbohydrates and energy"},
		{"roast chicken", domain.CategoryMeat, "1-2 days", "High protein and essential amino acids"},
		{"cheddar cheese", domain.CategoryDairy, "3-5 days", "Calcium, protein, and vitamins"},
		{"mystery casserole", domain.CategoryOther, "2-5 days", "Varied nutritional content"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			result := AnalyzeFoodProperties(tt.label, 90)
			assert.Equal(t, tt.category, result.Category)
			assert.Equal(t, tt.expiry, result.EstimatedExpiry)
			assert.Equal(t, tt.nutrition, result.NutritionalValue)
		})
	}
}

func TestFreshnessThresholds(t *testing.T) {
	tests := []struct {
		confidence int
		freshness  string
	}{
		{100, domain.FreshnessExcellent},
		{86, domain.FreshnessExcellent},
		{85, domain.FreshnessGood},
		{71, domain.FreshnessGood},
		{70, domain.FreshnessFair},
		{51, domain.FreshnessFair},
		{50, domain.FreshnessPoor},
		{0, domain.FreshnessPoor},
	}

	for _, tt := range tests {
		result := AnalyzeFoodProperties("apple", tt.confidence)
		assert.Equal(t, tt.freshness, result.Freshness, "confidence %d", tt.confidence)
	}
}

func TestDonationSuitability(t *testing.T) {
	tests := []struct {
		confidence  int
		suitability string
	}{
		{90, domain.SuitabilityExcellent},
		{75, domain.SuitabilityExcellent},
		{60, domain.SuitabilityGood},
		{40, domain.SuitabilityNotRecommended},
	}

	for _, tt := range tests {
		result := AnalyzeFoodProperties("apple", tt.confidence)
		assert.Equal(t, tt.suitability, result.DonationSuitability, "confidence %d", tt.confidence)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"Granny Smith, apple", "Granny Smith"},
		{"a banana", "Banana"},
		{"the whole grain bread", "Whole Grain Bread"},
		{"An orange, citrus fruit", "Orange"},
		{"pizza", "Pizza"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, displayName(tt.label), "label %q", tt.label)
	}
}
