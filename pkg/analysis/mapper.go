package analysis

import (
	"FoodShare-Backend/domain"
	"regexp"
	"strings"
)

// categoryKeywords is checked in order; the first category with a matching
// keyword wins. Labels matching nothing fall through to Other.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{domain.CategoryFruit, []string{"fruit", "apple", "banana", "orange", "berry", "grape"}},
	{domain.CategoryVegetables, []string{"vegetable", "carrot", "broccoli", "lettuce", "tomato", "potato"}},
	{domain.CategoryBakery, []string{"bread", "bakery", "pastry"}},
	{domain.CategoryMeat, []string{"meat", "chicken", "beef"}},
	{domain.CategoryDairy, []string{"dairy", "milk", "cheese"}},
}

var expiryByCategory = map[string]string{
	domain.CategoryFruit:      "3-7 days",
	domain.CategoryVegetables: "5-10 days",
	domain.CategoryBakery:     "1-3 days",
	domain.CategoryMeat:       "1-2 days",
	domain.CategoryDairy:      "3-5 days",
}

var nutritionByCategory = map[string]string{
	domain.CategoryFruit:      "High in vitamins, fiber, and antioxidants",
	domain.CategoryVegetables: "Rich in vitamins, minerals, and fiber",
	domain.CategoryBakery:     "Carbohydrates and energy",
	domain.CategoryMeat:       "High protein and essential amino acids",
	domain.CategoryDairy:      "Calcium, protein, and vitamins",
}

const (
	defaultExpiry    = "2-5 days"
	defaultNutrition = "Varied nutritional content"
)

var leadingArticle = regexp.MustCompile(`(?i)^(a |an |the )`)

// AnalyzeFoodProperties maps a classifier label and confidence score to the
// full food attribute record shown to donors. It is a pure function of its
// inputs.
func AnalyzeFoodProperties(label string, confidence int) domain.FoodAnalysisResult {
	category := inferCategory(label)

	expiry, ok := expiryByCategory[category]
	if !ok {
		expiry = defaultExpiry
	}
	nutrition, ok := nutritionByCategory[category]
	if !ok {
		nutrition = defaultNutrition
	}

	freshness := freshnessFromConfidence(confidence)

	return domain.FoodAnalysisResult{
		FoodName:            displayName(label),
		Category:            category,
		Freshness:           freshness,
		EstimatedExpiry:     expiry,
		NutritionalValue:    nutrition,
		DonationSuitability: suitabilityFromFreshness(freshness),
		Confidence:          confidence,
	}
}

func inferCategory(label string) string {
	lower := strings.ToLower(label)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}
	return domain.CategoryOther
}

func freshnessFromConfidence(confidence int) string {
	switch {
	case confidence > 85:
		return domain.FreshnessExcellent
	case confidence > 70:
		return domain.FreshnessGood
	case confidence > 50:
		return domain.FreshnessFair
	default:
		return domain.FreshnessPoor
	}
}

func suitabilityFromFreshness(freshness string) string {
	switch freshness {
	case domain.FreshnessExcellent, domain.FreshnessGood:
		return domain.SuitabilityExcellent
	case domain.FreshnessFair:
		return domain.SuitabilityGood
	default:
		return domain.SuitabilityNotRecommended
	}
}

// displayName cleans up a raw classifier label like "Granny Smith, apple"
// into a presentable food name: truncate at the first comma, drop a leading
// article, and capitalize each word.
func displayName(label string) string {
	name := label
	if idx := strings.Index(name, ","); idx >= 0 {
		name = name[:idx]
	}
	name = leadingArticle.ReplaceAllString(strings.TrimSpace(name), "")

	words := strings.Split(name, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
