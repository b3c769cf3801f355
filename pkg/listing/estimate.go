package listing

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`\d+`)

// EstimateMeals converts a free-text quantity like "20 lbs" or "15 servings"
// into a rough meal count. One pound feeds about two meals.
func EstimateMeals(quantity string) int64 {
	num, ok := firstNumber(quantity)
	if !ok {
		return 1
	}

	lower := strings.ToLower(quantity)
	switch {
	case strings.Contains(lower, "lb") || strings.Contains(lower, "pound"):
		return max64(1, num*2)
	case strings.Contains(lower, "serving"):
		return num
	default:
		return max64(1, num/2)
	}
}

// EstimateWaste converts a quantity string into pounds of food waste averted.
func EstimateWaste(quantity string) int64 {
	num, ok := firstNumber(quantity)
	if !ok {
		return 1
	}

	lower := strings.ToLower(quantity)
	if strings.Contains(lower, "lb") || strings.Contains(lower, "pound") {
		return num
	}
	return max64(1, num/2)
}

func firstNumber(quantity string) (int64, bool) {
	match := numberPattern.FindString(quantity)
	if match == "" {
		return 0, false
	}
	num, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
