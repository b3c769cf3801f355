package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateMeals(t *testing.T) {
	tests := []struct {
		quantity string
		expected int64
	}{
		{"20 lbs", 40},
		{"5 pounds of rice", 10},
		{"15 servings", 15},
		{"10 boxes", 5},
		{"1 box", 1},
		{"a few bags", 1},
		{"", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EstimateMeals(tt.quantity), "quantity %q", tt.quantity)
	}
}

func TestEstimateWaste(t *testing.T) {
	tests := []struct {
		quantity string
		expected int64
	}{
		{"20 lbs", 20},
		{"5 pounds of rice", 5},
		{"10 boxes", 5},
		{"1 tray", 1},
		{"some leftovers", 1},
		{"", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EstimateWaste(tt.quantity), "quantity %q", tt.quantity)
	}
}
