package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackResponseKeywords(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"hawaii", "I want to go to Hawaii", fallbackHawaii},
		{"maui", "thinking about MAUI next spring", fallbackHawaii},
		{"oahu", "is oahu nice?", fallbackHawaii},
		{"honolulu", "Flights to Honolulu", fallbackHawaii},
		{"europe", "somewhere in europe", fallbackEurope},
		{"paris", "Paris in the fall", fallbackEurope},
		{"london", "maybe london?", fallbackEurope},
		{"italy", "Italy with the family", fallbackEurope},
		{"cruise", "a cruise would be fun", fallbackCruise},
		{"ship", "never been on a ship", fallbackCruise},
		{"sailing", "sailing the Mediterranean", fallbackCruise},
		{"budget", "what fits my budget", fallbackBudget},
		{"cost", "how much does it cost", fallbackBudget},
		{"price", "best price available", fallbackBudget},
		{"generic", "help me plan something", fallbackGeneric},
		{"empty", "", fallbackGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FallbackResponse(tt.message))
		})
	}
}

func TestFallbackResponsePriorityOrder(t *testing.T) {
	// Hawaii wins over every later category
	assert.Equal(t, fallbackHawaii, FallbackResponse("a cruise to Hawaii"))
	assert.Equal(t, fallbackHawaii, FallbackResponse("hawaii on a budget"))

	// Europe wins over cruise and budget
	assert.Equal(t, fallbackEurope, FallbackResponse("a cheap cruise around italy"))

	// Cruise wins over budget
	assert.Equal(t, fallbackCruise, FallbackResponse("cruise prices"))
}

func TestFallbackResponseIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, fallbackHawaii, FallbackResponse("HAWAII"))
	assert.Equal(t, fallbackCruise, FallbackResponse("CrUiSe"))
}
