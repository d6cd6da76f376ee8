package services

import "strings"

// Canned assistant replies used when no language model is configured.
// Categories are checked in a fixed priority order; first hit wins.
const (
	fallbackHawaii  = "Hawaii sounds amazing! What time of year are you thinking of traveling, and how many people will be going?"
	fallbackEurope  = "Europe has so many wonderful destinations! Are you interested in a specific country, and what's your preferred travel timeframe?"
	fallbackCruise  = "Cruises are fantastic! We have exclusive deals with Norwegian Cruise Line. What regions interest you - Caribbean, Mediterranean, Alaska?"
	fallbackBudget  = "I'd be happy to help you find options within your budget. What's your approximate budget range per person for the trip?"
	fallbackGeneric = "I'm here to help you plan your perfect trip! Where would you like to go, and when are you thinking of traveling?"
)

var fallbackCategories = []struct {
	keywords []string
	reply    string
}{
	{[]string{"hawaii", "maui", "oahu", "honolulu"}, fallbackHawaii},
	{[]string{"europe", "paris", "london", "italy"}, fallbackEurope},
	{[]string{"cruise", "ship", "sailing"}, fallbackCruise},
	{[]string{"budget", "cost", "price"}, fallbackBudget},
}

// FallbackResponse picks a canned reply by keyword matching over the
// lowercased message. Pure function, no state.
func FallbackResponse(message string) string {
	lower := strings.ToLower(message)

	for _, cat := range fallbackCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.reply
			}
		}
	}

	return fallbackGeneric
}
