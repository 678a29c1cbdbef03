package recommend

import (
	"fmt"
	"strings"

	"github.com/smartair/travelsearch/internal/models"
)

// buildPrompt embeds the budget and the whole preference profile and pins the
// response to a JSON shape that extractCandidates knows how to dig out.
func buildPrompt(budget float64, profile models.PreferenceProfile) string {
	var b strings.Builder

	b.WriteString("As a travel expert, recommend destinations for a traveler with:\n")
	fmt.Fprintf(&b, "- Budget: $%.0f USD (total trip cost including flights and 3-7 days)\n", budget)
	if profile.DestinationRegion != "" {
		fmt.Fprintf(&b, "- Focus on destinations in/around: %s\n", profile.DestinationRegion)
	}

	climate := profile.Climate
	if climate == "" {
		climate = "Any"
	}
	fmt.Fprintf(&b, "- Climate preference: %s\n", climate)

	visa := "Any"
	if profile.VisaFree {
		visa = "Visa-free only"
	}
	fmt.Fprintf(&b, "- Visa requirements: %s\n", visa)
	fmt.Fprintf(&b, "- Safety priority: %d/10\n", profile.SafetyImportance)

	costPref := profile.CostPreference
	if costPref == "" {
		costPref = models.CostMedium
	}
	fmt.Fprintf(&b, "- Cost preference: %s cost destinations\n", costPref)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(profile.Interests, ", "))

	b.WriteString(`
Provide 6-8 specific destination recommendations in this JSON format:
{
    "destinations": [
        {
            "city": "City Name",
            "country": "Country",
            "estimated_flight_cost": 500,
            "daily_budget": 80,
            "climate": "Mediterranean",
            "visa_free": true,
            "safety_score": 85,
            "cost_of_living": "Medium",
            "highlights": ["Culture", "Food", "History"],
            "why_recommended": "Brief explanation of why this matches their preferences",
            "best_time": "October-March",
            "insider_tip": "Local secret or money-saving tip"
        }
    ]
}

Focus on realistic, achievable destinations that truly match their preferences and budget.
`)

	return b.String()
}
