package recommend

import "github.com/smartair/travelsearch/internal/models"

// Daily budgets by cost-of-living bracket, used for the curated table where
// only the bracket is known.
var bracketDailyBudget = map[string]float64{
	models.CostLow:    50,
	models.CostMedium: 100,
	models.CostHigh:   200,
}

// curatedDestinations is the fixed fallback table served whenever the
// generative provider is unavailable or its output is unusable. Entries span
// budget tiers so even modest budgets get matches.
func curatedDestinations() []models.DestinationCandidate {
	table := []models.DestinationCandidate{
		{City: "Bangkok", Country: "Thailand", EstimatedFlightCost: 650, Climate: "Tropical", VisaFree: true, SafetyScore: 85, CostOfLiving: models.CostLow, Highlights: []string{"Street Food", "Temples", "Nightlife"}},
		{City: "Prague", Country: "Czech Republic", EstimatedFlightCost: 450, Climate: "Temperate", VisaFree: true, SafetyScore: 92, CostOfLiving: models.CostMedium, Highlights: []string{"Architecture", "Beer", "History"}},
		{City: "Lisbon", Country: "Portugal", EstimatedFlightCost: 380, Climate: "Mediterranean", VisaFree: true, SafetyScore: 88, CostOfLiving: models.CostMedium, Highlights: []string{"Coastline", "Culture", "Food"}},
		{City: "Istanbul", Country: "Turkey", EstimatedFlightCost: 420, Climate: "Mediterranean", VisaFree: false, SafetyScore: 75, CostOfLiving: models.CostLow, Highlights: []string{"History", "Culture", "Food"}},
		{City: "Dubai", Country: "UAE", EstimatedFlightCost: 580, Climate: "Desert", VisaFree: true, SafetyScore: 95, CostOfLiving: models.CostHigh, Highlights: []string{"Luxury", "Shopping", "Architecture"}},
		{City: "Tokyo", Country: "Japan", EstimatedFlightCost: 720, Climate: "Temperate", VisaFree: true, SafetyScore: 98, CostOfLiving: models.CostHigh, Highlights: []string{"Technology", "Culture", "Food"}},
		{City: "Reykjavik", Country: "Iceland", EstimatedFlightCost: 350, Climate: "Arctic", VisaFree: true, SafetyScore: 99, CostOfLiving: models.CostHigh, Highlights: []string{"Northern Lights", "Nature", "Adventure"}},
		{City: "Cape Town", Country: "South Africa", EstimatedFlightCost: 850, Climate: "Mediterranean", VisaFree: true, SafetyScore: 70, CostOfLiving: models.CostLow, Highlights: []string{"Nature", "Wine", "Adventure"}},
		{City: "Buenos Aires", Country: "Argentina", EstimatedFlightCost: 750, Climate: "Temperate", VisaFree: true, SafetyScore: 78, CostOfLiving: models.CostLow, Highlights: []string{"Culture", "Food", "Nightlife"}},
		{City: "Bali", Country: "Indonesia", EstimatedFlightCost: 680, Climate: "Tropical", VisaFree: true, SafetyScore: 80, CostOfLiving: models.CostLow, Highlights: []string{"Beaches", "Culture", "Spirituality"}},
		{City: "Amsterdam", Country: "Netherlands", EstimatedFlightCost: 340, Climate: "Temperate", VisaFree: true, SafetyScore: 90, CostOfLiving: models.CostHigh, Highlights: []string{"Canals", "Art", "Culture"}},
		{City: "Singapore", Country: "Singapore", EstimatedFlightCost: 780, Climate: "Tropical", VisaFree: true, SafetyScore: 97, CostOfLiving: models.CostHigh, Highlights: []string{"Food", "Architecture", "Gardens"}},
	}

	for i := range table {
		table[i].DailyBudget = bracketDailyBudget[table[i].CostOfLiving]
	}
	return table
}
