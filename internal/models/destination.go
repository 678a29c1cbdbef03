package models

// DestinationCandidate is one scoreable destination, either from the curated
// table or parsed out of a generative provider's response. MatchScore and
// TotalEstimatedCost are filled in by the ranker.
type DestinationCandidate struct {
	City               string   `json:"city"`
	Country            string   `json:"country"`
	EstimatedFlightCost float64 `json:"estimated_flight_cost"`
	DailyBudget        float64  `json:"daily_budget"`
	Climate            string   `json:"climate"`
	VisaFree           bool     `json:"visa_free"`
	SafetyScore        int      `json:"safety_score"`
	CostOfLiving       string   `json:"cost_of_living,omitempty"`
	Highlights         []string `json:"highlights"`
	WhyRecommended     string   `json:"why_recommended,omitempty"`
	BestTime           string   `json:"best_time,omitempty"`
	InsiderTip         string   `json:"insider_tip,omitempty"`
	MatchScore         int      `json:"match_score"`
	TotalEstimatedCost float64  `json:"total_estimated_cost"`
}

// PreferenceProfile is the traveler input the scorer matches against.
type PreferenceProfile struct {
	Climate           string   `json:"climate,omitempty"`
	VisaFree          bool     `json:"visa_free"`
	SafetyImportance  int      `json:"safety_importance"`
	CostPreference    string   `json:"cost_preference,omitempty"`
	Interests         []string `json:"interests,omitempty"`
	DestinationRegion string   `json:"destination_region,omitempty"`
}

const (
	CostLow    = "Low"
	CostMedium = "Medium"
	CostHigh   = "High"
)

// Climates known to the curated table. Candidates from the generative
// provider may carry other values; scoring only ever compares for equality.
var KnownClimates = []string{"Tropical", "Temperate", "Mediterranean", "Desert", "Arctic", "Mountain"}
