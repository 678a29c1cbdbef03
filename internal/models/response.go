package models

type SearchMetadata struct {
	SearchID      string   `json:"search_id"`
	DatesQueried  int      `json:"dates_queried"`
	DatesWithData int      `json:"dates_with_data"`
	DatesFailed   int      `json:"dates_failed"`
	FailedDates   []string `json:"failed_dates,omitempty"`
	SearchTimeMs  int64    `json:"search_time_ms"`
	CacheHit      bool     `json:"cache_hit"`
}

type SearchResponse struct {
	SearchCriteria SearchRequest      `json:"search_criteria"`
	Metadata       SearchMetadata     `json:"metadata"`
	Result         *AggregationResult `json:"result"`
}

// Recommendation provenance values. The boundary layer surfaces which source
// actually served the list so users are not shown curated data as AI output.
const (
	SourceAI      = "ai"
	SourceCurated = "curated"
)

type RecommendResponse struct {
	SearchID     string                 `json:"search_id"`
	Budget       float64                `json:"budget"`
	Source       string                 `json:"source"`
	Destinations []DestinationCandidate `json:"destinations"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
