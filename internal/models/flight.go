package models

import "strconv"

// FlightOffer mirrors one offer object from the upstream flight-offers API,
// plus the query date that produced it once merged by the aggregator.
type FlightOffer struct {
	ID                     string      `json:"id,omitempty"`
	Price                  OfferPrice  `json:"price"`
	Itineraries            []Itinerary `json:"itineraries"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes,omitempty"`
	SearchDate             string      `json:"search_date,omitempty"`
}

type OfferPrice struct {
	GrandTotal string `json:"grandTotal"`
	Currency   string `json:"currency"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   SegmentPoint `json:"departure"`
	Arrival     SegmentPoint `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
	Aircraft    Aircraft     `json:"aircraft"`
}

type SegmentPoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type Aircraft struct {
	Code string `json:"code,omitempty"`
}

// FlightOfferSummary is the caller-facing view of a winning offer.
type FlightOfferSummary struct {
	Price           string      `json:"price"`
	PriceFormatted  string      `json:"price_formatted"`
	Currency        string      `json:"currency"`
	DepartureDate   string      `json:"departure_date"`
	DepartureTime   string      `json:"departure_time,omitempty"`
	Duration        string      `json:"duration"`
	DurationDisplay string      `json:"duration_display"`
	Segments        int         `json:"segments"`
	Airline         string      `json:"airline"`
	FullDetails     FlightOffer `json:"full_details"`
}

// AggregationResult is the two-winner summary over a multi-date search.
type AggregationResult struct {
	TotalFlightsFound int                `json:"total_flights_found"`
	SearchPeriod      string             `json:"search_period"`
	CheapestFlight    FlightOfferSummary `json:"cheapest_flight"`
	ShortestFlight    FlightOfferSummary `json:"shortest_flight"`
}

// PriceAmount parses the offer's grand total. The second return is false when
// the upstream value is missing, not a number, or negative.
func (o FlightOffer) PriceAmount() (float64, bool) {
	amount, err := strconv.ParseFloat(o.Price.GrandTotal, 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

// PrimaryAirline returns the first validating airline code, falling back to
// the first segment's carrier when the upstream omits validating codes.
func (o FlightOffer) PrimaryAirline() string {
	if len(o.ValidatingAirlineCodes) > 0 {
		return o.ValidatingAirlineCodes[0]
	}
	if len(o.Itineraries) > 0 && len(o.Itineraries[0].Segments) > 0 {
		return o.Itineraries[0].Segments[0].CarrierCode
	}
	return ""
}
