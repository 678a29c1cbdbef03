package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/smartair/travelsearch/internal/amadeus"
	"github.com/smartair/travelsearch/internal/dates"
	"github.com/smartair/travelsearch/internal/duration"
	"github.com/smartair/travelsearch/internal/models"
	"github.com/smartair/travelsearch/pkg/currency"
)

// ErrNoFlightsFound is the only client-visible failure of a search: every
// candidate date was attempted and none produced a usable offer.
var ErrNoFlightsFound = errors.New("no flights found for the specified criteria")

// OfferSource is one upstream query per departure date. Implementations
// return *amadeus.QueryError for absorbable per-date failures; anything
// amadeus.IsFatal aborts the whole search.
type OfferSource interface {
	FetchOffersForDate(ctx context.Context, origin, destination, date string) ([]models.FlightOffer, error)
}

type Config struct {
	// Workers bounds the concurrent per-date queries.
	Workers int
	// TimeoutPerMonth scales the overall search deadline with the window
	// size. The effective timeout is clamped to [30s, 90s].
	TimeoutPerMonth time.Duration
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

type Aggregator struct {
	source OfferSource
	config Config
}

// Result carries the two-winner summary plus per-date outcome counts for the
// response metadata.
type Result struct {
	Aggregation   *models.AggregationResult
	DatesQueried  int
	DatesWithData int
	DatesFailed   int
	FailedDates   []string
}

func New(source OfferSource, cfg Config) *Aggregator {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.TimeoutPerMonth <= 0 {
		cfg.TimeoutPerMonth = 15 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Aggregator{source: source, config: cfg}
}

func (a *Aggregator) timeout(months int) time.Duration {
	t := time.Duration(months) * a.config.TimeoutPerMonth
	if t < 30*time.Second {
		t = 30 * time.Second
	}
	if t > 90*time.Second {
		t = 90 * time.Second
	}
	return t
}

// Search fans out one query per weekly candidate date, merges everything
// that came back, and picks the cheapest and shortest offers of the merge.
func (a *Aggregator) Search(ctx context.Context, origin, destination string, months int) (*Result, error) {
	searchCtx, cancel := context.WithTimeout(ctx, a.timeout(months))
	defer cancel()

	candidates := dates.GenerateWeekly(a.config.Now(), months)

	type dateResult struct {
		idx    int
		offers []models.FlightOffer
		err    error
	}

	jobs := make(chan int)
	resultCh := make(chan dateResult, len(candidates))
	var wg sync.WaitGroup

	workers := a.config.Workers
	if workers > len(candidates) {
		workers = len(candidates)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				offers, err := a.source.FetchOffersForDate(searchCtx, origin, destination, candidates[idx])
				resultCh <- dateResult{idx: idx, offers: offers, err: err}
				if err != nil && amadeus.IsFatal(err) {
					cancel()
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range candidates {
			select {
			case jobs <- i:
			case <-searchCtx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	perDate := make([]dateResult, len(candidates))
	attempted := make([]bool, len(candidates))
	var fatal error
	for dr := range resultCh {
		perDate[dr.idx] = dr
		attempted[dr.idx] = true
		if dr.err != nil && amadeus.IsFatal(dr.err) && fatal == nil {
			fatal = dr.err
		}
	}

	if fatal != nil {
		return nil, fatal
	}

	// Fold successes in date order so ties resolve deterministically to the
	// earliest-encountered offer.
	result := &Result{DatesQueried: len(candidates)}
	merged := make([]models.FlightOffer, 0, len(candidates)*maxUsableOffers)
	for i, dr := range perDate {
		if !attempted[i] {
			result.DatesFailed++
			result.FailedDates = append(result.FailedDates, candidates[i])
			continue
		}
		if dr.err != nil {
			log.Printf("aggregator: date %s failed: %v", candidates[i], dr.err)
			result.DatesFailed++
			result.FailedDates = append(result.FailedDates, candidates[i])
			continue
		}

		usable := 0
		for _, offer := range dr.offers {
			if _, ok := offer.PriceAmount(); !ok || len(offer.Itineraries) == 0 {
				continue
			}
			offer.SearchDate = candidates[i]
			merged = append(merged, offer)
			usable++
		}
		if usable > 0 {
			result.DatesWithData++
		}
	}

	if len(merged) == 0 {
		return nil, ErrNoFlightsFound
	}

	aggregation, err := summarize(merged, months)
	if err != nil {
		return nil, err
	}
	result.Aggregation = aggregation
	return result, nil
}

const maxUsableOffers = 10

// summarize selects the cheapest and shortest offers out of a non-empty
// merge. A malformed duration token is not swallowed: it means the merged
// data is unusable for ranking.
func summarize(merged []models.FlightOffer, months int) (*models.AggregationResult, error) {
	cheapestIdx := 0
	cheapestPrice, _ := merged[0].PriceAmount()

	shortestIdx := 0
	shortestMinutes, err := duration.ParseMinutes(merged[0].Itineraries[0].Duration)
	if err != nil {
		return nil, fmt.Errorf("offer from %s: %w", merged[0].SearchDate, err)
	}

	for i, offer := range merged[1:] {
		idx := i + 1

		price, _ := offer.PriceAmount()
		if price < cheapestPrice {
			cheapestPrice = price
			cheapestIdx = idx
		}

		minutes, err := duration.ParseMinutes(offer.Itineraries[0].Duration)
		if err != nil {
			return nil, fmt.Errorf("offer from %s: %w", offer.SearchDate, err)
		}
		if minutes < shortestMinutes {
			shortestMinutes = minutes
			shortestIdx = idx
		}
	}

	cheapest, err := summarizeOffer(merged[cheapestIdx])
	if err != nil {
		return nil, err
	}
	shortest, err := summarizeOffer(merged[shortestIdx])
	if err != nil {
		return nil, err
	}

	return &models.AggregationResult{
		TotalFlightsFound: len(merged),
		SearchPeriod:      fmt.Sprintf("%d months", months),
		CheapestFlight:    cheapest,
		ShortestFlight:    shortest,
	}, nil
}

func summarizeOffer(offer models.FlightOffer) (models.FlightOfferSummary, error) {
	display, err := duration.FormatDisplay(offer.Itineraries[0].Duration)
	if err != nil {
		return models.FlightOfferSummary{}, err
	}

	price, _ := offer.PriceAmount()

	// Segment timestamps come back in a few shapes; an unparseable one just
	// leaves the field empty.
	departureTime := ""
	if segments := offer.Itineraries[0].Segments; len(segments) > 0 {
		if ts, err := dates.ParseTimestamp(segments[0].Departure.At); err == nil {
			departureTime = ts.Format("2006-01-02 15:04")
		}
	}

	return models.FlightOfferSummary{
		Price:           offer.Price.GrandTotal,
		PriceFormatted:  currency.FormatUSD(price),
		Currency:        offer.Price.Currency,
		DepartureDate:   offer.SearchDate,
		DepartureTime:   departureTime,
		Duration:        offer.Itineraries[0].Duration,
		DurationDisplay: display,
		Segments:        len(offer.Itineraries[0].Segments),
		Airline:         offer.PrimaryAirline(),
		FullDetails:     offer,
	}, nil
}
