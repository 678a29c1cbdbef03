package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/smartair/travelsearch/internal/models"
	"github.com/smartair/travelsearch/internal/ratelimit"
)

const (
	// Fixed query parameters for every per-date search.
	adultsPerSearch  = 1
	maxOffersPerDate = 10

	// Limiter bucket shared by all flight-offer queries.
	UpstreamName = "amadeus"
)

// QueryError is a per-date upstream failure. The aggregator absorbs these and
// keeps going; a failed date just contributes zero offers.
type QueryError struct {
	Date string
	Err  error
}

func (e *QueryError) Error() string {
	return "flight query for " + e.Date + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Client queries the Amadeus Flight Offers Search API one departure date at
// a time.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *ratelimit.UpstreamLimiter
}

type Config struct {
	BaseURL string
	Tokens  TokenSource
	Limiter *ratelimit.UpstreamLimiter
	Timeout time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     cfg.Tokens,
		limiter:    cfg.Limiter,
	}
}

type offersResponse struct {
	Data []models.FlightOffer `json:"data"`
}

// FetchOffersForDate issues one upstream query for a single departure date.
// The returned slice is never nil on success. Failures come back as
// *QueryError except for auth failure (*AuthError) and context cancellation,
// which callers must treat as fatal to the whole search.
func (c *Client) FetchOffersForDate(ctx context.Context, origin, destination, date string) ([]models.FlightOffer, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, UpstreamName); err != nil {
			return nil, err
		}
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("originLocationCode", origin)
	q.Set("destinationLocationCode", destination)
	q.Set("departureDate", date)
	q.Set("adults", fmt.Sprint(adultsPerSearch))
	q.Set("nonStop", "false")
	q.Set("currencyCode", "USD")
	q.Set("max", fmt.Sprint(maxOffersPerDate))

	reqURL := c.baseURL + "/v2/shopping/flight-offers?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &QueryError{Date: date, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &QueryError{Date: date, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &QueryError{Date: date, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &QueryError{
			Date: date,
			Err:  fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(body), 300)),
		}
	}

	var parsed offersResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &QueryError{Date: date, Err: err}
	}

	if parsed.Data == nil {
		return []models.FlightOffer{}, nil
	}
	return parsed.Data, nil
}

// IsFatal reports whether a fetch error must abort the whole aggregation
// instead of being folded away as a per-date failure.
func IsFatal(err error) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
