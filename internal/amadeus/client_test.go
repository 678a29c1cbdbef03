package amadeus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(ctx context.Context) (string, error) {
	return s.token, s.err
}

func TestFetchOffersForDate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected auth header: %s", got)
		}

		q := r.URL.Query()
		if q.Get("originLocationCode") != "LHR" || q.Get("destinationLocationCode") != "JFK" {
			t.Errorf("unexpected route params: %v", q)
		}
		if q.Get("departureDate") != "2025-03-01" {
			t.Errorf("unexpected departure date: %s", q.Get("departureDate"))
		}
		if q.Get("adults") != "1" || q.Get("nonStop") != "false" || q.Get("currencyCode") != "USD" || q.Get("max") != "10" {
			t.Errorf("fixed query params wrong: %v", q)
		}

		fmt.Fprint(w, `{"data": [
			{"id": "1",
			 "price": {"grandTotal": "412.50", "currency": "USD"},
			 "itineraries": [{"duration": "PT7H15M", "segments": [
				{"departure": {"iataCode": "LHR", "at": "2025-03-01T09:00:00"},
				 "arrival": {"iataCode": "JFK", "at": "2025-03-01T12:15:00"},
				 "carrierCode": "BA", "number": "117", "aircraft": {"code": "77W"}}]}],
			 "validatingAirlineCodes": ["BA"]}
		]}`)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Tokens: staticTokens{token: "test-token"}})

	offers, err := client.FetchOffersForDate(context.Background(), "LHR", "JFK", "2025-03-01")
	if err != nil {
		t.Fatalf("FetchOffersForDate returned error: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(offers))
	}

	offer := offers[0]
	if offer.Price.GrandTotal != "412.50" {
		t.Fatalf("unexpected price: %s", offer.Price.GrandTotal)
	}
	if offer.Itineraries[0].Duration != "PT7H15M" {
		t.Fatalf("unexpected duration: %s", offer.Itineraries[0].Duration)
	}
	if offer.Itineraries[0].Segments[0].Aircraft.Code != "77W" {
		t.Fatalf("unexpected aircraft: %+v", offer.Itineraries[0].Segments[0])
	}
	if offer.PrimaryAirline() != "BA" {
		t.Fatalf("unexpected airline: %s", offer.PrimaryAirline())
	}
}

func TestFetchOffersForDateUpstreamErrorIsQueryError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors": [{"title": "rate limited"}]}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Tokens: staticTokens{token: "t"}})

	_, err := client.FetchOffersForDate(context.Background(), "LHR", "JFK", "2025-03-01")

	var qerr *QueryError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected QueryError, got %v", err)
	}
	if qerr.Date != "2025-03-01" {
		t.Fatalf("QueryError should carry the date, got %s", qerr.Date)
	}
	if IsFatal(err) {
		t.Fatal("a per-date upstream error must not be fatal")
	}
}

func TestFetchOffersForDateDecodeErrorIsQueryError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `this is not json`)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Tokens: staticTokens{token: "t"}})

	_, err := client.FetchOffersForDate(context.Background(), "LHR", "JFK", "2025-03-01")

	var qerr *QueryError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected QueryError, got %v", err)
	}
}

func TestFetchOffersForDateEmptyDataIsNotNil(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Tokens: staticTokens{token: "t"}})

	offers, err := client.FetchOffersForDate(context.Background(), "LHR", "JFK", "2025-03-01")
	if err != nil {
		t.Fatalf("FetchOffersForDate returned error: %v", err)
	}
	if offers == nil {
		t.Fatal("offer list must never be nil on success")
	}
	if len(offers) != 0 {
		t.Fatalf("expected no offers, got %d", len(offers))
	}
}

func TestFetchOffersForDateAuthFailureIsFatal(t *testing.T) {
	t.Parallel()

	client := NewClient(Config{
		BaseURL: "http://127.0.0.1:0",
		Tokens:  staticTokens{err: &AuthError{Err: fmt.Errorf("bad credentials")}},
	})

	_, err := client.FetchOffersForDate(context.Background(), "LHR", "JFK", "2025-03-01")

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if !IsFatal(err) {
		t.Fatal("auth failure must be fatal")
	}
}
