package amadeus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func tokenEndpoint(t *testing.T, requests *atomic.Int64, expiresIn int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/security/oauth2/token" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostForm.Get("grant_type") != "client_credentials" {
			t.Errorf("unexpected grant type: %s", r.PostForm.Get("grant_type"))
		}

		n := requests.Add(1)
		fmt.Fprintf(w, `{"access_token": "token-%d", "expires_in": %d}`, n, expiresIn)
	}))
}

func TestTokenIsCachedUntilExpiry(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := tokenEndpoint(t, &requests, 1800)
	defer server.Close()

	source := NewOAuthTokenSource(server.URL, "id", "secret", nil)

	first, err := source.Token(context.Background())
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	second, err := source.Token(context.Background())
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}

	if first != "token-1" || second != "token-1" {
		t.Fatalf("expected the cached token both times, got %q then %q", first, second)
	}
	if got := requests.Load(); got != 1 {
		t.Fatalf("expected a single token request, got %d", got)
	}
}

func TestTokenRefreshesWhenExpired(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	// expires_in below the refresh margin, so the cached token is already
	// considered expired on the next call.
	server := tokenEndpoint(t, &requests, 10)
	defer server.Close()

	source := NewOAuthTokenSource(server.URL, "id", "secret", nil)

	if _, err := source.Token(context.Background()); err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	second, err := source.Token(context.Background())
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}

	if second != "token-2" {
		t.Fatalf("expected a refreshed token, got %q", second)
	}
}

func TestTokenInvalidateForcesRefresh(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := tokenEndpoint(t, &requests, 1800)
	defer server.Close()

	source := NewOAuthTokenSource(server.URL, "id", "secret", nil)

	if _, err := source.Token(context.Background()); err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	source.Invalidate()

	second, err := source.Token(context.Background())
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	if second != "token-2" {
		t.Fatalf("expected a fresh token after Invalidate, got %q", second)
	}
}

func TestTokenFailureIsAuthError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid_client"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	source := NewOAuthTokenSource(server.URL, "id", "wrong", nil)

	_, err := source.Token(context.Background())

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}
