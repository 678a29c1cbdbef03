package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// TokenSource supplies a bearer token for the flight-offers API. Token
// acquisition failure is fatal to a whole search, unlike per-date query
// failures which are absorbed.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// AuthError marks token-acquisition failure so the boundary layer can map it
// to a server-side fault rather than "no flights found".
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return "amadeus auth failed: " + e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// OAuthTokenSource implements the client-credentials flow against the
// Amadeus token endpoint. Tokens are cached under a mutex and refreshed
// shortly before expiry; a refresh margin avoids using a token that expires
// mid-request.
type OAuthTokenSource struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

const tokenExpiryMargin = 30 * time.Second

func NewOAuthTokenSource(baseURL, clientID, clientSecret string, httpClient *http.Client) *OAuthTokenSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &OAuthTokenSource{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		httpClient:   httpClient,
	}
}

func (s *OAuthTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && time.Now().Before(s.tokenExpiry) {
		return s.accessToken, nil
	}

	if err := s.refreshLocked(ctx); err != nil {
		return "", &AuthError{Err: err}
	}
	return s.accessToken, nil
}

// Invalidate drops the cached token so the next call fetches a fresh one.
func (s *OAuthTokenSource) Invalidate() {
	s.mu.Lock()
	s.accessToken = ""
	s.tokenExpiry = time.Time{}
	s.mu.Unlock()
}

func (s *OAuthTokenSource) refreshLocked(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}
	if result.AccessToken == "" {
		return fmt.Errorf("token response contained no access token")
	}

	s.accessToken = result.AccessToken
	s.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenExpiryMargin)
	return nil
}
