// Package identity verifies externally issued bearer tokens against the
// Supabase auth userinfo endpoint. Tokens are opaque to this service; the
// provider is the source of truth for email and role metadata.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
)

const requestTimeout = 10 * time.Second

// SupabaseClient calls the Supabase auth API
type SupabaseClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewSupabaseClient creates a new Supabase auth client
func NewSupabaseClient(baseURL, apiKey string) *SupabaseClient {
	return &SupabaseClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type userMetadata struct {
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type userInfoResponse struct {
	Email           string        `json:"email"`
	UserMetadata    *userMetadata `json:"user_metadata"`
	RawUserMetadata *userMetadata `json:"raw_user_meta_data"`
}

// VerifyToken verifies a bearer token via GET /auth/v1/user.
//
// Error mapping: transport failures (including timeouts) are retryable and
// surface as ErrUpstreamUnavailable; any non-200 from the provider, and a
// 200 body without an email, surface as ErrInvalidToken. Callers must not
// create local records on an email-less payload.
func (c *SupabaseClient) VerifyToken(ctx context.Context, token string) (*entities.ExternalIdentity, error) {
	url := fmt.Sprintf("%s/auth/v1/user", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: provider returned %d: %s", domainerrors.ErrInvalidToken, resp.StatusCode, string(body))
	}

	var info userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: malformed userinfo response: %v", domainerrors.ErrInvalidToken, err)
	}

	if info.Email == "" {
		return nil, fmt.Errorf("%w: identity payload has no email", domainerrors.ErrInvalidToken)
	}

	meta := info.UserMetadata
	if meta == nil {
		meta = info.RawUserMetadata
	}
	if meta == nil {
		meta = &userMetadata{}
	}

	return &entities.ExternalIdentity{
		Email:     info.Email,
		FirstName: meta.FirstName,
		LastName:  meta.LastName,
		Role:      entities.ParseRole(meta.Role),
	}, nil
}
