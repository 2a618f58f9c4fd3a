// Package storage handles file uploads to Supabase Storage.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domainerrors "edufund.backend/internal/domain/errors"
)

const requestTimeout = 10 * time.Second

// SupabaseStorage is a Supabase Storage client. The anon key authorizes
// public-bucket uploads; the service key, when configured, authorizes
// signed-URL creation for private objects.
type SupabaseStorage struct {
	baseURL    string
	apiKey     string
	serviceKey string
	bucketName string
	httpClient *http.Client
}

// NewSupabaseStorage creates a new Supabase Storage client
func NewSupabaseStorage(baseURL, apiKey, serviceKey, bucketName string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL:    baseURL,
		apiKey:     apiKey,
		serviceKey: serviceKey,
		bucketName: bucketName,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// UploadFile uploads an object and returns its storage path.
func (s *SupabaseStorage) UploadFile(ctx context.Context, path string, file io.Reader, contentType string) (string, error) {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucketName, path)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(fileBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	return path, nil
}

// GetPublicURL returns the public URL for an object.
func (s *SupabaseStorage) GetPublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucketName, path)
}

type signRequest struct {
	ExpiresIn int `json:"expiresIn"`
}

type signResponse struct {
	SignedURL string `json:"signedURL"`
}

// CreateSignedURL requests a short-lived access URL for a private object.
// Fails with ErrNotConfigured when no service key is set.
func (s *SupabaseStorage) CreateSignedURL(ctx context.Context, path string, ttlSeconds int) (string, error) {
	if s.serviceKey == "" {
		return "", domainerrors.ErrNotConfigured
	}

	url := fmt.Sprintf("%s/storage/v1/object/sign/%s/%s", s.baseURL, s.bucketName, path)

	payload, err := json.Marshal(signRequest{ExpiresIn: ttlSeconds})
	if err != nil {
		return "", fmt.Errorf("failed to encode sign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("sign failed with status %d: %s", resp.StatusCode, string(body))
	}

	var signed signResponse
	if err := json.NewDecoder(resp.Body).Decode(&signed); err != nil {
		return "", fmt.Errorf("malformed sign response: %w", err)
	}

	// The API returns a path relative to /storage/v1.
	return s.baseURL + "/storage/v1" + ensureLeadingSlash(signed.SignedURL), nil
}

func ensureLeadingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
