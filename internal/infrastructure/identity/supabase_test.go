package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"github.com/stretchr/testify/require"
)

func TestVerifyToken_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/user", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"email": "jane@example.com",
			"user_metadata": {"role": "student", "first_name": "Jane", "last_name": "Doe"}
		}`))
	}))
	defer srv.Close()

	client := NewSupabaseClient(srv.URL, "anon-key")
	identity, err := client.VerifyToken(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", identity.Email)
	require.Equal(t, "Jane", identity.FirstName)
	require.Equal(t, entities.RoleStudent, identity.Role)
}

func TestVerifyToken_RawMetadataFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"email": "jane@example.com",
			"raw_user_meta_data": {"role": "donor"}
		}`))
	}))
	defer srv.Close()

	client := NewSupabaseClient(srv.URL, "anon-key")
	identity, err := client.VerifyToken(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, entities.RoleDonor, identity.Role)
}

func TestVerifyToken_UnknownRoleUnassigned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"email": "jane@example.com", "user_metadata": {"role": "admin"}}`))
	}))
	defer srv.Close()

	client := NewSupabaseClient(srv.URL, "anon-key")
	identity, err := client.VerifyToken(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, entities.RoleUnassigned, identity.Role)
}

func TestVerifyToken_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid JWT"}`))
	}))
	defer srv.Close()

	client := NewSupabaseClient(srv.URL, "anon-key")
	_, err := client.VerifyToken(context.Background(), "bad")
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestVerifyToken_NoEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user_metadata": {"role": "student"}}`))
	}))
	defer srv.Close()

	client := NewSupabaseClient(srv.URL, "anon-key")
	_, err := client.VerifyToken(context.Background(), "tok")
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestVerifyToken_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewSupabaseClient(srv.URL, "anon-key")
	_, err := client.VerifyToken(context.Background(), "tok")
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}
