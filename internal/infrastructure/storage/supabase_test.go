package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "edufund.backend/internal/domain/errors"
	"github.com/stretchr/testify/require"
)

func TestUploadFile(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "anon-key", "", "avatars")
	path, err := s.UploadFile(context.Background(), "avatars/u1/a.png", strings.NewReader("fakepng"), "image/png")
	require.NoError(t, err)
	require.Equal(t, "avatars/u1/a.png", path)
	require.Equal(t, "/storage/v1/object/avatars/avatars/u1/a.png", gotPath)
	require.Equal(t, "Bearer anon-key", gotAuth)
	require.Equal(t, "image/png", gotType)
	require.Equal(t, "fakepng", string(gotBody))
}

func TestUploadFile_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "bucket not found"}`))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "anon-key", "", "avatars")
	_, err := s.UploadFile(context.Background(), "avatars/u1/a.png", strings.NewReader("x"), "image/png")
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}

func TestGetPublicURL(t *testing.T) {
	s := NewSupabaseStorage("https://proj.supabase.co", "anon-key", "", "avatars")
	require.Equal(t,
		"https://proj.supabase.co/storage/v1/object/public/avatars/avatars/u1/a.png",
		s.GetPublicURL("avatars/u1/a.png"),
	)
}

func TestCreateSignedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/storage/v1/object/sign/avatars/avatars/u1/a.png", r.URL.Path)
		require.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{"expiresIn": 3600}`, string(body))
		w.Write([]byte(`{"signedURL": "/object/sign/avatars/avatars/u1/a.png?token=abc"}`))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "anon-key", "service-key", "avatars")
	url, err := s.CreateSignedURL(context.Background(), "avatars/u1/a.png", 3600)
	require.NoError(t, err)
	require.Equal(t, srv.URL+"/storage/v1/object/sign/avatars/avatars/u1/a.png?token=abc", url)
}

func TestCreateSignedURL_NoServiceKey(t *testing.T) {
	s := NewSupabaseStorage("https://proj.supabase.co", "anon-key", "", "avatars")
	_, err := s.CreateSignedURL(context.Background(), "avatars/u1/a.png", 3600)
	require.ErrorIs(t, err, domainerrors.ErrNotConfigured)
}
