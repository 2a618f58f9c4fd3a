package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"edufund.backend/internal/domain/entities"
	"edufund.backend/internal/interfaces/http/handlers"
	"edufund.backend/internal/usecases"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	identity *entities.ExternalIdentity
	err      error
}

func (s *stubVerifier) VerifyToken(ctx context.Context, token string) (*entities.ExternalIdentity, error) {
	return s.identity, s.err
}

func newAuthRouter(verifier *stubVerifier, userRepo *stubUserRepo) *gin.Engine {
	uc := usecases.NewAuthUsecase(verifier, nil, userRepo, &stubStudentRepo{}, &stubDonorRepo{}, passthroughUOW{})
	h := handlers.NewAuthHandler(uc)

	r := gin.New()
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
	return r
}

func TestAuthHandler_Register_Success(t *testing.T) {
	r := newAuthRouter(&stubVerifier{}, &stubUserRepo{})

	body := `{"first_name": "Jane", "last_name": "Doe", "email": "jane@example.com", "role": "student"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "registration successful")
	assert.Contains(t, w.Body.String(), "jane@example.com")
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	r := newAuthRouter(&stubVerifier{}, &stubUserRepo{})

	// Missing required last_name, malformed email.
	body := `{"first_name": "Jane", "email": "not-an-email"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_TokenFromBody(t *testing.T) {
	verifier := &stubVerifier{identity: &entities.ExternalIdentity{
		Email: "jane@example.com",
		Role:  entities.RoleStudent,
	}}
	existing := &entities.User{ID: uuid.New(), Email: "jane@example.com", Role: entities.RoleStudent}
	userRepo := &stubUserRepo{
		getByEmail: func(ctx context.Context, email string) (*entities.User, error) {
			return existing, nil
		},
	}
	r := newAuthRouter(verifier, userRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"access_token": "tok"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@example.com")
}

func TestAuthHandler_Login_TokenFromHeader(t *testing.T) {
	verifier := &stubVerifier{identity: &entities.ExternalIdentity{
		Email: "jane@example.com",
		Role:  entities.RoleDonor,
	}}
	existing := &entities.User{ID: uuid.New(), Email: "jane@example.com", Role: entities.RoleDonor}
	userRepo := &stubUserRepo{
		getByEmail: func(ctx context.Context, email string) (*entities.User, error) {
			return existing, nil
		},
	}
	r := newAuthRouter(verifier, userRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Login_MissingToken(t *testing.T) {
	r := newAuthRouter(&stubVerifier{}, &stubUserRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "access token required")
}
