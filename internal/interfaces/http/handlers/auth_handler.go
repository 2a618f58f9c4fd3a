package handlers

import (
	"net/http"
	"strings"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/interfaces/http/middleware"
	"edufund.backend/internal/interfaces/http/response"
	"edufund.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles auth endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles legacy account creation
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "registration successful",
		"user":    user,
	})
}

// Login exchanges an external access token for the synced local identity
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	// Body is optional; the token may arrive in the Authorization header.
	_ = c.ShouldBindJSON(&input)

	token := input.AccessToken
	if token == "" {
		token = strings.TrimPrefix(c.GetHeader(middleware.AuthorizationHeader), middleware.BearerPrefix)
	}
	if token == "" {
		response.Error(c, domainerrors.Unauthorized("access token required"))
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Verify returns the identity already resolved by the auth middleware
// GET /auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authorization header required"))
		return
	}
	response.Success(c, http.StatusOK, &entities.AuthResponse{User: user})
}
