package handlers

import (
	"net/http"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/interfaces/http/middleware"
	"edufund.backend/internal/interfaces/http/response"
	"edufund.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileUsecase *usecases.ProfileUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase *usecases.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// GetMyProfile returns the caller's role profile, creating it on first access
// GET /profile/me
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authorization header required"))
		return
	}

	profile, err := h.profileUsecase.GetMyProfile(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateMyProfile applies a partial update to the caller's profile
// PUT /profile/me
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authorization header required"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.UpdateMyProfile(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// CreateProfile explicitly creates a student profile
// POST /profile
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authorization header required"))
		return
	}

	var input entities.CreateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.CreateStudentProfile(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, profile)
}
