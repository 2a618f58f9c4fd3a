package handlers

import (
	"net/http"

	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/interfaces/http/middleware"
	"edufund.backend/internal/interfaces/http/response"
	"edufund.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

// DonorHandler handles donor endpoints
type DonorHandler struct {
	tierUsecase *usecases.TierUsecase
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(tierUsecase *usecases.TierUsecase) *DonorHandler {
	return &DonorHandler{tierUsecase: tierUsecase}
}

// ListTiers lists donor tiers by ascending threshold
// GET /donor/tiers
func (h *DonorHandler) ListTiers(c *gin.Context) {
	tiers, err := h.tierUsecase.ListTiers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tiers": tiers})
}

// GetProfile returns the caller's donor profile with tier detail
// GET /donor/profile
func (h *DonorHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authorization header required"))
		return
	}

	profile, err := h.tierUsecase.GetDonorProfile(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}
