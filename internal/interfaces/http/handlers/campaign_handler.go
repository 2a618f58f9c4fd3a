package handlers

import (
	"net/http"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/interfaces/http/middleware"
	"edufund.backend/internal/interfaces/http/response"
	"edufund.backend/internal/usecases"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignHandler handles campaign endpoints
type CampaignHandler struct {
	campaignUsecase *usecases.CampaignUsecase
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignUsecase *usecases.CampaignUsecase) *CampaignHandler {
	return &CampaignHandler{campaignUsecase: campaignUsecase}
}

// Create creates the caller's campaign
// POST /campaigns
func (h *CampaignHandler) Create(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authorization header required"))
		return
	}

	var input entities.CreateCampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	campaign, err := h.campaignUsecase.CreateCampaign(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, campaign)
}

// List lists active campaigns, optionally filtered by student profile
// GET /campaigns?student_id=<uuid>
func (h *CampaignHandler) List(c *gin.Context) {
	var studentID *uuid.UUID
	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.Validation("student_id", "student_id must be a UUID"))
			return
		}
		studentID = &id
	}

	campaigns, err := h.campaignUsecase.ListCampaigns(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"campaigns": campaigns})
}

// Get returns campaign detail for any status
// GET /campaigns/:id
func (h *CampaignHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("campaign not found"))
		return
	}

	campaign, err := h.campaignUsecase.GetCampaign(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, campaign)
}

// Update applies a partial update to the caller's campaign
// PUT /campaigns/:id
func (h *CampaignHandler) Update(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authorization header required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("campaign not found"))
		return
	}

	var input entities.UpdateCampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	campaign, err := h.campaignUsecase.UpdateCampaign(c.Request.Context(), user, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, campaign)
}

// Delete hard-deletes the caller's campaign
// DELETE /campaigns/:id
func (h *CampaignHandler) Delete(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authorization header required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("campaign not found"))
		return
	}

	if err := h.campaignUsecase.DeleteCampaign(c.Request.Context(), user, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "campaign deleted"})
}
