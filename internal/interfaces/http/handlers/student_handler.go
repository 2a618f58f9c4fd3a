package handlers

import (
	"net/http"

	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/interfaces/http/response"
	"edufund.backend/internal/usecases"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StudentHandler handles the public student directory
type StudentHandler struct {
	campaignUsecase *usecases.CampaignUsecase
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(campaignUsecase *usecases.CampaignUsecase) *StudentHandler {
	return &StudentHandler{campaignUsecase: campaignUsecase}
}

// ListStudents lists students that currently have a campaign
// GET /students
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.campaignUsecase.ListStudentsWithCampaigns(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// GetStudent returns student detail including campaign
// GET /students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("student not found"))
		return
	}

	student, err := h.campaignUsecase.GetStudentDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, student)
}
