package handlers

import (
	"net/http"
	"strconv"

	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/interfaces/http/middleware"
	"edufund.backend/internal/interfaces/http/response"
	"edufund.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

// AvatarHandler handles avatar upload and signed asset URLs
type AvatarHandler struct {
	avatarUsecase *usecases.AvatarUsecase
}

// NewAvatarHandler creates a new avatar handler
func NewAvatarHandler(avatarUsecase *usecases.AvatarUsecase) *AvatarHandler {
	return &AvatarHandler{avatarUsecase: avatarUsecase}
}

// Upload stores an avatar image and records its URL on the caller's profile
// POST /profile/avatar (multipart field "file")
func (h *AvatarHandler) Upload(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authorization header required"))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.Validation("file", "multipart file field required"))
		return
	}

	url, err := h.avatarUsecase.UploadAvatar(c.Request.Context(), user, header)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar_url": url})
}

// SignedURL returns a short-lived access URL for a private object
// GET /avatar/signed-url?path=<object>&expires_in=<seconds>
func (h *AvatarHandler) SignedURL(c *gin.Context) {
	path := c.Query("path")

	ttl := 0
	if raw := c.Query("expires_in"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, domainerrors.Validation("expires_in", "expires_in must be an integer"))
			return
		}
		ttl = parsed
	}

	url, err := h.avatarUsecase.SignURL(c.Request.Context(), path, ttl)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"signed_url": url})
}
