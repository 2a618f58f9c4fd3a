package usecases

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// MaxAvatarSize caps uploads at 5 MiB.
	MaxAvatarSize = 5 << 20

	defaultSignedURLTTL = 3600
	maxSignedURLTTL     = 86400
)

var allowedAvatarTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ObjectStorage is the external object store boundary.
type ObjectStorage interface {
	UploadFile(ctx context.Context, path string, file io.Reader, contentType string) (string, error)
	GetPublicURL(path string) string
	CreateSignedURL(ctx context.Context, path string, ttlSeconds int) (string, error)
}

// AvatarUsecase handles avatar uploads and signed asset URLs
type AvatarUsecase struct {
	storage  ObjectStorage
	profiles *ProfileUsecase
}

// NewAvatarUsecase creates a new avatar usecase
func NewAvatarUsecase(storage ObjectStorage, profiles *ProfileUsecase) *AvatarUsecase {
	return &AvatarUsecase{storage: storage, profiles: profiles}
}

// UploadAvatar validates, stores and records an avatar image for the
// caller's profile, returning the public URL.
func (u *AvatarUsecase) UploadAvatar(ctx context.Context, caller *entities.User, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxAvatarSize {
		return "", domainerrors.Validation("file", "avatar must be 5MB or smaller")
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedAvatarTypes[contentType]
	if !ok {
		return "", domainerrors.Validation("file", "avatar must be a jpeg, png, gif or webp image")
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	path := fmt.Sprintf("avatars/%s/%s%s", caller.ID, uuid.New(), ext)

	if _, err := u.storage.UploadFile(ctx, path, io.LimitReader(file, MaxAvatarSize), contentType); err != nil {
		logger.Error(ctx, "avatar upload failed", zap.Error(err))
		return "", err
	}

	url := u.storage.GetPublicURL(path)
	if err := u.profiles.SetAvatarURL(ctx, caller, url); err != nil {
		return "", err
	}
	return url, nil
}

// SignURL requests a short-lived access URL for a private object.
func (u *AvatarUsecase) SignURL(ctx context.Context, path string, ttlSeconds int) (string, error) {
	if path == "" {
		return "", domainerrors.Validation("path", "path is required")
	}
	if strings.Contains(path, "..") {
		return "", domainerrors.Validation("path", "invalid path")
	}
	if ttlSeconds <= 0 {
		ttlSeconds = defaultSignedURLTTL
	}
	if ttlSeconds > maxSignedURLTTL {
		ttlSeconds = maxSignedURLTTL
	}

	signed, err := u.storage.CreateSignedURL(ctx, path, ttlSeconds)
	if err != nil {
		return "", err
	}
	return signed, nil
}
