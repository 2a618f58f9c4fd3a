package repositories

import (
	"context"
	"errors"
	"time"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DonorProfileRepository implements donor profile data operations
type DonorProfileRepository struct {
	db *gorm.DB
}

// NewDonorProfileRepository creates a new donor profile repository
func NewDonorProfileRepository(db *gorm.DB) *DonorProfileRepository {
	return &DonorProfileRepository{db: db}
}

// Create creates a donor profile with a zero donation total.
func (r *DonorProfileRepository) Create(ctx context.Context, profile *entities.DonorProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if profile.TotalDonations == "" {
		profile.TotalDonations = "0.00"
	}
	m := &models.DonorProfile{
		ID:             profile.ID,
		UserID:         profile.UserID,
		FullName:       profile.FullName,
		Email:          profile.Email,
		AvatarURL:      profile.AvatarURL,
		TotalDonations: profile.TotalDonations,
		TierID:         profile.TierID,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets a donor profile by owning user ID, tier preloaded.
func (r *DonorProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.DonorProfile, error) {
	var m models.DonorProfile
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Tier").
		Where("user_id = ?", userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return donorProfileToEntity(&m), nil
}

// Update persists the mutable donor profile fields. The donation total and
// tier reference are administrative and not touched here.
func (r *DonorProfileRepository) Update(ctx context.Context, profile *entities.DonorProfile) error {
	updates := map[string]interface{}{
		"full_name":  profile.FullName,
		"avatar_url": profile.AvatarURL,
		"updated_at": time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.DonorProfile{}).Where("id = ?", profile.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func donorProfileToEntity(m *models.DonorProfile) *entities.DonorProfile {
	e := &entities.DonorProfile{
		ID:             m.ID,
		UserID:         m.UserID,
		FullName:       m.FullName,
		Email:          m.Email,
		AvatarURL:      m.AvatarURL,
		TotalDonations: m.TotalDonations,
		TierID:         m.TierID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Tier != nil {
		e.Tier = donorTierToEntity(m.Tier)
	}
	return e
}
