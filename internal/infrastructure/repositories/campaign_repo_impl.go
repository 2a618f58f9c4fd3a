package repositories

import (
	"context"
	"errors"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignRepository implements campaign data operations
type CampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create inserts a campaign. The unique index on student_profile_id makes
// concurrent duplicate creation deterministic: the loser observes
// ErrAlreadyExists, never a generic storage error.
func (r *CampaignRepository) Create(ctx context.Context, campaign *entities.Campaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	m := campaignToModel(campaign)

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	campaign.CreatedAt = m.CreatedAt
	campaign.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a campaign by ID regardless of status.
func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Campaign, error) {
	var m models.Campaign
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return campaignToEntity(&m), nil
}

// GetByStudentProfileID gets the campaign owned by a student profile.
func (r *CampaignRepository) GetByStudentProfileID(ctx context.Context, studentProfileID uuid.UUID) (*entities.Campaign, error) {
	var m models.Campaign
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("student_profile_id = ?", studentProfileID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return campaignToEntity(&m), nil
}

// Update persists all mutable campaign fields in one write.
func (r *CampaignRepository) Update(ctx context.Context, campaign *entities.Campaign) error {
	updates := map[string]interface{}{
		"title":          campaign.Title,
		"description":    campaign.Description,
		"goal_amount":    campaign.GoalAmount,
		"current_amount": campaign.CurrentAmount,
		"category":       string(campaign.Category),
		"status":         string(campaign.Status),
		"image_url":      campaign.ImageURL,
		"deadline":       campaign.Deadline,
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Campaign{}).Where("id = ?", campaign.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes a campaign. Deleting an absent row is ErrNotFound,
// not success.
func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Campaign{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListActive lists active campaigns newest first, optionally filtered by
// owning student profile.
func (r *CampaignRepository) ListActive(ctx context.Context, studentProfileID *uuid.UUID) ([]*entities.Campaign, error) {
	var campaignModels []models.Campaign
	query := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ?", string(entities.CampaignStatusActive)).
		Order("created_at DESC")

	if studentProfileID != nil {
		query = query.Where("student_profile_id = ?", *studentProfileID)
	}

	if err := query.Find(&campaignModels).Error; err != nil {
		return nil, err
	}

	campaigns := make([]*entities.Campaign, 0, len(campaignModels))
	for i := range campaignModels {
		campaigns = append(campaigns, campaignToEntity(&campaignModels[i]))
	}
	return campaigns, nil
}

func campaignToModel(c *entities.Campaign) *models.Campaign {
	return &models.Campaign{
		ID:               c.ID,
		StudentProfileID: c.StudentProfileID,
		Title:            c.Title,
		Description:      c.Description,
		GoalAmount:       c.GoalAmount,
		CurrentAmount:    c.CurrentAmount,
		Category:         string(c.Category),
		Status:           string(c.Status),
		ImageURL:         c.ImageURL,
		Deadline:         c.Deadline,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func campaignToEntity(m *models.Campaign) *entities.Campaign {
	return &entities.Campaign{
		ID:               m.ID,
		StudentProfileID: m.StudentProfileID,
		Title:            m.Title,
		Description:      m.Description,
		GoalAmount:       m.GoalAmount,
		CurrentAmount:    m.CurrentAmount,
		Category:         entities.CampaignCategory(m.Category),
		Status:           entities.CampaignStatus(m.Status),
		ImageURL:         m.ImageURL,
		Deadline:         m.Deadline,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
