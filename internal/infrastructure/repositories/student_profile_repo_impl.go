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

// StudentProfileRepository implements student profile data operations
type StudentProfileRepository struct {
	db *gorm.DB
}

// NewStudentProfileRepository creates a new student profile repository
func NewStudentProfileRepository(db *gorm.DB) *StudentProfileRepository {
	return &StudentProfileRepository{db: db}
}

// Create creates a student profile. Duplicate user_id surfaces as
// ErrAlreadyExists so the first-access race resolves to a fetch.
func (r *StudentProfileRepository) Create(ctx context.Context, profile *entities.StudentProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	m := studentProfileToModel(profile)

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

// GetByID gets a student profile by ID
func (r *StudentProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.StudentProfile, error) {
	var m models.StudentProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return studentProfileToEntity(&m), nil
}

// GetByUserID gets a student profile by owning user ID
func (r *StudentProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StudentProfile, error) {
	var m models.StudentProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return studentProfileToEntity(&m), nil
}

// Update persists the full profile row. Callers validate first; the write
// itself is all-or-nothing.
func (r *StudentProfileRepository) Update(ctx context.Context, profile *entities.StudentProfile) error {
	updates := map[string]interface{}{
		"full_name":     profile.FullName,
		"avatar_url":    profile.AvatarURL,
		"university":    profile.University,
		"major":         profile.Major,
		"academic_year": profile.AcademicYear,
		"gpa":           profile.GPA,
		"updated_at":    time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.StudentProfile{}).Where("id = ?", profile.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListWithCampaigns lists student profiles that currently own a campaign,
// newest campaign first.
func (r *StudentProfileRepository) ListWithCampaigns(ctx context.Context) ([]*entities.StudentProfile, error) {
	var profileModels []models.StudentProfile
	err := GetDB(ctx, r.db).WithContext(ctx).
		Joins("JOIN campaigns ON campaigns.student_profile_id = student_profiles.id").
		Order("campaigns.created_at DESC").
		Find(&profileModels).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]*entities.StudentProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, studentProfileToEntity(&profileModels[i]))
	}
	return profiles, nil
}

func studentProfileToModel(p *entities.StudentProfile) *models.StudentProfile {
	return &models.StudentProfile{
		ID:           p.ID,
		UserID:       p.UserID,
		FullName:     p.FullName,
		Email:        p.Email,
		AvatarURL:    p.AvatarURL,
		University:   p.University,
		Major:        p.Major,
		AcademicYear: p.AcademicYear,
		GPA:          p.GPA,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func studentProfileToEntity(m *models.StudentProfile) *entities.StudentProfile {
	return &entities.StudentProfile{
		ID:           m.ID,
		UserID:       m.UserID,
		FullName:     m.FullName,
		Email:        m.Email,
		AvatarURL:    m.AvatarURL,
		University:   m.University,
		Major:        m.Major,
		AcademicYear: m.AcademicYear,
		GPA:          m.GPA,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
