package repositories

import (
	"context"

	"edufund.backend/internal/domain/entities"
	"edufund.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DonorTierRepository implements tier lookup operations
type DonorTierRepository struct {
	db *gorm.DB
}

// NewDonorTierRepository creates a new donor tier repository
func NewDonorTierRepository(db *gorm.DB) *DonorTierRepository {
	return &DonorTierRepository{db: db}
}

// List returns all tiers ordered by ascending donation threshold.
func (r *DonorTierRepository) List(ctx context.Context) ([]*entities.DonorTier, error) {
	var tierModels []models.DonorTier
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("min_donation ASC").
		Find(&tierModels).Error
	if err != nil {
		return nil, err
	}

	tiers := make([]*entities.DonorTier, 0, len(tierModels))
	for i := range tierModels {
		tiers = append(tiers, donorTierToEntity(&tierModels[i]))
	}
	return tiers, nil
}

// Upsert inserts or refreshes a tier by name. Used only by the seeding CLI.
func (r *DonorTierRepository) Upsert(ctx context.Context, tier *entities.DonorTier) error {
	if tier.ID == uuid.Nil {
		tier.ID = uuid.New()
	}
	m := &models.DonorTier{
		ID:          tier.ID,
		Name:        string(tier.Name),
		Description: tier.Description,
		MinDonation: tier.MinDonation,
		Benefits:    tier.Benefits,
		CreatedAt:   tier.CreatedAt,
		UpdatedAt:   tier.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "min_donation", "benefits", "updated_at"}),
		}).
		Create(m).Error
}

func donorTierToEntity(m *models.DonorTier) *entities.DonorTier {
	return &entities.DonorTier{
		ID:          m.ID,
		Name:        entities.TierName(m.Name),
		Description: m.Description,
		MinDonation: m.MinDonation,
		Benefits:    m.Benefits,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
