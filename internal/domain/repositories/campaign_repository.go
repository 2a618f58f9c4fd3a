package repositories

import (
	"context"

	"edufund.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// CampaignRepository defines campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *entities.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Campaign, error)
	GetByStudentProfileID(ctx context.Context, studentProfileID uuid.UUID) (*entities.Campaign, error)
	Update(ctx context.Context, campaign *entities.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context, studentProfileID *uuid.UUID) ([]*entities.Campaign, error)
}
