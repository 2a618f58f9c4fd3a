package repositories

import (
	"context"

	"edufund.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// StudentProfileRepository defines student profile data operations
type StudentProfileRepository interface {
	Create(ctx context.Context, profile *entities.StudentProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.StudentProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StudentProfile, error)
	Update(ctx context.Context, profile *entities.StudentProfile) error
	ListWithCampaigns(ctx context.Context) ([]*entities.StudentProfile, error)
}

// DonorProfileRepository defines donor profile data operations
type DonorProfileRepository interface {
	Create(ctx context.Context, profile *entities.DonorProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.DonorProfile, error)
	Update(ctx context.Context, profile *entities.DonorProfile) error
}

// DonorTierRepository defines tier lookup operations. Tiers are seeded
// out-of-band and never written by the request path.
type DonorTierRepository interface {
	List(ctx context.Context) ([]*entities.DonorTier, error)
	Upsert(ctx context.Context, tier *entities.DonorTier) error
}
