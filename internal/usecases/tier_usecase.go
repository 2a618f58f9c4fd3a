package usecases

import (
	"context"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/domain/repositories"
)

// TierUsecase exposes donor tier data. Tiers are read-only here; assignment
// to a donor profile is an administrative operation outside this service.
type TierUsecase struct {
	tierRepo repositories.DonorTierRepository
	profiles *ProfileUsecase
}

// NewTierUsecase creates a new tier usecase
func NewTierUsecase(tierRepo repositories.DonorTierRepository, profiles *ProfileUsecase) *TierUsecase {
	return &TierUsecase{tierRepo: tierRepo, profiles: profiles}
}

// ListTiers returns all tiers ordered by ascending donation threshold.
func (u *TierUsecase) ListTiers(ctx context.Context) ([]*entities.DonorTier, error) {
	return u.tierRepo.List(ctx)
}

// GetDonorProfile returns the caller's donor profile with its tier.
func (u *TierUsecase) GetDonorProfile(ctx context.Context, caller *entities.User) (*entities.DonorProfile, error) {
	if caller.Role != entities.RoleDonor {
		return nil, domainerrors.Forbidden("donor role required")
	}
	return u.profiles.GetOrCreateDonorProfile(ctx, caller)
}
