package repositories

import (
	"context"
	"testing"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
)

func TestDonorProfileRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createDonorProfileTable(t, db)
	createDonorTierTable(t, db)
	repo := NewDonorProfileRepository(db)
	ctx := context.Background()

	p := &entities.DonorProfile{
		UserID:   uuid.New(),
		FullName: "John Giver",
		Email:    "john@example.com",
	}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByUserID(ctx, p.UserID)
	require.NoError(t, err)
	require.Equal(t, "John Giver", got.FullName)
	require.Equal(t, "0.00", got.TotalDonations)
	require.Nil(t, got.Tier)
}

func TestDonorProfileRepository_GetPreloadsTier(t *testing.T) {
	db := newTestDB(t)
	createDonorProfileTable(t, db)
	createDonorTierTable(t, db)
	donorRepo := NewDonorProfileRepository(db)
	tierRepo := NewDonorTierRepository(db)
	ctx := context.Background()

	tier := &entities.DonorTier{Name: entities.TierSilver, Description: "mid", MinDonation: "500.00"}
	require.NoError(t, tierRepo.Upsert(ctx, tier))

	p := &entities.DonorProfile{
		UserID:         uuid.New(),
		FullName:       "John Giver",
		Email:          "john@example.com",
		TotalDonations: "750.00",
		TierID:         &tier.ID,
	}
	require.NoError(t, donorRepo.Create(ctx, p))

	got, err := donorRepo.GetByUserID(ctx, p.UserID)
	require.NoError(t, err)
	require.NotNil(t, got.Tier)
	require.Equal(t, entities.TierSilver, got.Tier.Name)
	require.Equal(t, "750.00", got.TotalDonations)
}

func TestDonorProfileRepository_DuplicateUserID(t *testing.T) {
	db := newTestDB(t)
	createDonorProfileTable(t, db)
	repo := NewDonorProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.DonorProfile{UserID: userID, FullName: "John", Email: "john@example.com"}))

	err := repo.Create(ctx, &entities.DonorProfile{UserID: userID, FullName: "Clone", Email: "other@example.com"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestDonorProfileRepository_Update(t *testing.T) {
	db := newTestDB(t)
	createDonorProfileTable(t, db)
	createDonorTierTable(t, db)
	repo := NewDonorProfileRepository(db)
	ctx := context.Background()

	p := &entities.DonorProfile{UserID: uuid.New(), FullName: "John", Email: "john@example.com"}
	require.NoError(t, repo.Create(ctx, p))

	p.FullName = "John Giver"
	p.AvatarURL = null.StringFrom("https://cdn.example.com/j.png")
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByUserID(ctx, p.UserID)
	require.NoError(t, err)
	require.Equal(t, "John Giver", got.FullName)
	require.Equal(t, "https://cdn.example.com/j.png", got.AvatarURL.String)
}

func TestDonorTierRepository_UpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	createDonorTierTable(t, db)
	repo := NewDonorTierRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entities.DonorTier{Name: entities.TierBronze, MinDonation: "0.00"}))
	require.NoError(t, repo.Upsert(ctx, &entities.DonorTier{Name: entities.TierBronze, Description: "entry", MinDonation: "10.00"}))

	tiers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	require.Equal(t, "entry", tiers[0].Description)
}

func TestDonorTierRepository_ListOrdersByThreshold(t *testing.T) {
	db := newTestDB(t)
	createDonorTierTable(t, db)
	repo := NewDonorTierRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entities.DonorTier{Name: entities.TierGold, MinDonation: "2000.00"}))
	require.NoError(t, repo.Upsert(ctx, &entities.DonorTier{Name: entities.TierBronze, MinDonation: "0.00"}))
	require.NoError(t, repo.Upsert(ctx, &entities.DonorTier{Name: entities.TierSilver, MinDonation: "500.00"}))

	tiers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 3)
	require.Equal(t, entities.TierBronze, tiers[0].Name)
	require.Equal(t, entities.TierSilver, tiers[1].Name)
	require.Equal(t, entities.TierGold, tiers[2].Name)
}
