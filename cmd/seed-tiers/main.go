package main

import (
	"context"
	"fmt"
	"log"

	"edufund.backend/internal/config"
	"edufund.backend/internal/domain/entities"
	"edufund.backend/internal/infrastructure/models"
	"edufund.backend/internal/infrastructure/repositories"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Seeds the donor tier table. Safe to re-run: rows are upserted by name.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.DonorTier{}); err != nil {
		return fmt.Errorf("failed to migrate donor tiers: %w", err)
	}

	tierRepo := repositories.NewDonorTierRepository(db)
	ctx := context.Background()

	tiers := []*entities.DonorTier{
		{
			Name:        entities.TierBronze,
			Description: "Entry tier for new donors",
			MinDonation: "0.00",
			Benefits:    null.JSONFrom([]byte(`["supporter badge"]`)),
		},
		{
			Name:        entities.TierSilver,
			Description: "Donors with at least 500 in total donations",
			MinDonation: "500.00",
			Benefits:    null.JSONFrom([]byte(`["supporter badge","campaign updates"]`)),
		},
		{
			Name:        entities.TierGold,
			Description: "Donors with at least 2000 in total donations",
			MinDonation: "2000.00",
			Benefits:    null.JSONFrom([]byte(`["supporter badge","campaign updates","thank-you letter"]`)),
		},
	}

	for _, tier := range tiers {
		if err := tierRepo.Upsert(ctx, tier); err != nil {
			return fmt.Errorf("failed to seed tier %s: %w", tier.Name, err)
		}
		log.Printf("seeded tier %s (min %s)", tier.Name, tier.MinDonation)
	}
	return nil
}
