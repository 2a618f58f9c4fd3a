package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TierName represents donor tier names
type TierName string

const (
	TierBronze TierName = "bronze"
	TierSilver TierName = "silver"
	TierGold   TierName = "gold"
)

// DonorTier is a static classification bracket. Rows are seeded out-of-band
// (cmd/seed-tiers) and only read by this service; donor profiles reference a
// tier, assignment itself is administrative.
type DonorTier struct {
	ID          uuid.UUID `json:"id"`
	Name        TierName  `json:"name"`
	Description string    `json:"description"`
	MinDonation string    `json:"min_donation"`
	Benefits    null.JSON `json:"benefits"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
