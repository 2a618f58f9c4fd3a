package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DonorTier is the persistence model for the static tier table.
type DonorTier struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	MinDonation string    `gorm:"type:decimal(12,2);not null"`
	Benefits    null.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
