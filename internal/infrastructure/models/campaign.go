package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Campaign is the persistence model for campaigns. The unique index on
// StudentProfileID closes the check-then-create race for the
// one-campaign-per-student invariant.
type Campaign struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StudentProfileID uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	StudentProfile   *StudentProfile `gorm:"constraint:OnDelete:CASCADE"`
	Title            string          `gorm:"type:varchar(200);not null"`
	Description      string          `gorm:"type:varchar(2000);not null"`
	GoalAmount       string          `gorm:"type:decimal(12,2);not null"`
	CurrentAmount    string          `gorm:"type:decimal(12,2);not null;default:'0.00'"`
	Category         string          `gorm:"type:varchar(50);not null"`
	Status           string          `gorm:"type:varchar(20);not null;default:'active'"`
	ImageURL         null.String     `gorm:"type:varchar(500)"`
	Deadline         time.Time       `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
