package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// StudentProfile is the persistence model for student profiles. The unique
// index on UserID enforces the 1:1 ownership under concurrent first access.
type StudentProfile struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null"`
	User         *User       `gorm:"constraint:OnDelete:CASCADE"`
	FullName     string      `gorm:"type:varchar(255);not null"`
	Email        string      `gorm:"type:varchar(255);not null"`
	AvatarURL    null.String `gorm:"type:varchar(500)"`
	University   null.String `gorm:"type:varchar(255)"`
	Major        null.String `gorm:"type:varchar(255)"`
	AcademicYear null.String `gorm:"type:varchar(50)"`
	GPA          null.String `gorm:"type:decimal(3,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DonorProfile is the persistence model for donor profiles. The tier
// reference is a non-owning lookup: deleting a tier nulls it.
type DonorProfile struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null"`
	User           *User       `gorm:"constraint:OnDelete:CASCADE"`
	FullName       string      `gorm:"type:varchar(255);not null"`
	Email          string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	AvatarURL      null.String `gorm:"type:varchar(500)"`
	TotalDonations string      `gorm:"type:decimal(12,2);not null;default:'0.00'"`
	TierID         *uuid.UUID  `gorm:"type:uuid"`
	Tier           *DonorTier  `gorm:"constraint:OnDelete:SET NULL"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
