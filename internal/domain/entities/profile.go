package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// StudentProfile is owned 1:1 by a User with the student role.
// GPA is kept as a decimal string so serialization never loses precision.
type StudentProfile struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"user_id"`
	FullName     string      `json:"full_name"`
	Email        string      `json:"email"`
	AvatarURL    null.String `json:"avatar_url"`
	University   null.String `json:"university"`
	Major        null.String `json:"major"`
	AcademicYear null.String `json:"academic_year"`
	GPA          null.String `json:"gpa"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// DonorProfile is owned 1:1 by a User with the donor role. TotalDonations
// has no write path in this core; a donation ledger component will own it.
type DonorProfile struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	FullName       string      `json:"full_name"`
	Email          string      `json:"email"`
	AvatarURL      null.String `json:"avatar_url"`
	TotalDonations string      `json:"total_donations"`
	TierID         *uuid.UUID  `json:"tier_id,omitempty"`
	Tier           *DonorTier  `json:"tier,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// CreateProfileInput represents input for the explicit profile creation
// endpoint. Email always comes from the resolved identity, never the body.
type CreateProfileInput struct {
	FullName string `json:"full_name" binding:"required,max=255"`
}

// UpdateProfileInput is a tri-state partial update: an unset patch means
// the field was absent from the request, a set-but-null patch clears the
// stored value, and a valid value replaces it. FullName is not nullable,
// so a plain pointer suffices there.
type UpdateProfileInput struct {
	FullName     *string     `json:"full_name"`
	AvatarURL    StringPatch `json:"avatar_url"`
	University   StringPatch `json:"university"`
	Major        StringPatch `json:"major"`
	AcademicYear StringPatch `json:"academic_year"`
	GPA          Decimal     `json:"gpa"`
}
