package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CampaignStatus represents campaign lifecycle states. Active is the only
// non-terminal state; nothing transitions back to it.
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// CampaignCategory represents campaign categories
type CampaignCategory string

const (
	CategoryEducation      CampaignCategory = "education"
	CategoryTuition        CampaignCategory = "tuition"
	CategoryScholarship    CampaignCategory = "scholarship"
	CategoryStudentLoans   CampaignCategory = "student_loans"
	CategoryLivingExpenses CampaignCategory = "living_expenses"
	CategoryOther          CampaignCategory = "other"
)

// ValidCategory reports whether s is a known campaign category.
func ValidCategory(s string) bool {
	switch CampaignCategory(s) {
	case CategoryEducation, CategoryTuition, CategoryScholarship,
		CategoryStudentLoans, CategoryLivingExpenses, CategoryOther:
		return true
	}
	return false
}

// Campaign is a fundraising request owned by exactly one student profile.
// A unique index on StudentProfileID backs the one-campaign-per-student
// invariant at the storage layer. Amounts are decimal strings.
type Campaign struct {
	ID               uuid.UUID        `json:"id"`
	StudentProfileID uuid.UUID        `json:"student_profile_id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	GoalAmount       string           `json:"goal_amount"`
	CurrentAmount    string           `json:"current_amount"`
	Category         CampaignCategory `json:"category"`
	Status           CampaignStatus   `json:"status"`
	ImageURL         null.String      `json:"image_url"`
	Deadline         time.Time        `json:"deadline"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// IsDeadlinePassed reports whether the deadline is in the past.
func (c *Campaign) IsDeadlinePassed(now time.Time) bool {
	return now.After(c.Deadline)
}

// CreateCampaignInput represents input for campaign creation. Amounts and
// the deadline arrive as strings and are validated by the usecase.
type CreateCampaignInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	GoalAmount  Decimal `json:"goal_amount" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Deadline    string  `json:"deadline" binding:"required"`
	ImageURL    string  `json:"image_url"`
}

// UpdateCampaignInput represents a partial campaign update. Absent fields
// are left untouched; every supplied field is validated before anything is
// applied. ImageURL is the only nullable field and takes a tri-state patch
// so an explicit null clears it.
type UpdateCampaignInput struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	GoalAmount  Decimal     `json:"goal_amount"`
	Category    *string     `json:"category"`
	Deadline    *string     `json:"deadline"`
	ImageURL    StringPatch `json:"image_url"`
}

// CampaignResponse is the campaign detail shape with derived fields.
type CampaignResponse struct {
	Campaign
	ProgressPercentage float64 `json:"progress_percentage"`
	DeadlinePassed     bool    `json:"is_deadline_passed"`
}

// StudentWithCampaign is the public student-directory shape.
type StudentWithCampaign struct {
	Student  *StudentProfile   `json:"student"`
	Campaign *CampaignResponse `json:"campaign"`
}
