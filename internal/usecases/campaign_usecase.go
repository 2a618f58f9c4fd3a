package usecases

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/domain/repositories"
	"edufund.backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
)

// CampaignUsecase handles the campaign lifecycle
type CampaignUsecase struct {
	campaignRepo repositories.CampaignRepository
	studentRepo  repositories.StudentProfileRepository
	profiles     *ProfileUsecase
	uow          repositories.UnitOfWork
	now          func() time.Time
}

// NewCampaignUsecase creates a new campaign usecase
func NewCampaignUsecase(
	campaignRepo repositories.CampaignRepository,
	studentRepo repositories.StudentProfileRepository,
	profiles *ProfileUsecase,
	uow repositories.UnitOfWork,
) *CampaignUsecase {
	return &CampaignUsecase{
		campaignRepo: campaignRepo,
		studentRepo:  studentRepo,
		profiles:     profiles,
		uow:          uow,
		now:          time.Now,
	}
}

// ownsCampaign is the authorization predicate for campaign mutation: the
// caller's identity must chain to the campaign's owning student profile.
func (u *CampaignUsecase) ownsCampaign(ctx context.Context, caller *entities.User, campaign *entities.Campaign) (bool, error) {
	profile, err := u.studentRepo.GetByID(ctx, campaign.StudentProfileID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return profile.UserID == caller.ID, nil
}

// CreateCampaign creates the caller's single campaign. The no-existing
// pre-check and the insert run in one transaction; the unique index on the
// owning profile closes the remaining race window.
func (u *CampaignUsecase) CreateCampaign(ctx context.Context, caller *entities.User, input *entities.CreateCampaignInput) (*entities.CampaignResponse, error) {
	if caller.Role != entities.RoleStudent {
		return nil, domainerrors.Forbidden("only students can create campaigns")
	}

	profile, err := u.profiles.GetOrCreateStudentProfile(ctx, caller)
	if err != nil {
		return nil, err
	}

	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}
	goalAmount, err := validateGoalAmount(input.GoalAmount.Value)
	if err != nil {
		return nil, err
	}
	if !entities.ValidCategory(input.Category) {
		return nil, domainerrors.Validation("category", "unknown campaign category")
	}
	deadline, err := u.validateDeadline(input.Deadline)
	if err != nil {
		return nil, err
	}
	if input.ImageURL != "" && !validAvatarURL(input.ImageURL) {
		return nil, domainerrors.Validation("image_url", "image_url must start with http:// or https://")
	}

	campaign := &entities.Campaign{
		StudentProfileID: profile.ID,
		Title:            input.Title,
		Description:      input.Description,
		GoalAmount:       goalAmount,
		CurrentAmount:    "0.00",
		Category:         entities.CampaignCategory(input.Category),
		Status:           entities.CampaignStatusActive,
		Deadline:         deadline,
	}
	if input.ImageURL != "" {
		campaign.ImageURL = null.StringFrom(input.ImageURL)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		_, err := u.campaignRepo.GetByStudentProfileID(txCtx, profile.ID)
		if err == nil {
			return domainerrors.Conflict("campaign already exists")
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		if err := u.campaignRepo.Create(txCtx, campaign); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return domainerrors.Conflict("campaign already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "campaign created",
		zap.String("campaign_id", campaign.ID.String()),
		zap.String("category", string(campaign.Category)),
	)
	return u.toResponse(campaign), nil
}

// UpdateCampaign applies a partial update after validating every supplied
// field. Validation happens before any mutation: a bad deadline next to a
// valid title leaves both untouched.
func (u *CampaignUsecase) UpdateCampaign(ctx context.Context, caller *entities.User, id uuid.UUID, input *entities.UpdateCampaignInput) (*entities.CampaignResponse, error) {
	campaign, err := u.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("campaign not found")
		}
		return nil, err
	}

	owns, err := u.ownsCampaign(ctx, caller, campaign)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, domainerrors.Forbidden("not the campaign owner")
	}

	// Validate everything first.
	var goalAmount string
	if input.GoalAmount.Set {
		goalAmount, err = validateGoalAmount(input.GoalAmount.Value)
		if err != nil {
			return nil, err
		}
	}
	var deadline time.Time
	if input.Deadline != nil {
		deadline, err = u.validateDeadline(*input.Deadline)
		if err != nil {
			return nil, err
		}
	}
	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
	}
	if input.Category != nil && !entities.ValidCategory(*input.Category) {
		return nil, domainerrors.Validation("category", "unknown campaign category")
	}
	if input.ImageURL.Valid && !validAvatarURL(input.ImageURL.Value) {
		return nil, domainerrors.Validation("image_url", "image_url must start with http:// or https://")
	}

	// Then apply.
	if input.Title != nil {
		campaign.Title = *input.Title
	}
	if input.Description != nil {
		campaign.Description = *input.Description
	}
	if input.GoalAmount.Set {
		campaign.GoalAmount = goalAmount
	}
	if input.Category != nil {
		campaign.Category = entities.CampaignCategory(*input.Category)
	}
	if input.Deadline != nil {
		campaign.Deadline = deadline
	}
	if input.ImageURL.Set {
		campaign.ImageURL = input.ImageURL.NullString()
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.campaignRepo.Update(txCtx, campaign)
	})
	if err != nil {
		return nil, err
	}
	return u.toResponse(campaign), nil
}

// DeleteCampaign hard-deletes the caller's campaign. Unknown ids report not
// found, never success.
func (u *CampaignUsecase) DeleteCampaign(ctx context.Context, caller *entities.User, id uuid.UUID) error {
	campaign, err := u.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("campaign not found")
		}
		return err
	}

	owns, err := u.ownsCampaign(ctx, caller, campaign)
	if err != nil {
		return err
	}
	if !owns {
		return domainerrors.Forbidden("not the campaign owner")
	}

	if err := u.campaignRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("campaign not found")
		}
		return err
	}
	logger.Info(ctx, "campaign deleted", zap.String("campaign_id", id.String()))
	return nil
}

// ListCampaigns lists active campaigns newest first, optionally filtered by
// owning student profile. Descriptions are returned in full; truncation is
// a presentation concern.
func (u *CampaignUsecase) ListCampaigns(ctx context.Context, studentProfileID *uuid.UUID) ([]*entities.CampaignResponse, error) {
	campaigns, err := u.campaignRepo.ListActive(ctx, studentProfileID)
	if err != nil {
		return nil, err
	}

	responses := make([]*entities.CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		responses = append(responses, u.toResponse(c))
	}
	return responses, nil
}

// GetCampaign returns full campaign detail for any status.
func (u *CampaignUsecase) GetCampaign(ctx context.Context, id uuid.UUID) (*entities.CampaignResponse, error) {
	campaign, err := u.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("campaign not found")
		}
		return nil, err
	}
	return u.toResponse(campaign), nil
}

// ListStudentsWithCampaigns returns the public student directory: every
// student profile that currently owns a campaign, with that campaign.
func (u *CampaignUsecase) ListStudentsWithCampaigns(ctx context.Context) ([]*entities.StudentWithCampaign, error) {
	profiles, err := u.studentRepo.ListWithCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.StudentWithCampaign, 0, len(profiles))
	for _, p := range profiles {
		entry := &entities.StudentWithCampaign{Student: p}
		campaign, err := u.campaignRepo.GetByStudentProfileID(ctx, p.ID)
		if err == nil {
			entry.Campaign = u.toResponse(campaign)
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// GetStudentDetail returns a student profile with its campaign, if any.
func (u *CampaignUsecase) GetStudentDetail(ctx context.Context, studentProfileID uuid.UUID) (*entities.StudentWithCampaign, error) {
	profile, err := u.studentRepo.GetByID(ctx, studentProfileID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("student not found")
		}
		return nil, err
	}

	entry := &entities.StudentWithCampaign{Student: profile}
	campaign, err := u.campaignRepo.GetByStudentProfileID(ctx, profile.ID)
	if err == nil {
		entry.Campaign = u.toResponse(campaign)
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	return entry, nil
}

func (u *CampaignUsecase) toResponse(c *entities.Campaign) *entities.CampaignResponse {
	return &entities.CampaignResponse{
		Campaign:           *c,
		ProgressPercentage: progressPercentage(c.GoalAmount, c.CurrentAmount),
		DeadlinePassed:     c.IsDeadlinePassed(u.now()),
	}
}

func validateTitle(title string) error {
	if title == "" || utf8.RuneCountInString(title) > 200 {
		return domainerrors.Validation("title", "title must be 1-200 characters")
	}
	return nil
}

func validateDescription(description string) error {
	if description == "" || utf8.RuneCountInString(description) > 2000 {
		return domainerrors.Validation("description", "description must be 1-2000 characters")
	}
	return nil
}

func validateGoalAmount(raw string) (string, error) {
	amount, err := parseAmount(raw)
	if err != nil {
		return "", domainerrors.Validation("goal_amount", "goal_amount must be a decimal number")
	}
	if amount.Sign() <= 0 {
		return "", domainerrors.Validation("goal_amount", "goal_amount must be greater than zero")
	}
	return amount.FloatString(2), nil
}

func (u *CampaignUsecase) validateDeadline(raw string) (time.Time, error) {
	deadline, err := parseDeadline(raw)
	if err != nil {
		return time.Time{}, domainerrors.Validation("deadline", "deadline must be an ISO-8601 timestamp")
	}
	if !deadline.After(u.now()) {
		return time.Time{}, domainerrors.Validation("deadline", "deadline must be in the future")
	}
	return deadline, nil
}
