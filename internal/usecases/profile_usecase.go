package usecases

import (
	"context"
	"errors"
	"unicode/utf8"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/domain/repositories"
	"github.com/volatiletech/null/v8"
)

// ProfileResponse wraps either role profile for the /profile/me endpoints.
type ProfileResponse struct {
	Role    entities.Role            `json:"role"`
	Student *entities.StudentProfile `json:"student_profile,omitempty"`
	Donor   *entities.DonorProfile   `json:"donor_profile,omitempty"`
}

// ProfileUsecase handles role-bound profile access
type ProfileUsecase struct {
	studentRepo repositories.StudentProfileRepository
	donorRepo   repositories.DonorProfileRepository
	uow         repositories.UnitOfWork
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	studentRepo repositories.StudentProfileRepository,
	donorRepo repositories.DonorProfileRepository,
	uow repositories.UnitOfWork,
) *ProfileUsecase {
	return &ProfileUsecase{
		studentRepo: studentRepo,
		donorRepo:   donorRepo,
		uow:         uow,
	}
}

// GetOrCreateStudentProfile returns the caller's student profile, creating
// it with defaults on first access. Concurrent first accesses race on the
// unique user_id index; the loser fetches the winner's row.
func (u *ProfileUsecase) GetOrCreateStudentProfile(ctx context.Context, user *entities.User) (*entities.StudentProfile, error) {
	profile, err := u.studentRepo.GetByUserID(ctx, user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	profile = &entities.StudentProfile{
		UserID:   user.ID,
		FullName: user.FullName(),
		Email:    user.Email,
	}
	if err := u.studentRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return u.studentRepo.GetByUserID(ctx, user.ID)
		}
		return nil, err
	}
	return profile, nil
}

// GetOrCreateDonorProfile mirrors GetOrCreateStudentProfile for donors.
func (u *ProfileUsecase) GetOrCreateDonorProfile(ctx context.Context, user *entities.User) (*entities.DonorProfile, error) {
	profile, err := u.donorRepo.GetByUserID(ctx, user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	profile = &entities.DonorProfile{
		UserID:   user.ID,
		FullName: user.FullName(),
		Email:    user.Email,
	}
	if err := u.donorRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return u.donorRepo.GetByUserID(ctx, user.ID)
		}
		return nil, err
	}
	return profile, nil
}

// GetMyProfile returns the caller's role profile. Unassigned users have no
// profile kind to create and get a 403.
func (u *ProfileUsecase) GetMyProfile(ctx context.Context, user *entities.User) (*ProfileResponse, error) {
	switch user.Role {
	case entities.RoleStudent:
		profile, err := u.GetOrCreateStudentProfile(ctx, user)
		if err != nil {
			return nil, err
		}
		return &ProfileResponse{Role: user.Role, Student: profile}, nil
	case entities.RoleDonor:
		profile, err := u.GetOrCreateDonorProfile(ctx, user)
		if err != nil {
			return nil, err
		}
		return &ProfileResponse{Role: user.Role, Donor: profile}, nil
	default:
		return nil, domainerrors.Forbidden("no role assigned to this account")
	}
}

// CreateStudentProfile is the explicit creation endpoint; it fails when a
// profile already exists instead of silently returning it.
func (u *ProfileUsecase) CreateStudentProfile(ctx context.Context, user *entities.User, input *entities.CreateProfileInput) (*entities.StudentProfile, error) {
	if user.Role != entities.RoleStudent {
		return nil, domainerrors.Forbidden("only students can create a student profile")
	}

	profile := &entities.StudentProfile{
		UserID:   user.ID,
		FullName: input.FullName,
		Email:    user.Email,
	}
	if err := u.studentRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("profile already exists")
		}
		return nil, err
	}
	return profile, nil
}

// UpdateMyProfile applies a tri-state partial update to the caller's
// profile: absent fields keep their value, explicit nulls clear nullable
// fields, supplied values are validated first. Any invalid field aborts the
// whole update.
func (u *ProfileUsecase) UpdateMyProfile(ctx context.Context, user *entities.User, input *entities.UpdateProfileInput) (*ProfileResponse, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	switch user.Role {
	case entities.RoleStudent:
		return u.updateStudent(ctx, user, input)
	case entities.RoleDonor:
		return u.updateDonor(ctx, user, input)
	default:
		return nil, domainerrors.Forbidden("no role assigned to this account")
	}
}

func validateProfileInput(input *entities.UpdateProfileInput) error {
	if input.FullName != nil && (*input.FullName == "" || utf8.RuneCountInString(*input.FullName) > 255) {
		return domainerrors.Validation("full_name", "full_name must be 1-255 characters")
	}
	if input.AvatarURL.Valid && !validAvatarURL(input.AvatarURL.Value) {
		return domainerrors.Validation("avatar_url", "avatar_url must start with http:// or https://")
	}
	if input.GPA.Valid && !validGPA(input.GPA.Value) {
		return domainerrors.Validation("gpa", "gpa must be a number between 0.0 and 4.0")
	}
	return nil
}

func (u *ProfileUsecase) updateStudent(ctx context.Context, user *entities.User, input *entities.UpdateProfileInput) (*ProfileResponse, error) {
	profile, err := u.GetOrCreateStudentProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.AvatarURL.Set {
		profile.AvatarURL = input.AvatarURL.NullString()
	}
	if input.University.Set {
		profile.University = input.University.NullString()
	}
	if input.Major.Set {
		profile.Major = input.Major.NullString()
	}
	if input.AcademicYear.Set {
		profile.AcademicYear = input.AcademicYear.NullString()
	}
	if input.GPA.Set {
		if input.GPA.Valid {
			profile.GPA = null.StringFrom(input.GPA.Value)
		} else {
			profile.GPA = null.String{}
		}
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.studentRepo.Update(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{Role: user.Role, Student: profile}, nil
}

func (u *ProfileUsecase) updateDonor(ctx context.Context, user *entities.User, input *entities.UpdateProfileInput) (*ProfileResponse, error) {
	profile, err := u.GetOrCreateDonorProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	// Academic fields are not recognized for donors and are ignored.
	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.AvatarURL.Set {
		profile.AvatarURL = input.AvatarURL.NullString()
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.donorRepo.Update(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{Role: user.Role, Donor: profile}, nil
}

// SetAvatarURL persists an uploaded avatar's URL on the caller's profile.
func (u *ProfileUsecase) SetAvatarURL(ctx context.Context, user *entities.User, url string) error {
	switch user.Role {
	case entities.RoleStudent:
		profile, err := u.GetOrCreateStudentProfile(ctx, user)
		if err != nil {
			return err
		}
		profile.AvatarURL = null.StringFrom(url)
		return u.studentRepo.Update(ctx, profile)
	case entities.RoleDonor:
		profile, err := u.GetOrCreateDonorProfile(ctx, user)
		if err != nil {
			return err
		}
		profile.AvatarURL = null.StringFrom(url)
		return u.donorRepo.Update(ctx, profile)
	default:
		return domainerrors.Forbidden("no role assigned to this account")
	}
}
