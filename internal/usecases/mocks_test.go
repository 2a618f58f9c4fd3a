package usecases_test

import (
	"context"

	"edufund.backend/internal/domain/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Mock StudentProfileRepository
type MockStudentProfileRepository struct {
	mock.Mock
}

func (m *MockStudentProfileRepository) Create(ctx context.Context, profile *entities.StudentProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockStudentProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.StudentProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StudentProfile), args.Error(1)
}

func (m *MockStudentProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StudentProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StudentProfile), args.Error(1)
}

func (m *MockStudentProfileRepository) Update(ctx context.Context, profile *entities.StudentProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockStudentProfileRepository) ListWithCampaigns(ctx context.Context) ([]*entities.StudentProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.StudentProfile), args.Error(1)
}

// Mock DonorProfileRepository
type MockDonorProfileRepository struct {
	mock.Mock
}

func (m *MockDonorProfileRepository) Create(ctx context.Context, profile *entities.DonorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockDonorProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.DonorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DonorProfile), args.Error(1)
}

func (m *MockDonorProfileRepository) Update(ctx context.Context, profile *entities.DonorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// Mock DonorTierRepository
type MockDonorTierRepository struct {
	mock.Mock
}

func (m *MockDonorTierRepository) List(ctx context.Context) ([]*entities.DonorTier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DonorTier), args.Error(1)
}

func (m *MockDonorTierRepository) Upsert(ctx context.Context, tier *entities.DonorTier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}

// Mock CampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, campaign *entities.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) GetByStudentProfileID(ctx context.Context, studentProfileID uuid.UUID) (*entities.Campaign, error) {
	args := m.Called(ctx, studentProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Update(ctx context.Context, campaign *entities.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampaignRepository) ListActive(ctx context.Context, studentProfileID *uuid.UUID) ([]*entities.Campaign, error) {
	args := m.Called(ctx, studentProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Campaign), args.Error(1)
}

// Mock TokenVerifier
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) VerifyToken(ctx context.Context, token string) (*entities.ExternalIdentity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ExternalIdentity), args.Error(1)
}

// Mock IdentityCache
type MockIdentityCache struct {
	mock.Mock
}

func (m *MockIdentityCache) Get(ctx context.Context, token string) (*entities.ExternalIdentity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ExternalIdentity), args.Error(1)
}

func (m *MockIdentityCache) Set(ctx context.Context, token string, identity *entities.ExternalIdentity) error {
	args := m.Called(ctx, token, identity)
	return args.Error(0)
}
