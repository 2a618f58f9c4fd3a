package usecases

import (
	"context"
	"errors"

	"edufund.backend/internal/domain/entities"
	domainerrors "edufund.backend/internal/domain/errors"
	"edufund.backend/internal/domain/repositories"
	"edufund.backend/pkg/crypto"
	"edufund.backend/pkg/logger"
	"go.uber.org/zap"
)

// TokenVerifier verifies a bearer token against the identity provider.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entities.ExternalIdentity, error)
}

// IdentityCache is an optional short-TTL cache of verified identities.
type IdentityCache interface {
	Get(ctx context.Context, token string) (*entities.ExternalIdentity, error)
	Set(ctx context.Context, token string, identity *entities.ExternalIdentity) error
}

// AuthUsecase handles identity resolution and the legacy register path
type AuthUsecase struct {
	verifier    TokenVerifier
	cache       IdentityCache
	userRepo    repositories.UserRepository
	studentRepo repositories.StudentProfileRepository
	donorRepo   repositories.DonorProfileRepository
	uow         repositories.UnitOfWork
}

// NewAuthUsecase creates a new auth usecase. cache may be nil.
func NewAuthUsecase(
	verifier TokenVerifier,
	cache IdentityCache,
	userRepo repositories.UserRepository,
	studentRepo repositories.StudentProfileRepository,
	donorRepo repositories.DonorProfileRepository,
	uow repositories.UnitOfWork,
) *AuthUsecase {
	return &AuthUsecase{
		verifier:    verifier,
		cache:       cache,
		userRepo:    userRepo,
		studentRepo: studentRepo,
		donorRepo:   donorRepo,
		uow:         uow,
	}
}

// Authenticate verifies a bearer token and returns the synced local user.
// Repeated calls with an unchanged identity perform no writes.
func (u *AuthUsecase) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	identity, err := u.resolveIdentity(ctx, token)
	if err != nil {
		return nil, err
	}
	return u.syncUser(ctx, identity)
}

func (u *AuthUsecase) resolveIdentity(ctx context.Context, token string) (*entities.ExternalIdentity, error) {
	if u.cache != nil {
		cached, err := u.cache.Get(ctx, token)
		if err != nil {
			logger.Warn(ctx, "identity cache read failed", zap.Error(err))
		}
		if cached != nil {
			return cached, nil
		}
	}

	identity, err := u.verifier.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUpstreamUnavailable) {
			return nil, domainerrors.UpstreamUnavailable("identity provider unreachable")
		}
		logger.Debug(ctx, "token verification rejected", zap.Error(err))
		return nil, domainerrors.Unauthorized("invalid token")
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, token, identity); err != nil {
			logger.Warn(ctx, "identity cache write failed", zap.Error(err))
		}
	}
	return identity, nil
}

// syncUser maps an external identity onto the local user record: create on
// first sight (unique email constraint resolves concurrent first logins),
// reconcile name and role when the provider's values differ.
func (u *AuthUsecase) syncUser(ctx context.Context, identity *entities.ExternalIdentity) (*entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, identity.Email)
	if err == nil {
		return u.reconcile(ctx, user, identity)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	user = &entities.User{
		Email:     identity.Email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Role:      identity.Role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			// Lost the first-login race; the winner's row is authoritative.
			return u.userRepo.GetByEmail(ctx, identity.Email)
		}
		return nil, err
	}
	logger.Info(ctx, "local user created from external identity", zap.String("role", string(user.Role)))
	return user, nil
}

func (u *AuthUsecase) reconcile(ctx context.Context, user *entities.User, identity *entities.ExternalIdentity) (*entities.User, error) {
	changed := false
	if identity.FirstName != "" && identity.FirstName != user.FirstName {
		user.FirstName = identity.FirstName
		changed = true
	}
	if identity.LastName != "" && identity.LastName != user.LastName {
		user.LastName = identity.LastName
		changed = true
	}
	if identity.Role != entities.RoleUnassigned && identity.Role != user.Role {
		user.Role = identity.Role
		changed = true
	}

	if changed {
		if err := u.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// Login exchanges an external access token for the synced local identity.
func (u *AuthUsecase) Login(ctx context.Context, token string) (*entities.AuthResponse, error) {
	user, err := u.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{User: user}, nil
}

// Register creates a local account and its role profile in one transaction.
// Legacy path: the optional password is hashed and stored but external-token
// auth is the supported login flow.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	var passwordHash string
	if input.Password != "" {
		hash, err := crypto.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = hash
	}

	user := &entities.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         entities.ParseRole(input.Role),
		PasswordHash: passwordHash,
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return domainerrors.Conflict("email already in use")
			}
			return err
		}

		switch user.Role {
		case entities.RoleStudent:
			return u.studentRepo.Create(txCtx, &entities.StudentProfile{
				UserID:   user.ID,
				FullName: user.FullName(),
				Email:    user.Email,
			})
		case entities.RoleDonor:
			return u.donorRepo.Create(txCtx, &entities.DonorProfile{
				UserID:   user.ID,
				FullName: user.FullName(),
				Email:    user.Email,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
