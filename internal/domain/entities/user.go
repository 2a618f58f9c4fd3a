package entities

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the single role a user holds. The platform deliberately
// models this as a closed enum instead of independent is_student/is_donor
// flags, which would admit a "both" state.
type Role string

const (
	RoleStudent    Role = "student"
	RoleDonor      Role = "donor"
	RoleUnassigned Role = "unassigned"
)

// ParseRole maps identity-provider role metadata onto a Role. Anything
// unrecognized, including the empty string, resolves to RoleUnassigned.
func ParseRole(s string) Role {
	switch s {
	case string(RoleStudent):
		return RoleStudent
	case string(RoleDonor):
		return RoleDonor
	default:
		return RoleUnassigned
	}
}

// User represents the local identity anchor for an externally authenticated
// account. The email is the uniqueness key shared with the identity provider.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName builds the display name used as the profile default.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// ExternalIdentity is the identity record returned by the provider's
// userinfo endpoint after a successful token verification.
type ExternalIdentity struct {
	Email     string
	FirstName string
	LastName  string
	Role      Role
}

// RegisterInput represents input for the legacy registration endpoint.
// Password is optional: external-token auth supersedes password login, the
// hash is stored only for backward compatibility.
type RegisterInput struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"omitempty,min=8"`
	Role      string `json:"role" binding:"omitempty,oneof=student donor"`
}

// LoginInput carries the externally issued access token to exchange for a
// synced local identity. The Authorization header is accepted as well.
type LoginInput struct {
	AccessToken string `json:"access_token"`
}

// AuthResponse is returned by login and verify.
type AuthResponse struct {
	User *User `json:"user"`
}
