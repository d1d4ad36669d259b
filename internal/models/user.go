package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's role within a tenant.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleUnderwriter Role = "underwriter"
	RoleAgent       Role = "agent"
	RoleCustomer    Role = "customer"
)

// ParseRole validates a role string. Empty input yields the default customer role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleUnderwriter, RoleAgent, RoleCustomer:
		return Role(s), true
	case "":
		return RoleCustomer, true
	}
	return "", false
}

// User represents a login-capable account bound to exactly one tenant.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	TenantID     uuid.UUID `json:"tenant_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPublic is User without sensitive fields for API responses.
type UserPublic struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	TenantName string    `json:"tenant_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToPublic converts User to UserPublic. The tenant name lives on the tenant
// record, not the user, so the caller supplies it.
func (u *User) ToPublic(tenantName string) UserPublic {
	return UserPublic{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role,
		TenantName: tenantName,
		CreatedAt:  u.CreatedAt,
	}
}
