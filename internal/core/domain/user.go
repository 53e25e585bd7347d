package domain

import (
	"strings"
	"time"
)

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCustomer Role = "Customer"
)

// ParseRole converts a raw claim or payload value into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCustomer:
		return RoleCustomer, nil
	}
	return "", ErrInvalidRole
}

// IsAdmin reports whether the role carries administrative privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserPatch lists the fields a profile update may change. Nil fields are left untouched.
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *Role
}

// IsEmpty reports whether the patch would change nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.PasswordHash == nil && p.Role == nil
}

// MonthlyCount is one bucket of a per-month aggregation.
type MonthlyCount struct {
	Year  int   `json:"year"  bson:"year"`
	Month int   `json:"month" bson:"month"`
	Total int64 `json:"total" bson:"total"`
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the principal holds the Admin role.
func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}

// CanAccess reports whether the principal may act on a resource owned by ownerID.
// Admins may act on everything; everyone else only on their own resources.
func (p Principal) CanAccess(ownerID string) bool {
	if p.IsAdmin() {
		return true
	}
	return p.UserID != "" && p.UserID == ownerID
}
