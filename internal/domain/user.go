package domain

import "context"

// Role is an application role.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Plan is a subscription plan.
type Plan string

const (
	PlanFree Plan = "FREE"
	PlanPro  Plan = "PRO"
)

// SubscriptionStatus is the billing state of a user's plan.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
)

// User represents a registered user. Users are seeded externally and read-only
// from the directory's perspective.
// swagger:model User
type User struct {
	ID                  string             `json:"id"`
	Email               string             `json:"email"`
	Name                string             `json:"name"`
	Role                Role               `json:"role"`
	Plan                Plan               `json:"plan"`
	SubscriptionStatus  SubscriptionStatus `json:"subscription_status"`
	VerifiedEmailDomain bool               `json:"verified_email_domain"`
	Company             string             `json:"company"`
	Title               string             `json:"title"`
}

// IsAdmin reports whether the user exists and has the ADMIN role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// HasActivePro reports whether the user exists and has an active PRO plan.
func (u *User) HasActivePro() bool {
	return u != nil && u.Plan == PlanPro && u.SubscriptionStatus == SubscriptionActive
}

// UserDirectory defines read-only lookup of users. Email lookup is
// case-insensitive.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, role Role) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// AuthService authenticates users against the seeded credential and issues
// tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}
