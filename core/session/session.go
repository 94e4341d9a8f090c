package session

import (
	"context"

	"github.com/google/uuid"
)

// Role is the coarse authorization tag assigned by the backend. The two
// roles below gate dashboard access; any other value is a regular
// customer account and is treated uniformly.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleFranchiseUser Role = "franchise_user"
	RoleCustomer      Role = "customer"
)

// User is the authenticated identity resolved from the backend.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// Auth is the payload returned by the login and register endpoints.
// Callers use fields beyond User (the role in particular) to decide
// post-login navigation, so the full payload is returned to them.
type Auth struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterParams carries the candidate profile for account creation.
type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// State is a point-in-time snapshot of the session. User is nil while
// anonymous; Loading is true only between construction and the first
// bootstrap resolution.
type State struct {
	User    *User
	Loading bool
}

// IsAuthenticated reports whether a user has been resolved.
func (s State) IsAuthenticated() bool {
	return s.User != nil
}

// API is the narrow slice of the backend the session depends on.
// Profile and Logout authenticate with the persisted token, which the
// implementation picks up from its token source.
type API interface {
	Profile(ctx context.Context) (User, error)
	Login(ctx context.Context, email, password string) (Auth, error)
	Register(ctx context.Context, params RegisterParams) (Auth, error)
	Logout(ctx context.Context) error
}
