package domain

import (
	"context"
	"time"
)

// UserRole is an application role as issued by the backend.
type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleParticipant UserRole = "PARTICIPANT"
)

// CanModerate reports whether the role may manage events, reservations, and users.
// Every screen and route guard goes through this check instead of comparing
// against RoleAdmin inline; it mirrors backend authorization, it does not replace it.
func (r UserRole) CanModerate() bool { return r == RoleAdmin }

// CanReserve reports whether the role may create reservations.
func (r UserRole) CanReserve() bool { return r == RoleParticipant }

// Valid reports whether the role is one the backend issues.
func (r UserRole) Valid() bool { return r == RoleAdmin || r == RoleParticipant }

// User represents a registered user as returned by the backend.
// swagger:model User
type User struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      UserRole  `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Credentials is the login request body for POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the request body for POST /auth/register.
type RegisterInput struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      UserRole `json:"role,omitempty"`
}

// UpdateProfileInput is the request body for PATCH /auth/profile.
// Nil fields are omitted and left unchanged by the backend.
type UpdateProfileInput struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// AuthResult is the backend response to register and login.
// swagger:model AuthResult
type AuthResult struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// AuthService defines authentication operations against the backend.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	GetProfile(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*User, error)
}

// UserService defines admin-facing user listing operations.
type UserService interface {
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
