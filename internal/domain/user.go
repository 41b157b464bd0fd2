package domain

import (
	"context"
	"time"
)

// Platform roles
const (
	RoleSeeker   = "seeker"
	RoleProvider = "provider"
	RoleMentor   = "mentor"
	RoleAdmin    = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Viewer is the caller identity as seen by usecases. The zero value is an anonymous visitor.
type Viewer struct {
	UserID   string
	Username string
	Role     string
}

func (v Viewer) IsAuthenticated() bool { return v.UserID != "" }

func (v Viewer) IsSeeker() bool { return v.UserID != "" && v.Role == RoleSeeker }

func (v Viewer) IsProvider() bool {
	return v.UserID != "" && (v.Role == RoleProvider || v.Role == RoleAdmin)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
}

type AuthUsecase interface {
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
