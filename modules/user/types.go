package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is a user's access level.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// User is the account record shared across modules.
type User struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	UserName      *string    `json:"userName"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"emailVerified"`
	Image         *string    `json:"image"`
	Role          Role       `json:"role"`
	Banned        bool       `json:"banned"`
	BanReason     *string    `json:"banReason"`
	BanExpires    *time.Time `json:"banExpires"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Session is an authenticated login session. The raw token is only
// available at creation; storage keeps a hash.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Token     string    `json:"token"`
	IPAddress string    `json:"-"`
	UserAgent string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResult pairs the authenticated user with their fresh session.
type LoginResult struct {
	User    User    `json:"user"`
	Session Session `json:"session"`
}
