package entities

import "time"

// UserRole discriminates the three platform profiles.

type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRolePartner UserRole = "partner"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRolePartner, UserRoleAdmin:
		return true
	}
	return false
}

// User is a platform account. PasswordHash is a bcrypt hash and is never
// serialized.

type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone,omitempty"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
