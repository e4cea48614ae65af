package models

import (
	"time"
)

// User is a local account that one or more provider identities map to
type User struct {
	ID          int64      `json:"id" db:"id"`
	DisplayName string     `json:"display_name" db:"display_name"`
	Email       string     `json:"email,omitempty" db:"email"`
	Blocked     bool       `json:"blocked" db:"blocked"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
}

// Identity links a provider account to a local user
type Identity struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	Provider       string    `json:"provider" db:"provider"`
	ProviderUserID string    `json:"provider_user_id" db:"provider_user_id"`
	Username       string    `json:"username" db:"username"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// NewUserFromProfile builds an unsaved user and identity from a provider profile
func NewUserFromProfile(profile *Profile) (*User, *Identity) {
	user := &User{
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
	}
	identity := &Identity{
		Provider:       profile.Provider,
		ProviderUserID: profile.IDString(),
		Username:       profile.Username,
	}
	return user, identity
}

// Validate checks the fields the database requires
func (i *Identity) Validate() []string {
	var errors []string

	if i.Provider == "" {
		errors = append(errors, "Provider is required")
	}

	if i.ProviderUserID == "" {
		errors = append(errors, "Provider user ID is required")
	}

	if len(i.Username) > 255 {
		errors = append(errors, "Username must be less than 255 characters")
	}

	return errors
}
