package repositories

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("record not found")

// ErrIdentityExists is returned when a provider account is already linked
var ErrIdentityExists = errors.New("identity already exists")

// Repositories struct holds all repository interfaces
type Repositories struct {
	User  UserRepository
	Audit AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		User:  NewUserRepository(db),
		Audit: NewAuditRepository(db),
	}
}
