package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/blogem/kakao-token/models"
)

// UserRepository interface defines user and identity database operations
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByIdentity(ctx context.Context, provider, providerUserID string) (*models.User, error)
	CreateWithIdentity(ctx context.Context, user *models.User, identity *models.Identity) error
	TouchLogin(ctx context.Context, id int64, at time.Time) error
	SetBlocked(ctx context.Context, id int64, blocked bool) error
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `u.id, u.display_name, u.email, u.blocked, u.created_at, u.last_login_at`

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByIdentity retrieves the user a provider account is linked to
func (r *userRepository) GetByIdentity(ctx context.Context, provider, providerUserID string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN identities i ON i.user_id = u.id
		WHERE i.provider = ? AND i.provider_user_id = ?
	`
	return scanUser(r.db.QueryRowContext(ctx, query, provider, providerUserID))
}

// CreateWithIdentity inserts the user and its first identity in one transaction
func (r *userRepository) CreateWithIdentity(ctx context.Context, user *models.User, identity *models.Identity) error {
	if errs := identity.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid identity: %s", strings.Join(errs, ", "))
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO users (display_name, email, blocked, created_at) VALUES (?, ?, ?, ?)`,
		user.DisplayName, user.Email, user.Blocked, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user ID: %w", err)
	}

	result, err = tx.ExecContext(ctx,
		`INSERT INTO identities (user_id, provider, provider_user_id, username, created_at) VALUES (?, ?, ?, ?, ?)`,
		userID, identity.Provider, identity.ProviderUserID, identity.Username, now,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s/%s", ErrIdentityExists, identity.Provider, identity.ProviderUserID)
	}
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}

	identityID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get identity ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user: %w", err)
	}

	user.ID = userID
	user.CreatedAt = now
	identity.ID = identityID
	identity.UserID = userID
	identity.CreatedAt = now

	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// TouchLogin records a successful login
func (r *userRepository) TouchLogin(ctx context.Context, id int64, at time.Time) error {
	return r.updateOne(ctx, `UPDATE users SET last_login_at = ? WHERE id = ?`, at.UTC(), id)
}

// SetBlocked blocks or unblocks a user
func (r *userRepository) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	return r.updateOne(ctx, `UPDATE users SET blocked = ? WHERE id = ?`, blocked, id)
}

func (r *userRepository) updateOne(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var lastLogin sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.DisplayName,
		&user.Email,
		&user.Blocked,
		&user.CreatedAt,
		&lastLogin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	if lastLogin.Valid {
		user.LastLoginAt = &lastLogin.Time
	}

	return &user, nil
}
