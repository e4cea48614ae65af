package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/kakao-token/models"
)

// AuditRepository handles authentication attempt persistence
type AuditRepository interface {
	Create(ctx context.Context, attempt *models.AuthAttempt) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.AuthAttempt, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new authentication attempt
func (r *sqliteAuditRepository) Create(ctx context.Context, attempt *models.AuthAttempt) error {
	if attempt.Timestamp.IsZero() {
		attempt.Timestamp = time.Now().UTC()
	}

	query := `
		INSERT INTO auth_attempts (timestamp, outcome, provider, user_id, reason, path, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx,
		query,
		attempt.Timestamp,
		string(attempt.Outcome),
		attempt.Provider,
		attempt.UserID,
		attempt.Reason,
		attempt.Path,
		attempt.UserAgent,
		attempt.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("failed to create auth attempt: %w", err)
	}

	attempt.ID, err = result.LastInsertId()
	return err
}

// ListByUser returns the most recent attempts that ended in the user's login
func (r *sqliteAuditRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.AuthAttempt, error) {
	query := `
		SELECT id, timestamp, outcome, provider, user_id, reason, path, user_agent, ip_address
		FROM auth_attempts
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query auth attempts: %w", err)
	}
	defer rows.Close()

	attempts := []models.AuthAttempt{}
	for rows.Next() {
		var attempt models.AuthAttempt
		var outcome string
		var uid sql.NullInt64

		err := rows.Scan(
			&attempt.ID,
			&attempt.Timestamp,
			&outcome,
			&attempt.Provider,
			&uid,
			&attempt.Reason,
			&attempt.Path,
			&attempt.UserAgent,
			&attempt.IPAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan auth attempt: %w", err)
		}

		attempt.Outcome = models.OutcomeKind(outcome)
		if uid.Valid {
			attempt.UserID = &uid.Int64
		}

		attempts = append(attempts, attempt)
	}

	return attempts, rows.Err()
}
