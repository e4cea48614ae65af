package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/kakao-token/authenticator"
	"github.com/blogem/kakao-token/models"
	"github.com/blogem/kakao-token/repositories"
)

const recentAttemptsLimit = 20

// LoginService maps provider identities to local users
type LoginService interface {
	Verify(ctx context.Context, accessToken, refreshToken string, profile *models.Profile, done authenticator.DoneFunc)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	RecentAttempts(ctx context.Context, userID int64) ([]models.AuthAttempt, error)
	SetBlocked(ctx context.Context, userID int64, blocked bool) error
}

// loginService implements LoginService interface
type loginService struct {
	userRepo  repositories.UserRepository
	auditRepo repositories.AuditRepository
	now       func() time.Time
}

// NewLoginService creates a new login service
func NewLoginService(userRepo repositories.UserRepository, auditRepo repositories.AuditRepository) LoginService {
	return &loginService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		now:       time.Now,
	}
}

// Verify is the strategy's verify function.
// Unknown identities are registered on first login; blocked users are refused.
func (s *loginService) Verify(ctx context.Context, accessToken, refreshToken string, profile *models.Profile, done authenticator.DoneFunc) {
	if profile.IDString() == "" {
		done(nil, nil, models.Info{"reason": "profile has no id"})
		return
	}

	info := models.Info{}

	user, err := s.userRepo.GetByIdentity(ctx, profile.Provider, profile.IDString())
	if errors.Is(err, repositories.ErrNotFound) {
		var created bool
		user, created, err = s.register(ctx, profile)
		if err != nil {
			done(err, nil, nil)
			return
		}
		if created {
			info["registered"] = true
		}
	} else if err != nil {
		done(fmt.Errorf("failed to look up identity: %w", err), nil, nil)
		return
	}

	if user.Blocked {
		done(nil, nil, models.Info{"reason": "blocked"})
		return
	}

	now := s.now().UTC()
	if err := s.userRepo.TouchLogin(ctx, user.ID, now); err != nil {
		done(fmt.Errorf("failed to record login: %w", err), nil, nil)
		return
	}
	user.LastLoginAt = &now

	done(nil, user, info)
}

// register creates the user for a first login. A concurrent first login for
// the same identity wins the insert; the user it created is returned instead.
func (s *loginService) register(ctx context.Context, profile *models.Profile) (*models.User, bool, error) {
	user, identity := models.NewUserFromProfile(profile)
	err := s.userRepo.CreateWithIdentity(ctx, user, identity)
	if errors.Is(err, repositories.ErrIdentityExists) {
		user, err = s.userRepo.GetByIdentity(ctx, profile.Provider, profile.IDString())
		if err != nil {
			return nil, false, fmt.Errorf("failed to look up identity: %w", err)
		}
		return user, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to register user: %w", err)
	}
	return user, true, nil
}

// GetUser retrieves a user by ID
func (s *loginService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid user ID: %d", id)
	}
	return s.userRepo.GetByID(ctx, id)
}

// RecentAttempts lists the user's latest successful logins
func (s *loginService) RecentAttempts(ctx context.Context, userID int64) ([]models.AuthAttempt, error) {
	return s.auditRepo.ListByUser(ctx, userID, recentAttemptsLimit)
}

// SetBlocked blocks or unblocks a user. Blocked users fail verification.
func (s *loginService) SetBlocked(ctx context.Context, userID int64, blocked bool) error {
	if userID <= 0 {
		return fmt.Errorf("invalid user ID: %d", userID)
	}
	return s.userRepo.SetBlocked(ctx, userID, blocked)
}
