package userctx

import (
	"context"

	"github.com/blogem/kakao-token/models"
)

// Context key type
type contextKey string

const userKey contextKey = "user"
const UserIDKey contextKey = "user_id"

// SetUser adds the authenticated user to request context
func SetUser(ctx context.Context, user *models.User) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return SetUserID(ctx, user.ID)
}

// GetUser retrieves the authenticated user from request context
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

// SetUserID adds user ID to request context
func SetUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// GetUserID retrieves user ID from request context, 0 when anonymous
func GetUserID(ctx context.Context) int64 {
	if id, ok := ctx.Value(UserIDKey).(int64); ok {
		return id
	}
	return 0
}
