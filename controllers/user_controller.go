package controllers

import (
	"errors"
	"net/http"

	"github.com/blogem/kakao-token/middleware"
	"github.com/blogem/kakao-token/repositories"
	"github.com/blogem/kakao-token/services"
	"github.com/blogem/kakao-token/userctx"
)

// UserController serves the current user
type UserController struct {
	services *services.Services
}

// NewUserController creates a new user controller
func NewUserController(services *services.Services) *UserController {
	return &UserController{
		services: services,
	}
}

// Me handles GET /me and GET /api/me
func (c *UserController) Me(w http.ResponseWriter, r *http.Request) {
	// Token-authenticated requests already carry the user
	if user, ok := userctx.GetUser(r.Context()); ok {
		middleware.WriteJSON(w, http.StatusOK, user)
		return
	}

	user, err := c.services.Login.GetUser(r.Context(), userctx.GetUserID(r.Context()))
	if errors.Is(err, repositories.ErrNotFound) {
		middleware.WriteJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"error": "unauthorized",
		})
		return
	}
	if err != nil {
		http.Error(w, "Failed to load user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, user)
}

// Attempts handles GET /me/attempts
func (c *UserController) Attempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := c.services.Login.RecentAttempts(r.Context(), userctx.GetUserID(r.Context()))
	if err != nil {
		http.Error(w, "Failed to load attempts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"attempts": attempts,
	})
}
