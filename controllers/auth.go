package controllers

import (
	"log"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/kakao-token/middleware"
	"github.com/blogem/kakao-token/models"
)

// AuthController exchanges a Kakao access token for a session
type AuthController struct {
	auth     middleware.Authenticator
	recorder *middleware.AuditRecorder
}

// NewAuthController creates a new auth controller
func NewAuthController(auth middleware.Authenticator, recorder *middleware.AuditRecorder) *AuthController {
	return &AuthController{
		auth:     auth,
		recorder: recorder,
	}
}

// TokenLogin handles GET|POST /auth/kakao/token
func (ac *AuthController) TokenLogin(w http.ResponseWriter, r *http.Request) {
	outcome := ac.auth.Authenticate(r)
	if ac.recorder != nil {
		ac.recorder.Record(r, outcome)
	}

	if outcome.Kind != models.OutcomeSuccess {
		middleware.WriteOutcome(w, outcome)
		return
	}

	user, ok := outcome.User.(*models.User)
	if !ok {
		log.Printf("Strategy %s returned unexpected user type %T", ac.auth.Name(), outcome.User)
		http.Error(w, "authentication error", http.StatusInternalServerError)
		return
	}

	// New session ID on login so a pre-login cookie can't be reused
	sess, err := session.GetSession(r).RegenerateID(w, r)
	if err != nil {
		http.Error(w, "Failed to create session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := sess.Set(middleware.SessionUserKey, user.ID); err != nil {
		http.Error(w, "Failed to store session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
		"info": outcome.Info,
	})
}

// Logout handles GET /logout
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := session.GetSession(r).Destroy(w, r); err != nil {
		http.Error(w, "Failed to destroy session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "logged_out",
	})
}
