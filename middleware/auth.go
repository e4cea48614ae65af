package middleware

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/kakao-token/authenticator"
	"github.com/blogem/kakao-token/models"
	"github.com/blogem/kakao-token/userctx"
)

// SessionUserKey is the session entry holding the logged in user's ID
const SessionUserKey = "user_id"

// Authenticator resolves a request to an outcome
type Authenticator interface {
	Name() string
	Authenticate(r *http.Request) models.Outcome
}

// RequireAuth ensures the session belongs to a logged in user
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		userID, ok := sess.Get(SessionUserKey).(int64)
		if !ok || userID <= 0 {
			WriteJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"error": "unauthorized",
			})
			return
		}

		// Add user ID to request context for use in handlers
		ctx := userctx.SetUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireToken authenticates every request with the strategy.
// Nothing is kept between requests.
func RequireToken(auth Authenticator, recorder *AuditRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			outcome := auth.Authenticate(r)
			if recorder != nil {
				recorder.Record(r, outcome)
			}

			if outcome.Kind != models.OutcomeSuccess {
				WriteOutcome(w, outcome)
				return
			}

			user, ok := outcome.User.(*models.User)
			if !ok {
				log.Printf("Strategy %s returned unexpected user type %T", auth.Name(), outcome.User)
				WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
					"error": "authentication error",
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(userctx.SetUser(r.Context(), user)))
		})
	}
}

// OutcomeStatus maps a non-success outcome to an HTTP status.
// A fail is 401. An error is 401 when the provider rejected the token,
// 502 when the provider could not be used, and 500 otherwise.
func OutcomeStatus(outcome models.Outcome) int {
	switch outcome.Kind {
	case models.OutcomeSuccess:
		return http.StatusOK
	case models.OutcomeFail:
		return http.StatusUnauthorized
	}

	var fetchErr *authenticator.ProfileFetchError
	if errors.As(outcome.Err, &fetchErr) {
		if fetchErr.StatusCode == http.StatusUnauthorized {
			return http.StatusUnauthorized
		}
		return http.StatusBadGateway
	}

	var parseErr *authenticator.ProfileParseError
	if errors.As(outcome.Err, &parseErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// WriteOutcome writes the JSON error body for a fail or error outcome
func WriteOutcome(w http.ResponseWriter, outcome models.Outcome) {
	status := OutcomeStatus(outcome)

	if outcome.Kind == models.OutcomeFail {
		WriteJSON(w, status, map[string]interface{}{
			"error": "unauthorized",
			"info":  outcome.Info,
		})
		return
	}

	log.Printf("Authentication error: %v", outcome.Err)

	message := "authentication error"
	var fetchErr *authenticator.ProfileFetchError
	if errors.As(outcome.Err, &fetchErr) && fetchErr.Message != "" {
		message = fetchErr.Message
	}

	WriteJSON(w, status, map[string]interface{}{
		"error":   "authentication error",
		"message": message,
	})
}

// WriteJSON encodes v with the given status
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
