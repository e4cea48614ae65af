package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/blogem/kakao-token/models"
	"github.com/blogem/kakao-token/repositories"
)

// AuditRecorder stores one row per authentication attempt
type AuditRecorder struct {
	repo     repositories.AuditRepository
	provider string
	wg       sync.WaitGroup
}

// NewAuditRecorder creates a recorder that tags attempts with provider
func NewAuditRecorder(repo repositories.AuditRepository, provider string) *AuditRecorder {
	return &AuditRecorder{repo: repo, provider: provider}
}

// Record saves the attempt in the background so the request is not blocked
func (a *AuditRecorder) Record(r *http.Request, outcome models.Outcome) {
	attempt := &models.AuthAttempt{
		Timestamp: time.Now().UTC(),
		Outcome:   outcome.Kind,
		Provider:  a.provider,
		Reason:    outcomeReason(outcome),
		Path:      r.URL.Path,
		UserAgent: r.UserAgent(),
		IPAddress: getIPAddress(r),
	}
	if user, ok := outcome.User.(*models.User); ok && user != nil {
		attempt.UserID = &user.ID
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.repo.Create(context.Background(), attempt); err != nil {
			log.Printf("Failed to create audit log: %v", err)
		}
	}()
}

// Wait blocks until pending records are written
func (a *AuditRecorder) Wait() {
	a.wg.Wait()
}

// outcomeReason picks the text worth keeping; tokens never end up here
func outcomeReason(outcome models.Outcome) string {
	switch outcome.Kind {
	case models.OutcomeFail:
		if reason := outcome.Info.Reason(); reason != "" {
			return reason
		}
		return outcome.Info.Message()
	case models.OutcomeError:
		if outcome.Err != nil {
			return outcome.Err.Error()
		}
	}
	return ""
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
