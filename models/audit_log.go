package models

import "time"

// AuthAttempt records a single authentication attempt and how it ended.
// Tokens are never part of the record.
type AuthAttempt struct {
	ID        int64       `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Outcome   OutcomeKind `json:"outcome"`
	Provider  string      `json:"provider"`
	UserID    *int64      `json:"user_id,omitempty"`
	Reason    string      `json:"reason,omitempty"`
	Path      string      `json:"path"`
	UserAgent string      `json:"user_agent"`
	IPAddress string      `json:"ip_address"`
}
