package models

import "fmt"

// ProviderKakao is the provider name stamped on every Kakao profile
const ProviderKakao = "kakao"

// Credentials holds the tokens presented with a single authentication attempt.
// They are never persisted.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// Profile is the normalized identity returned by the identity provider
type Profile struct {
	Provider    string                 `json:"provider"`
	ID          interface{}            `json:"id"`
	Username    string                 `json:"username"`
	DisplayName string                 `json:"displayName"`
	Email       string                 `json:"email,omitempty"`
	Raw         string                 `json:"-"`
	JSON        map[string]interface{} `json:"-"`
}

// IDString returns the provider user id as text, suitable for storage
func (p *Profile) IDString() string {
	if p == nil || p.ID == nil {
		return ""
	}
	return fmt.Sprint(p.ID)
}
