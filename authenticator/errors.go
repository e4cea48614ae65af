package authenticator

import (
	"errors"
	"fmt"
)

// ErrMissingToken is reported when no access token was found on the request.
// It ends the attempt as a fail, not an error.
var ErrMissingToken = errors.New("access token not provided")

// HTTPError is returned by an OAuthClient when the provider answers with a
// non-2xx status
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("provider responded with status %d", e.StatusCode)
}

// ProfileFetchError is returned when the profile endpoint could not be called
// or answered with an error
type ProfileFetchError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ProfileFetchError) Error() string {
	if e.Message != "" {
		return "failed to fetch user profile: " + e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch user profile: %v", e.Err)
	}
	return "failed to fetch user profile"
}

func (e *ProfileFetchError) Unwrap() error {
	return e.Err
}

// ProfileParseError is returned when the profile body is not valid JSON
type ProfileParseError struct {
	Err error
}

func (e *ProfileParseError) Error() string {
	return fmt.Sprintf("failed to parse user profile: %v", e.Err)
}

func (e *ProfileParseError) Unwrap() error {
	return e.Err
}

// VerificationError wraps an error reported by the verify function
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed: %v", e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}
