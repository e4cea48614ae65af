package authenticator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/blogem/kakao-token/models"
)

// DefaultUserProfileURL is Kakao's "who owns this token" endpoint
const DefaultUserProfileURL = "https://kapi.kakao.com/v1/user/me"

// ProfileFetcher resolves an access token to a normalized profile
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, accessToken string) (*models.Profile, error)
}

// KakaoProvider implements ProfileFetcher against the Kakao REST API
type KakaoProvider struct {
	client     OAuthClient
	profileURL string
}

// NewKakaoProvider creates a fetcher that calls profileURL through client.
// An empty profileURL falls back to DefaultUserProfileURL.
func NewKakaoProvider(client OAuthClient, profileURL string) *KakaoProvider {
	if profileURL == "" {
		profileURL = DefaultUserProfileURL
	}
	return &KakaoProvider{
		client:     client,
		profileURL: profileURL,
	}
}

// FetchProfile calls the profile endpoint with the token and normalizes the answer
func (p *KakaoProvider) FetchProfile(ctx context.Context, accessToken string) (*models.Profile, error) {
	body, err := p.client.Get(ctx, p.profileURL, accessToken)
	if err != nil {
		return nil, newProfileFetchError(err)
	}
	return ParseKakaoProfile(body)
}

// ParseKakaoProfile normalizes a /v1/user/me response body.
//
// The id is kept as sent (a json.Number for numeric ids). Accounts without
// a social profile have no "properties" object; nickname then defaults to "".
// The email comes from "kaccount_email", or "kakao_account.email" on the
// newer payload shape, and is left empty when neither is present.
func ParseKakaoProfile(body []byte) (*models.Profile, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var payload map[string]interface{}
	if err := decoder.Decode(&payload); err != nil {
		return nil, &ProfileParseError{Err: err}
	}
	if payload == nil {
		return nil, &ProfileParseError{Err: errors.New("profile body is not a JSON object")}
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, &ProfileParseError{Err: errors.New("unexpected data after profile object")}
	}

	account, _ := payload["kakao_account"].(map[string]interface{})

	properties, ok := payload["properties"].(map[string]interface{})
	if !ok {
		properties = map[string]interface{}{"nickname": accountNickname(account)}
	}
	nickname, _ := properties["nickname"].(string)

	email, _ := payload["kaccount_email"].(string)
	if email == "" {
		email, _ = account["email"].(string)
	}

	return &models.Profile{
		Provider:    models.ProviderKakao,
		ID:          payload["id"],
		Username:    nickname,
		DisplayName: nickname,
		Email:       email,
		Raw:         string(body),
		JSON:        payload,
	}, nil
}

// accountNickname reads kakao_account.profile.nickname, or "" when absent
func accountNickname(account map[string]interface{}) string {
	profile, _ := account["profile"].(map[string]interface{})
	nickname, _ := profile["nickname"].(string)
	return nickname
}

// newProfileFetchError extracts the provider message from an error body.
// Kakao error bodies are JSON with a "msg" field; anything else is kept as text.
func newProfileFetchError(err error) *ProfileFetchError {
	fetchErr := &ProfileFetchError{Err: err}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		fetchErr.StatusCode = httpErr.StatusCode
		fetchErr.Message = errorMessage(httpErr.Body)
	}

	return fetchErr
}

func errorMessage(body []byte) string {
	var payload struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Msg != "" {
		return payload.Msg
	}
	return strings.TrimSpace(string(body))
}
