package authenticator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestParseKakaoProfile_Full(t *testing.T) {
	body := `{"id":123,"properties":{"nickname":"abc"},"kaccount_email":"a@b.com"}`

	profile, err := ParseKakaoProfile([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "kakao", profile.Provider)
	assert.Equal(t, json.Number("123"), profile.ID)
	assert.Equal(t, "abc", profile.Username)
	assert.Equal(t, "abc", profile.DisplayName)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, body, profile.Raw)
	assert.Equal(t, "abc", profile.JSON["properties"].(map[string]interface{})["nickname"])
}

func TestParseKakaoProfile_NoProperties(t *testing.T) {
	profile, err := ParseKakaoProfile([]byte(`{"id":123}`))
	require.NoError(t, err)

	assert.Equal(t, json.Number("123"), profile.ID)
	assert.Equal(t, "", profile.Username)
	assert.Equal(t, "", profile.DisplayName)
	assert.Empty(t, profile.Email)

	encoded, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "email")
}

func TestParseKakaoProfile_AccountShape(t *testing.T) {
	body := `{"id":"9876","kakao_account":{"email":"x@y.com","profile":{"nickname":"neo"}}}`

	profile, err := ParseKakaoProfile([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "9876", profile.ID)
	assert.Equal(t, "neo", profile.Username)
	assert.Equal(t, "x@y.com", profile.Email)
}

func TestParseKakaoProfile_Malformed(t *testing.T) {
	for _, body := range []string{`{"id":`, `not json`, `null`, `[1,2]`, `{"id":1} trailing`} {
		_, err := ParseKakaoProfile([]byte(body))

		var parseErr *ProfileParseError
		assert.ErrorAs(t, err, &parseErr, body)
	}
}

func newTestClient(headers map[string]string) *OAuth2Client {
	return NewOAuth2Client("app-key", oauth2.Endpoint{
		AuthURL:  DefaultAuthorizationURL,
		TokenURL: DefaultTokenURL,
	}, headers, nil)
}

func TestKakaoProvider_FetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":123,"properties":{"nickname":"abc"}}`))
	}))
	defer server.Close()

	provider := NewKakaoProvider(newTestClient(map[string]string{"User-Agent": "test-agent"}), server.URL)

	profile, err := provider.FetchProfile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, json.Number("123"), profile.ID)
	assert.Equal(t, "abc", profile.Username)
}

func TestKakaoProvider_ProviderErrorWithMsg(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"this access token does not exist","code":-401}`))
	}))
	defer server.Close()

	provider := NewKakaoProvider(newTestClient(nil), server.URL)

	_, err := provider.FetchProfile(context.Background(), "bad")

	var fetchErr *ProfileFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusUnauthorized, fetchErr.StatusCode)
	assert.Equal(t, "this access token does not exist", fetchErr.Message)

	var httpErr *HTTPError
	assert.ErrorAs(t, err, &httpErr)
}

func TestKakaoProvider_ProviderErrorNotJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded\n"))
	}))
	defer server.Close()

	provider := NewKakaoProvider(newTestClient(nil), server.URL)

	_, err := provider.FetchProfile(context.Background(), "tok")

	var fetchErr *ProfileFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusBadGateway, fetchErr.StatusCode)
	assert.Equal(t, "upstream exploded", fetchErr.Message)
}

func TestKakaoProvider_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	provider := NewKakaoProvider(newTestClient(nil), url)

	_, err := provider.FetchProfile(context.Background(), "tok")

	var fetchErr *ProfileFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
	assert.Contains(t, fetchErr.Error(), "failed to fetch user profile")
}

func TestKakaoProvider_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 12`))
	}))
	defer server.Close()

	provider := NewKakaoProvider(newTestClient(nil), server.URL)

	_, err := provider.FetchProfile(context.Background(), "tok")

	var parseErr *ProfileParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.False(t, errors.As(err, new(*ProfileFetchError)))
}

func TestNewKakaoProvider_DefaultURL(t *testing.T) {
	provider := NewKakaoProvider(newTestClient(nil), "")
	assert.Equal(t, DefaultUserProfileURL, provider.profileURL)
}
