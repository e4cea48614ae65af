package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/kakao-token/authenticator"
	"github.com/blogem/kakao-token/controllers"
	"github.com/blogem/kakao-token/database"
	authmiddleware "github.com/blogem/kakao-token/middleware"
	"github.com/blogem/kakao-token/models"
	"github.com/blogem/kakao-token/repositories"
	"github.com/blogem/kakao-token/services"
)

type testApp struct {
	server   *httptest.Server
	client   *http.Client
	repos    *repositories.Repositories
	login    services.LoginService
	recorder *authmiddleware.AuditRecorder
}

// newFakeKakao answers /v1/user/me for the tokens it knows
func newFakeKakao(t *testing.T) *httptest.Server {
	profiles := map[string]string{
		"Bearer good":    `{"id":123,"properties":{"nickname":"abc"},"kaccount_email":"a@b.com"}`,
		"Bearer noprops": `{"id":456}`,
		"Bearer garbage": `{"id":`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := profiles[r.Header.Get("Authorization")]
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"msg":"this access token does not exist","code":-401}`))
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	kakao := newFakeKakao(t)

	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := Config{
		Port:              "0",
		SessionLifetime:   3600,
		KakaoClientID:     "app-key",
		KakaoCallbackURL:  "http://localhost/callback",
		KakaoProfileURL:   kakao.URL + "/v1/user/me",
		AccessTokenField:  "access_token",
		RefreshTokenField: "refresh_token",
	}

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos)

	strategy, err := newStrategy(context.Background(), cfg, srvs.Login)
	require.NoError(t, err)

	recorder := authmiddleware.NewAuditRecorder(repos.Audit, strategy.Name())
	router, err := setupRouter(cfg, controllers.NewControllers(srvs, strategy, recorder), strategy, recorder)
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testApp{
		server:   server,
		client:   &http.Client{Jar: jar},
		repos:    repos,
		login:    srvs.Login,
		recorder: recorder,
	}
}

func (a *testApp) get(t *testing.T, path string, header http.Header) (int, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, a.server.URL+path, nil)
	require.NoError(t, err)
	for key, values := range header {
		req.Header[key] = values
	}

	resp, err := a.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestTokenLoginFlow(t *testing.T) {
	app := newTestApp(t)

	status, _ := app.get(t, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := app.get(t, "/auth/kakao/token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "You should provide access_token", body["info"].(map[string]interface{})["message"])

	status, body = app.get(t, "/auth/kakao/token?access_token=good", nil)
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "abc", user["display_name"])
	assert.Equal(t, "a@b.com", user["email"])
	assert.Equal(t, true, body["info"].(map[string]interface{})["registered"])

	status, body = app.get(t, "/me", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, user["id"], body["id"])

	// Second login maps to the same local user
	status, body = app.get(t, "/auth/kakao/token?access_token=good", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, user["id"], body["user"].(map[string]interface{})["id"])

	status, _ = app.get(t, "/logout", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = app.get(t, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestTokenLoginErrors(t *testing.T) {
	app := newTestApp(t)

	status, body := app.get(t, "/auth/kakao/token?access_token=unknown", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "this access token does not exist", body["message"])

	status, _ = app.get(t, "/auth/kakao/token?access_token=garbage", nil)
	assert.Equal(t, http.StatusBadGateway, status)

	status, body = app.get(t, "/auth/kakao/token?access_token=noprops", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "", body["user"].(map[string]interface{})["display_name"])
}

func TestBearerAPIAndBlockedUser(t *testing.T) {
	app := newTestApp(t)
	bearer := http.Header{"Authorization": {"Bearer good"}}

	status, body := app.get(t, "/api/me", bearer)
	require.Equal(t, http.StatusOK, status)
	userID := int64(body["id"].(float64))

	status, body = app.get(t, "/api/me/attempts", bearer)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, body["attempts"])

	result, err := runAdmin(context.Background(), app.login, adminFlags{block: userID})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("user %d blocked", userID), result)

	status, body = app.get(t, "/api/me", bearer)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "blocked", body["info"].(map[string]interface{})["reason"])

	status, _ = app.get(t, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	_, err = runAdmin(context.Background(), app.login, adminFlags{unblock: userID})
	require.NoError(t, err)

	status, _ = app.get(t, "/api/me", bearer)
	assert.Equal(t, http.StatusOK, status)

	app.recorder.Wait()
	attempts, err := app.repos.Audit.ListByUser(context.Background(), userID, 10)
	require.NoError(t, err)
	assert.Len(t, attempts, 3)
}

func TestRunAdmin_Errors(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	_, err := runAdmin(ctx, app.login, adminFlags{block: 1, unblock: 1})
	assert.EqualError(t, err, "-block and -unblock are mutually exclusive")

	_, err = runAdmin(ctx, app.login, adminFlags{block: 999})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = runAdmin(ctx, app.login, adminFlags{})
	assert.Error(t, err)
	assert.False(t, adminFlags{}.requested())
}

func TestOpenIDStrategyRejectedToken(t *testing.T) {
	var userAgent string
	mux := http.NewServeMux()
	issuer := httptest.NewServer(mux)
	t.Cleanup(issuer.Close)

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"issuer":                 issuer.URL,
			"authorization_endpoint": issuer.URL + "/oauth/authorize",
			"token_endpoint":         issuer.URL + "/oauth/token",
			"jwks_uri":               issuer.URL + "/.well-known/jwks.json",
			"userinfo_endpoint":      issuer.URL + "/v1/oidc/userinfo",
		})
	})
	mux.HandleFunc("/v1/oidc/userinfo", func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"this access token does not exist","code":-401}`))
	})

	cfg := Config{
		KakaoClientID:    "app-key",
		KakaoCallbackURL: "http://localhost/callback",
		KakaoUserAgent:   "my-agent",
		KakaoOIDCIssuer:  issuer.URL,
	}
	strategy, err := newStrategy(context.Background(), cfg, services.NewLoginService(nil, nil))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/kakao/token?access_token=bad", nil)
	outcome := strategy.Authenticate(req)

	assert.Equal(t, models.OutcomeError, outcome.Kind)
	assert.Equal(t, http.StatusUnauthorized, authmiddleware.OutcomeStatus(outcome))
	assert.Equal(t, "my-agent", userAgent)

	var fetchErr *authenticator.ProfileFetchError
	require.ErrorAs(t, outcome.Err, &fetchErr)
	assert.Equal(t, "this access token does not exist", fetchErr.Message)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	status, body := app.get(t, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}
