package authenticator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/blogem/kakao-token/models"
)

// DefaultOpenIDIssuer is Kakao's OpenID Connect issuer
const DefaultOpenIDIssuer = "https://kauth.kakao.com"

// OpenIDProvider implements ProfileFetcher through the issuer's OIDC
// userinfo endpoint instead of the REST profile API
type OpenIDProvider struct {
	provider    *oidc.Provider
	client      OAuthClient
	userInfoURL string
}

// OpenIDConfig holds OpenID Connect configuration.
// Headers are sent on userinfo calls; a missing User-Agent gets the default.
type OpenIDConfig struct {
	Issuer     string
	ClientID   string
	Headers    map[string]string
	HTTPClient *http.Client
}

// NewOpenIDProvider runs discovery against the issuer
func NewOpenIDProvider(ctx context.Context, cfg OpenIDConfig) (*OpenIDProvider, error) {
	if cfg.Issuer == "" {
		return nil, errors.New("issuer is required")
	}

	if cfg.HTTPClient != nil {
		ctx = oidc.ClientContext(ctx, cfg.HTTPClient)
	}

	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover openid issuer: %w", err)
	}

	userInfoURL := provider.UserInfoEndpoint()
	if userInfoURL == "" {
		return nil, errors.New("issuer does not advertise a userinfo endpoint")
	}

	headers := RequestHeaders(cfg.Headers, "")
	client := NewOAuth2Client(cfg.ClientID, provider.Endpoint(), headers, cfg.HTTPClient)

	return &OpenIDProvider{
		provider:    provider,
		client:      client,
		userInfoURL: userInfoURL,
	}, nil
}

// Endpoint returns the authorization and token endpoints from discovery
func (p *OpenIDProvider) Endpoint() oauth2.Endpoint {
	return p.provider.Endpoint()
}

// FetchProfile resolves the token through the userinfo endpoint
func (p *OpenIDProvider) FetchProfile(ctx context.Context, accessToken string) (*models.Profile, error) {
	body, err := p.client.Get(ctx, p.userInfoURL, accessToken)
	if err != nil {
		return nil, newProfileFetchError(err)
	}
	return ParseOpenIDProfile(body)
}

// ParseOpenIDProfile normalizes a userinfo response. The subject becomes the id.
func ParseOpenIDProfile(body []byte) (*models.Profile, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))

	var claims map[string]interface{}
	if err := decoder.Decode(&claims); err != nil {
		return nil, &ProfileParseError{Err: err}
	}
	if claims == nil {
		return nil, &ProfileParseError{Err: errors.New("userinfo body is not a JSON object")}
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, &ProfileParseError{Err: errors.New("unexpected data after userinfo object")}
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, &ProfileParseError{Err: errors.New("userinfo has no subject")}
	}
	nickname, _ := claims["nickname"].(string)
	email, _ := claims["email"].(string)

	return &models.Profile{
		Provider:    models.ProviderKakao,
		ID:          subject,
		Username:    nickname,
		DisplayName: nickname,
		Email:       email,
		Raw:         string(body),
		JSON:        claims,
	}, nil
}
