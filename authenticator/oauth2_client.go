package authenticator

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// OAuthClient performs bearer-authenticated calls against the provider API
type OAuthClient interface {
	Get(ctx context.Context, url string, accessToken string) ([]byte, error)
}

// OAuth2Client implements OAuthClient on top of golang.org/x/oauth2.
// It never holds a client secret: the token flow only presents tokens
// the caller already has.
type OAuth2Client struct {
	config oauth2.Config
	base   *http.Client
}

// NewOAuth2Client creates a client for the given endpoint. Headers are added
// to every outbound request. A nil base uses http.DefaultClient's transport.
func NewOAuth2Client(clientID string, endpoint oauth2.Endpoint, headers map[string]string, base *http.Client) *OAuth2Client {
	if base == nil {
		base = &http.Client{}
	}

	transport := base.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &OAuth2Client{
		config: oauth2.Config{
			ClientID: clientID,
			Endpoint: endpoint,
		},
		base: &http.Client{
			Transport: &headerTransport{headers: headers, base: transport},
			Timeout:   base.Timeout,
		},
	}
}

// HTTPClient returns a client that presents accessToken as a bearer credential
func (c *OAuth2Client) HTTPClient(ctx context.Context, accessToken string) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.base)
	return c.config.Client(ctx, &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
}

// Get fetches url with the access token attached. Non-2xx responses are
// returned as *HTTPError carrying the response body.
func (c *OAuth2Client) Get(ctx context.Context, url string, accessToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.HTTPClient(ctx, accessToken).Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, &HTTPError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}

// headerTransport sets fixed headers on every request
type headerTransport struct {
	headers map[string]string
	base    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.headers) == 0 {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	for key, value := range t.headers {
		clone.Header.Set(key, value)
	}
	return t.base.RoundTrip(clone)
}
