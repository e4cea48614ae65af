package authenticator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sync"

	"golang.org/x/oauth2"

	"github.com/blogem/kakao-token/models"
)

const (
	// StrategyName identifies this strategy in logs and audit records
	StrategyName = "kakao-token"

	DefaultUserAgent        = "kakao-token"
	DefaultScopeSeparator   = ","
	DefaultAuthorizationURL = "https://kauth.kakao.com/oauth/authorize"
	DefaultTokenURL         = "https://kauth.kakao.com/oauth/token"
)

// Options configures a Strategy. Only ClientID and CallbackURL are required.
type Options struct {
	ClientID          string
	CallbackURL       string
	ScopeSeparator    string
	CustomHeaders     map[string]string
	UserAgent         string
	AccessTokenField  string
	RefreshTokenField string
	PassReqToCallback bool

	UserProfileURL   string
	AuthorizationURL string
	TokenURL         string

	// HTTPClient is the base client for provider calls. Timeouts belong here.
	HTTPClient *http.Client
	// Fetcher replaces the default Kakao REST fetcher, e.g. with an OpenIDProvider
	Fetcher ProfileFetcher
}

// DoneFunc reports the verify function's decision. It must be called once;
// later calls are ignored.
type DoneFunc func(err error, user interface{}, info models.Info)

// VerifyFunc maps a resolved profile to a local user
type VerifyFunc func(ctx context.Context, accessToken, refreshToken string, profile *models.Profile, done DoneFunc)

// VerifyWithRequestFunc is VerifyFunc with the inbound request, used when
// PassReqToCallback is set
type VerifyWithRequestFunc func(r *http.Request, accessToken, refreshToken string, profile *models.Profile, done DoneFunc)

// Strategy authenticates requests carrying a Kakao access token.
// It is immutable after construction and safe for concurrent use.
type Strategy struct {
	options           Options
	fetcher           ProfileFetcher
	verify            VerifyFunc
	verifyWithRequest VerifyWithRequestFunc
}

// NewStrategy validates opts, fills in defaults and binds the verify function.
// verify must be a VerifyFunc, or a VerifyWithRequestFunc when
// opts.PassReqToCallback is set.
func NewStrategy(opts Options, verify interface{}) (*Strategy, error) {
	// Validate required configuration
	if opts.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if opts.CallbackURL == "" {
		return nil, errors.New("callback URL is required")
	}

	s := &Strategy{options: resolveOptions(opts)}

	switch fn := verify.(type) {
	case VerifyFunc:
		s.verify = fn
	case func(context.Context, string, string, *models.Profile, DoneFunc):
		s.verify = fn
	case VerifyWithRequestFunc:
		s.verifyWithRequest = fn
	case func(*http.Request, string, string, *models.Profile, DoneFunc):
		s.verifyWithRequest = fn
	case nil:
		return nil, errors.New("verify function is required")
	default:
		return nil, fmt.Errorf("unsupported verify function type %T", verify)
	}

	if s.options.PassReqToCallback && s.verifyWithRequest == nil {
		return nil, errors.New("PassReqToCallback requires a VerifyWithRequestFunc")
	}
	if !s.options.PassReqToCallback && s.verify == nil {
		return nil, errors.New("a VerifyWithRequestFunc requires PassReqToCallback")
	}

	s.fetcher = s.options.Fetcher
	if s.fetcher == nil {
		client := NewOAuth2Client(s.options.ClientID, oauth2.Endpoint{
			AuthURL:  s.options.AuthorizationURL,
			TokenURL: s.options.TokenURL,
		}, s.options.CustomHeaders, s.options.HTTPClient)
		s.fetcher = NewKakaoProvider(client, s.options.UserProfileURL)
	}

	return s, nil
}

// resolveOptions returns a copy of opts with defaults applied
func resolveOptions(opts Options) Options {
	if opts.ScopeSeparator == "" {
		opts.ScopeSeparator = DefaultScopeSeparator
	}
	if opts.AccessTokenField == "" {
		opts.AccessTokenField = DefaultAccessTokenField
	}
	if opts.RefreshTokenField == "" {
		opts.RefreshTokenField = DefaultRefreshTokenField
	}
	if opts.UserProfileURL == "" {
		opts.UserProfileURL = DefaultUserProfileURL
	}
	if opts.AuthorizationURL == "" {
		opts.AuthorizationURL = DefaultAuthorizationURL
	}
	if opts.TokenURL == "" {
		opts.TokenURL = DefaultTokenURL
	}

	opts.CustomHeaders = RequestHeaders(opts.CustomHeaders, opts.UserAgent)

	return opts
}

// RequestHeaders copies custom and adds a User-Agent unless one is already
// set under any casing. An empty userAgent means DefaultUserAgent.
func RequestHeaders(custom map[string]string, userAgent string) map[string]string {
	headers := make(map[string]string, len(custom)+1)
	hasUserAgent := false
	for key, value := range custom {
		headers[key] = value
		if http.CanonicalHeaderKey(key) == "User-Agent" {
			hasUserAgent = true
		}
	}
	if !hasUserAgent {
		if userAgent == "" {
			userAgent = DefaultUserAgent
		}
		headers["User-Agent"] = userAgent
	}
	return headers
}

// Name returns the strategy identifier
func (s *Strategy) Name() string {
	return StrategyName
}

// Options returns the resolved configuration
func (s *Strategy) Options() Options {
	return s.options
}

// Authenticate runs one authentication attempt for r.
//
// A request without an access token fails without calling the provider.
// A provider error ends in an error outcome. Otherwise the verify function
// decides, and Authenticate waits for it to call done or for the request
// context to end.
func (s *Strategy) Authenticate(r *http.Request) models.Outcome {
	creds := ExtractCredentials(r, s.options.AccessTokenField, s.options.RefreshTokenField)
	if creds.AccessToken == "" {
		outcome := models.Fail(models.Info{
			"message": fmt.Sprintf("You should provide %s", s.options.AccessTokenField),
		})
		outcome.Err = ErrMissingToken
		return outcome
	}

	profile, err := s.fetcher.FetchProfile(r.Context(), creds.AccessToken)
	if err != nil {
		return models.Failure(err)
	}

	return s.runVerify(r, creds, profile)
}

func (s *Strategy) runVerify(r *http.Request, creds models.Credentials, profile *models.Profile) models.Outcome {
	result := make(chan models.Outcome, 1)
	var once sync.Once

	done := func(err error, user interface{}, info models.Info) {
		once.Do(func() {
			result <- verified(err, user, info)
		})
	}

	if s.options.PassReqToCallback {
		s.verifyWithRequest(r, creds.AccessToken, creds.RefreshToken, profile, done)
	} else {
		s.verify(r.Context(), creds.AccessToken, creds.RefreshToken, profile, done)
	}

	select {
	case outcome := <-result:
		return outcome
	case <-r.Context().Done():
		return models.Failure(fmt.Errorf("verification did not complete: %w", r.Context().Err()))
	}
}

// verified translates the done arguments into an outcome
func verified(err error, user interface{}, info models.Info) models.Outcome {
	if err != nil {
		return models.Failure(&VerificationError{Err: err})
	}
	if isNil(user) {
		return models.Fail(info)
	}
	return models.Success(user, info)
}

// isNil also catches typed nil pointers stored in an interface
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
