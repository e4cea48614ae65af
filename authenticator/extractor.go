package authenticator

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"regexp"
	"strings"

	"github.com/blogem/kakao-token/models"
)

const (
	// DefaultAccessTokenField is where the access token is looked up unless configured otherwise
	DefaultAccessTokenField = "access_token"
	// DefaultRefreshTokenField is where the refresh token is looked up unless configured otherwise
	DefaultRefreshTokenField = "refresh_token"

	maxBodyBytes     = 1 << 20
	maxMultipartSize = 32 << 20
)

var bearerPattern = regexp.MustCompile(`^Bearer (.+)$`)

// ExtractCredentials pulls the access and refresh tokens out of the request
func ExtractCredentials(r *http.Request, accessField, refreshField string) models.Credentials {
	return models.Credentials{
		AccessToken:  ExtractToken(r, accessField),
		RefreshToken: lookupToken(r, refreshField, false),
	}
}

// ExtractToken looks for a token named field on the request.
// Sources are tried in order: body, query, header, then the Authorization
// bearer header. An empty string means no source had one.
func ExtractToken(r *http.Request, field string) string {
	return lookupToken(r, field, true)
}

// lookupToken skips the bearer header for the refresh token, which never
// travels in Authorization
func lookupToken(r *http.Request, field string, allowBearer bool) string {
	if r == nil || field == "" {
		return ""
	}

	if token := tokenFromBody(r, field); token != "" {
		return token
	}

	if token := r.URL.Query().Get(field); token != "" {
		return token
	}

	// Header.Get canonicalizes the key, so the lookup is case-insensitive
	if token := r.Header.Get(field); token != "" {
		return token
	}

	if !allowBearer {
		return ""
	}
	return bearerToken(r)
}

// bearerToken parses "Authorization: Bearer <token>"
func bearerToken(r *http.Request) string {
	matches := bearerPattern.FindStringSubmatch(r.Header.Get("Authorization"))
	if len(matches) != 2 {
		return ""
	}
	return strings.TrimSpace(matches[1])
}

// tokenFromBody reads field from a form or JSON body
func tokenFromBody(r *http.Request, field string) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return ""
		}
		return r.PostForm.Get(field)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartSize); err != nil {
			return ""
		}
		return r.PostForm.Get(field)
	case "application/json":
		return tokenFromJSON(r, field)
	}

	return ""
}

// tokenFromJSON decodes the body and puts it back so later readers still see it
func tokenFromJSON(r *http.Request, field string) string {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) == 0 {
		return ""
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}

	raw, ok := fields[field]
	if !ok {
		return ""
	}
	return tokenValue(raw)
}

// tokenValue accepts a plain string or number, or an already parsed
// credential object carrying a "token" property
func tokenValue(raw json.RawMessage) string {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case map[string]interface{}:
		if token, ok := v["token"].(string); ok {
			return token
		}
	}

	return ""
}
