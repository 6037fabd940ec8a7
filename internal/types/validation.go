package types

import (
	"errors"
	"net/http"
	"net/url"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Authorizer produces the OAuth Authorization header for a request.
type Authorizer interface {
	Authorize(method, rawURL string, form url.Values) (string, error)
}

// ------------------------------
// Validation
// ------------------------------

var folderIDPattern = regexp.MustCompile(`^(unread|starred|archive|[0-9]+)$`)

// Validate checks that the consumer pair is present and that the token pair
// is either complete or absent.
func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ConsumerKey, validation.Required),
		validation.Field(&c.ConsumerSecret, validation.Required),
		validation.Field(&c.Token, validation.When(c.TokenSecret != "", validation.Required.Error("required when token secret is set"))),
		validation.Field(&c.TokenSecret, validation.When(c.Token != "", validation.Required.Error("required when token is set"))),
	)
}

// Validate requires a username; Instapaper accounts may have no password.
func (r AccessTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
	)
}

// Validate requires an absolute http(s) URL.
func (r AddBookmarkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required, validation.By(absoluteHTTPURL)),
	)
}

// Validate checks the request after defaults have been applied.
func (r ListBookmarksRequest) Validate() error {
	r = r.WithDefaults()
	return validation.ValidateStruct(&r,
		validation.Field(&r.FolderID, validation.Match(folderIDPattern).Error("must be unread, starred, archive or a numeric folder id")),
		validation.Field(&r.Limit, validation.Min(1), validation.Max(DefaultListLimit)),
	)
}

// Validate requires a positive bookmark id.
func (r BookmarkIDRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookmarkID, validation.Required, validation.Min(int64(1))),
	)
}

func absoluteHTTPURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an absolute http or https URL")
	}
	return nil
}
