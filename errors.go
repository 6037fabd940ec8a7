package instapaper

import (
	"errors"

	sdkerrors "github.com/mycelian/instapaper/internal/errors"
)

// The two error kinds returned by the SDK. Both unwrap to their cause.
type (
	AuthenticationError = sdkerrors.AuthenticationError
	APIError            = sdkerrors.APIError
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrNotAuthenticated = sdkerrors.ErrNotAuthenticated
	ErrEmptyResponse    = sdkerrors.ErrEmptyResponse
	ErrMalformedToken   = sdkerrors.ErrMalformedToken
)

// IsAuthenticationError reports whether err is or wraps an *AuthenticationError.
func IsAuthenticationError(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// IsAPIError reports whether err is or wraps an *APIError.
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
