// Package errors defines the two error kinds the SDK returns: authentication
// failures and everything else that went wrong talking to the API.
package errors

import "fmt"

var (
	// ErrNotAuthenticated is returned by authenticated-only calls on a client
	// that holds no OAuth token. No request is sent.
	ErrNotAuthenticated = fmt.Errorf("client has no oauth token")

	// ErrEmptyResponse is returned when a call that must yield a record got
	// an empty result array.
	ErrEmptyResponse = fmt.Errorf("empty response")

	// ErrMalformedToken is returned when oauth/access_token answered 2xx
	// without both oauth_token and oauth_token_secret.
	ErrMalformedToken = fmt.Errorf("oauth tokens not both in response")
)

// AuthenticationError reports rejected or missing credentials.
type AuthenticationError struct {
	Op         string
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: authentication failed: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: authentication failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *AuthenticationError) Unwrap() error { return e.Err }

// APIError reports a failed API call: non-2xx status, an Instapaper error
// object, an undecodable body, a transport failure or an invalid request.
type APIError struct {
	Op         string
	StatusCode int    // 0 for transport and validation failures
	Code       int    // Instapaper error_code, when the body carried one
	Message    string // Instapaper message, when the body carried one
	Body       string // raw response body, truncated
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Code != 0:
		return fmt.Sprintf("%s: instapaper error %d: %s", e.Op, e.Code, e.Message)
	case e.StatusCode > 0 && e.Err != nil:
		return fmt.Sprintf("%s: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *APIError) Unwrap() error { return e.Err }
