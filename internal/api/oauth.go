package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	sdkerrors "github.com/mycelian/instapaper/internal/errors"
	"github.com/mycelian/instapaper/internal/types"
)

// AccessToken exchanges a username and password for an OAuth token pair
// (xAuth). auth must be built from the consumer credentials alone. Every
// failure, including transport errors, is an *AuthenticationError.
func AccessToken(ctx context.Context, httpClient types.HTTPClient, baseURL string, auth types.Authorizer, req types.AccessTokenRequest) (*types.AccessToken, error) {
	const op = "access token"
	if err := req.Validate(); err != nil {
		return nil, &sdkerrors.AuthenticationError{Op: op, Err: err}
	}

	status, body, err := postSigned(ctx, httpClient, baseURL, auth, ActionAccessToken, req.Form())
	if err != nil {
		return nil, &sdkerrors.AuthenticationError{Op: op, StatusCode: status, Err: err}
	}
	if !ok(status) {
		httpErr := sdkerrors.NewHTTPError(op, status, body)
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil, httpErr
		}
		return nil, &sdkerrors.AuthenticationError{Op: op, StatusCode: status, Err: httpErr}
	}

	// The body is form encoded, e.g. oauth_token_secret=...&oauth_token=...
	values, err := url.ParseQuery(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, &sdkerrors.AuthenticationError{Op: op, StatusCode: status, Err: fmt.Errorf("%w: %v", sdkerrors.ErrMalformedToken, err)}
	}
	tok := &types.AccessToken{
		Token:       values.Get("oauth_token"),
		TokenSecret: values.Get("oauth_token_secret"),
	}
	if tok.Token == "" || tok.TokenSecret == "" {
		return nil, &sdkerrors.AuthenticationError{Op: op, StatusCode: status, Err: fmt.Errorf("%w: %q", sdkerrors.ErrMalformedToken, string(body))}
	}
	return tok, nil
}
