package api

import (
	"context"

	sdkerrors "github.com/mycelian/instapaper/internal/errors"
	"github.com/mycelian/instapaper/internal/types"
)

// VerifyCredentials returns the user the token belongs to.
func VerifyCredentials(ctx context.Context, httpClient types.HTTPClient, baseURL string, auth types.Authorizer) (*types.User, error) {
	const op = "verify credentials"
	status, body, err := postSigned(ctx, httpClient, baseURL, auth, ActionVerifyCredentials, nil)
	if err != nil {
		return nil, sdkerrors.NewNetworkError(op, err)
	}
	if !ok(status) {
		return nil, sdkerrors.NewHTTPError(op, status, body)
	}

	var u types.User
	if err := decodeFirst(op, status, body, "user", &u); err != nil {
		return nil, err
	}
	return &u, nil
}
