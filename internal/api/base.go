package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	sdkerrors "github.com/mycelian/instapaper/internal/errors"
	"github.com/mycelian/instapaper/internal/types"
)

// PathPrefix is prepended to every action name to form the endpoint path.
const PathPrefix = "/api/1.1/"

// Actions, relative to PathPrefix.
const (
	ActionAccessToken       = "oauth/access_token"
	ActionVerifyCredentials = "account/verify_credentials"
	ActionAddBookmark       = "bookmarks/add"
	ActionListBookmarks     = "bookmarks/list"
	ActionArchiveBookmark   = "bookmarks/archive"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 16 << 20

// postSigned sends form to action as a signed, form-encoded POST and returns
// the status code and body. Transport failures are returned unwrapped so each
// caller can classify them.
func postSigned(ctx context.Context, httpClient types.HTTPClient, baseURL string, auth types.Authorizer, action string, form url.Values) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	endpoint := strings.TrimRight(baseURL, "/") + PathPrefix + action

	authz, err := auth.Authorize(http.MethodPost, endpoint, form)
	if err != nil {
		return 0, nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", authz)

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, data, nil
}

func ok(status int) bool { return status >= 200 && status < 300 }

// decodeFirst decodes the first element of a result array whose "type" is
// want (or unset). Instapaper answers most calls with such an array and may
// report failures as an {"type":"error"} element even on a 2xx status.
func decodeFirst[T any](op string, status int, body []byte, want string, out *T) error {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return sdkerrors.NewDecodeError(op, status, body, err)
	}
	if code, msg, found := sdkerrors.ParseErrorBody(body); found {
		return &sdkerrors.APIError{Op: op, StatusCode: status, Code: code, Message: msg, Body: string(body)}
	}
	for _, raw := range items {
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return sdkerrors.NewDecodeError(op, status, body, err)
		}
		if head.Type != "" && head.Type != want {
			continue
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return sdkerrors.NewDecodeError(op, status, body, err)
		}
		return nil
	}
	return &sdkerrors.APIError{Op: op, StatusCode: status, Body: string(body), Err: fmt.Errorf("no %s in result: %w", want, sdkerrors.ErrEmptyResponse)}
}
