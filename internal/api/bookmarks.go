package api

import (
	"context"
	"encoding/json"

	sdkerrors "github.com/mycelian/instapaper/internal/errors"
	"github.com/mycelian/instapaper/internal/types"
)

// AddBookmark saves a URL and returns the bookmark Instapaper created.
func AddBookmark(ctx context.Context, httpClient types.HTTPClient, baseURL string, auth types.Authorizer, req types.AddBookmarkRequest) (*types.Bookmark, error) {
	const op = "add bookmark"
	if err := req.Validate(); err != nil {
		return nil, sdkerrors.NewValidationError(op, err)
	}
	status, body, err := postSigned(ctx, httpClient, baseURL, auth, ActionAddBookmark, req.Form())
	if err != nil {
		return nil, sdkerrors.NewNetworkError(op, err)
	}
	if !ok(status) {
		return nil, sdkerrors.NewHTTPError(op, status, body)
	}

	var b types.Bookmark
	if err := decodeFirst(op, status, body, "bookmark", &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBookmarks lists one folder. Parameters are passed through as given;
// no further pages are fetched.
func ListBookmarks(ctx context.Context, httpClient types.HTTPClient, baseURL string, auth types.Authorizer, req types.ListBookmarksRequest) (*types.List, error) {
	const op = "list bookmarks"
	if err := req.Validate(); err != nil {
		return nil, sdkerrors.NewValidationError(op, err)
	}
	status, body, err := postSigned(ctx, httpClient, baseURL, auth, ActionListBookmarks, req.Form())
	if err != nil {
		return nil, sdkerrors.NewNetworkError(op, err)
	}
	if !ok(status) {
		return nil, sdkerrors.NewHTTPError(op, status, body)
	}
	if code, msg, found := sdkerrors.ParseErrorBody(body); found {
		return nil, &sdkerrors.APIError{Op: op, StatusCode: status, Code: code, Message: msg, Body: string(body)}
	}

	var l types.List
	if err := json.Unmarshal(body, &l); err != nil {
		return nil, sdkerrors.NewDecodeError(op, status, body, err)
	}
	return &l, nil
}

// ArchiveBookmark moves a bookmark to the archive folder.
func ArchiveBookmark(ctx context.Context, httpClient types.HTTPClient, baseURL string, auth types.Authorizer, req types.BookmarkIDRequest) (*types.Bookmark, error) {
	const op = "archive bookmark"
	if err := req.Validate(); err != nil {
		return nil, sdkerrors.NewValidationError(op, err)
	}
	status, body, err := postSigned(ctx, httpClient, baseURL, auth, ActionArchiveBookmark, req.Form())
	if err != nil {
		return nil, sdkerrors.NewNetworkError(op, err)
	}
	if !ok(status) {
		return nil, sdkerrors.NewHTTPError(op, status, body)
	}

	var b types.Bookmark
	if err := decodeFirst(op, status, body, "bookmark", &b); err != nil {
		return nil, err
	}
	return &b, nil
}
