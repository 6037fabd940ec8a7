package types

import (
	"net/url"
	"strconv"
)

// ------------------------------
// Request Types
// ------------------------------

// Folder identifiers understood by bookmarks/list besides numeric folder ids.
const (
	FolderUnread  = "unread"
	FolderStarred = "starred"
	FolderArchive = "archive"
)

// DefaultListLimit is the largest page bookmarks/list will return.
const DefaultListLimit = 500

// AccessTokenRequest holds the xAuth parameters for oauth/access_token.
type AccessTokenRequest struct {
	Username string
	Password string
}

// Form returns the x_auth_* body parameters.
func (r AccessTokenRequest) Form() url.Values {
	return url.Values{
		"x_auth_username": {r.Username},
		"x_auth_password": {r.Password},
		"x_auth_mode":     {"client_auth"},
	}
}

// AddBookmarkRequest holds parameters for bookmarks/add.
type AddBookmarkRequest struct {
	URL         string
	Title       string
	Description string
}

// Form omits empty title and description so Instapaper fills in its own.
func (r AddBookmarkRequest) Form() url.Values {
	f := url.Values{"url": {r.URL}}
	if r.Title != "" {
		f.Set("title", r.Title)
	}
	if r.Description != "" {
		f.Set("description", r.Description)
	}
	return f
}

// ListBookmarksRequest holds parameters for bookmarks/list. Zero values fall
// back to the unread folder and DefaultListLimit. Have is passed through
// untouched (comma separated "id:hash" pairs the caller already holds).
type ListBookmarksRequest struct {
	FolderID string
	Limit    int
	Have     string
}

// WithDefaults returns r with empty fields replaced by their defaults.
func (r ListBookmarksRequest) WithDefaults() ListBookmarksRequest {
	if r.FolderID == "" {
		r.FolderID = FolderUnread
	}
	if r.Limit == 0 {
		r.Limit = DefaultListLimit
	}
	return r
}

// Form renders the request after applying defaults.
func (r ListBookmarksRequest) Form() url.Values {
	r = r.WithDefaults()
	f := url.Values{
		"folder_id": {r.FolderID},
		"limit":     {strconv.Itoa(r.Limit)},
	}
	if r.Have != "" {
		f.Set("have", r.Have)
	}
	return f
}

// BookmarkIDRequest identifies a single bookmark (bookmarks/archive).
type BookmarkIDRequest struct {
	BookmarkID int64
}

// Form returns the bookmark_id parameter.
func (r BookmarkIDRequest) Form() url.Values {
	return url.Values{"bookmark_id": {strconv.FormatInt(r.BookmarkID, 10)}}
}
