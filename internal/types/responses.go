package types

// ------------------------------
// Response Types
// ------------------------------

// AccessToken is the token pair returned by oauth/access_token.
type AccessToken struct {
	Token       string
	TokenSecret string
}

// List is the bookmarks/list response. Bookmarks keep the order the API
// returned them in.
type List struct {
	User       User        `json:"user"`
	Bookmarks  []Bookmark  `json:"bookmarks"`
	Highlights []Highlight `json:"highlights"`
	DeleteIDs  []int64     `json:"delete_ids,omitempty"`
}
