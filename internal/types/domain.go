package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Credentials are the consumer pair issued to an application plus the user's
// OAuth token pair. Token and TokenSecret are both empty until the user has
// authenticated.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
}

// Authenticated reports whether both halves of the OAuth token are present.
func (c Credentials) Authenticated() bool {
	return c.Token != "" && c.TokenSecret != ""
}

// Bookmark is a saved URL in the user's reading list.
type Bookmark struct {
	Type              string  `json:"type"`
	BookmarkID        int64   `json:"bookmark_id"`
	URL               string  `json:"url"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Hash              string  `json:"hash"`
	Progress          float64 `json:"progress"`
	ProgressTimestamp float64 `json:"progress_timestamp"`
	Time              float64 `json:"time"`
	Starred           string  `json:"starred"`
	PrivateSource     string  `json:"private_source"`
}

// IsStarred reports whether the API flagged the bookmark as starred ("1").
func (b Bookmark) IsStarred() bool { return b.Starred == "1" }

// User is the account the OAuth token belongs to.
type User struct {
	Type                 string `json:"type"`
	UserID               int64  `json:"user_id"`
	Username             string `json:"username"`
	SubscriptionIsActive string `json:"subscription_is_active"`
}

// Highlight is a passage the user highlighted inside a bookmark.
type Highlight struct {
	Type        string  `json:"type"`
	HighlightID int64   `json:"highlight_id"`
	BookmarkID  int64   `json:"bookmark_id"`
	Text        string  `json:"text"`
	Note        *string `json:"note"`
	Time        int64   `json:"time"`
	Position    int64   `json:"position"`
}
