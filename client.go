// Package instapaper is a client for the Instapaper public API
// (https://www.instapaper.com/api).
//
// Instapaper uses OAuth 1.0a with xAuth: a consumer key and secret are issued
// to the application, and a user's username and password are exchanged once
// for an OAuth token via Authenticate. Persist Client.Credentials and later
// rebuild the client with New and WithToken instead of authenticating again.
package instapaper

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mycelian/instapaper/internal/api"
	sdkerrors "github.com/mycelian/instapaper/internal/errors"
	"github.com/mycelian/instapaper/internal/oauth1"
	"github.com/mycelian/instapaper/internal/types"
)

// DefaultBaseURL is the Instapaper API host.
const DefaultBaseURL = "https://www.instapaper.com"

const defaultUserAgent = "mycelian-instapaper-go"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client performs signed calls for one set of credentials. Credentials never
// change after construction, so a Client is safe for concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	creds     types.Credentials
	userAgent string
	debug     bool
	timeout   time.Duration // from WithHTTPTimeout; zero keeps http's own

	// signing seams; nil means wall clock and random nonce
	now   func() time.Time
	nonce func() string
}

// New constructs a Client for the given consumer credentials. Pass WithToken
// to restore a previously obtained OAuth token.
func New(consumerKey, consumerSecret string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   DefaultBaseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		creds:     types.Credentials{ConsumerKey: consumerKey, ConsumerSecret: consumerSecret},
		userAgent: defaultUserAgent,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		c.debug = true
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := c.creds.Validate(); err != nil {
		return nil, &AuthenticationError{Op: "new client", Err: err}
	}

	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	c.wrapTransport()
	return c, nil
}

// Authenticate exchanges a username and password for an OAuth token and
// returns a client holding it. Invalid credentials, a malformed token
// response and transport failures are all reported as *AuthenticationError.
func Authenticate(ctx context.Context, username, password, consumerKey, consumerSecret string, opts ...Option) (*Client, error) {
	c, err := New(consumerKey, consumerSecret, opts...)
	if err != nil {
		return nil, err
	}

	// xAuth is signed with the consumer pair only.
	consumerOnly := c.signerFor(types.Credentials{ConsumerKey: consumerKey, ConsumerSecret: consumerSecret})
	tok, err := api.AccessToken(ctx, c.http, c.baseURL, consumerOnly, types.AccessTokenRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("username", username).Msg("obtained instapaper oauth token")

	authed := *c
	authed.creds.Token = tok.Token
	authed.creds.TokenSecret = tok.TokenSecret
	return &authed, nil
}

// wrapTransport installs the user-agent, metrics and (optionally) debug
// transports on a private copy of the http.Client so a caller-supplied client
// is never mutated.
func (c *Client) wrapTransport() {
	hc := *c.http
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.debug {
		base = &debugTransport{base: base}
	}
	base = &metricsTransport{base: base}
	hc.Transport = &userAgentTransport{base: base, userAgent: c.userAgent}
	c.http = &hc
}

// userAgentTransport wraps an http.RoundTripper to set the User-Agent header.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(cloned)
}

// Credentials returns a copy of the client's credentials, including the OAuth
// token once authenticated.
func (c *Client) Credentials() Credentials { return c.creds }

// Authenticated reports whether the client holds an OAuth token.
func (c *Client) Authenticated() bool { return c.creds.Authenticated() }

func (c *Client) signerFor(creds types.Credentials) *oauth1.Signer {
	return &oauth1.Signer{
		ConsumerKey:    creds.ConsumerKey,
		ConsumerSecret: creds.ConsumerSecret,
		Token:          creds.Token,
		TokenSecret:    creds.TokenSecret,
		Now:            c.now,
		Nonce:          c.nonce,
	}
}

// authorized returns the signer for an authenticated-only call, or an
// *AuthenticationError without touching the network when there is no token.
func (c *Client) authorized(op string) (*oauth1.Signer, error) {
	if !c.creds.Authenticated() {
		return nil, &AuthenticationError{Op: op, Err: sdkerrors.ErrNotAuthenticated}
	}
	return c.signerFor(c.creds), nil
}

// --------------------------------------------------------------------
// Account operations - delegated to internal/api
// --------------------------------------------------------------------

// Verify returns the user the OAuth token belongs to.
func (c *Client) Verify(ctx context.Context) (*User, error) {
	s, err := c.authorized("verify credentials")
	if err != nil {
		return nil, err
	}
	return api.VerifyCredentials(ctx, c.http, c.baseURL, s)
}

// --------------------------------------------------------------------
// Bookmark operations - delegated to internal/api
// --------------------------------------------------------------------

// Add saves url to the user's unread list. Pass an empty title or
// description to let Instapaper fill in its own.
func (c *Client) Add(ctx context.Context, url, title, description string) (*Bookmark, error) {
	s, err := c.authorized("add bookmark")
	if err != nil {
		return nil, err
	}
	return api.AddBookmark(ctx, c.http, c.baseURL, s, types.AddBookmarkRequest{URL: url, Title: title, Description: description})
}

// Bookmarks lists the bookmarks and highlights in the unread folder.
func (c *Client) Bookmarks(ctx context.Context) (*List, error) {
	return c.BookmarksIn(ctx, ListOptions{})
}

// BookmarksIn lists a folder ("unread", "starred", "archive" or a numeric
// folder id). Options are passed to the API as given.
func (c *Client) BookmarksIn(ctx context.Context, opts ListOptions) (*List, error) {
	s, err := c.authorized("list bookmarks")
	if err != nil {
		return nil, err
	}
	return api.ListBookmarks(ctx, c.http, c.baseURL, s, opts)
}

// Archive moves a bookmark to the archive folder.
func (c *Client) Archive(ctx context.Context, bookmarkID int64) (*Bookmark, error) {
	s, err := c.authorized("archive bookmark")
	if err != nil {
		return nil, err
	}
	return api.ArchiveBookmark(ctx, c.http, c.baseURL, s, types.BookmarkIDRequest{BookmarkID: bookmarkID})
}
