package instapaper

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Transports and the HTTP timeout are installed after all options have run,
// so WithHTTPClient may appear before or after WithDebugLogging and
// WithHTTPTimeout.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client. The client is copied
// before its transport is wrapped; the caller's value is left untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a single HTTP request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base url %q", raw)
		}
		c.baseURL = strings.TrimRight(raw, "/")
		return nil
	}
}

// WithToken restores a previously obtained OAuth token. Both values must be
// non-empty; a half token is rejected.
func WithToken(token, tokenSecret string) Option {
	return func(c *Client) error {
		if token == "" || tokenSecret == "" {
			return fmt.Errorf("oauth token and token secret must both be set")
		}
		c.creds.Token = token
		c.creds.TokenSecret = tokenSecret
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent must not be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithDebugLogging logs each request/response at debug level when enabled.
// Passwords and signatures are redacted, but bookmark data is not; do not
// enable it in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// withSigningClock fixes the OAuth timestamp and nonce. Test only.
func withSigningClock(now func() time.Time, nonce func() string) Option {
	return func(c *Client) error {
		c.now = now
		c.nonce = nonce
		return nil
	}
}
