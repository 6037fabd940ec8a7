package api

import (
	"fmt"
	"net/http"
	"net/url"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// stubAuth records what it was asked to sign.
type stubAuth struct {
	method string
	url    string
	form   url.Values
}

func (s *stubAuth) Authorize(method, rawURL string, form url.Values) (string, error) {
	s.method, s.url, s.form = method, rawURL, form
	return `OAuth oauth_signature="stub"`, nil
}

type failingAuth struct{}

func (failingAuth) Authorize(string, string, url.Values) (string, error) {
	return "", fmt.Errorf("cannot sign")
}
