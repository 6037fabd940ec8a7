// Package oauth1 signs HTTP requests with OAuth 1.0a HMAC-SHA1 as Instapaper
// expects them (RFC 5849 section 3.4).
package oauth1

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// SignatureMethod is the only method Instapaper accepts.
	SignatureMethod = "HMAC-SHA1"
	// Version is sent as oauth_version.
	Version = "1.0"

	paramSignature = "oauth_signature"
)

// Signer produces Authorization header values for one set of credentials.
// Token and TokenSecret are empty for the xAuth access token exchange.
//
// A Signer holds no mutable state and is safe for concurrent use.
type Signer struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string

	// Now and Nonce default to the wall clock and a random UUID when nil.
	Now   func() time.Time
	Nonce func() string
}

// Authorize returns the Authorization header value for a request. form holds
// the form-encoded body parameters; query parameters present in rawURL are
// folded into the signature as well.
func (s *Signer) Authorize(method, rawURL string, form url.Values) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("oauth1: parse url: %w", err)
	}

	oauthParams := s.protocolParams()

	all := url.Values{}
	for k, vs := range u.Query() {
		all[k] = append(all[k], vs...)
	}
	for k, vs := range form {
		all[k] = append(all[k], vs...)
	}
	for k, v := range oauthParams {
		all.Set(k, v)
	}

	base := BaseString(method, NormalizeURL(u), all)
	oauthParams[paramSignature] = Sign(base, s.ConsumerSecret, s.TokenSecret)
	return header(oauthParams), nil
}

func (s *Signer) protocolParams() map[string]string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	nonce := defaultNonce
	if s.Nonce != nil {
		nonce = s.Nonce
	}

	p := map[string]string{
		"oauth_consumer_key":     s.ConsumerKey,
		"oauth_nonce":            nonce(),
		"oauth_signature_method": SignatureMethod,
		"oauth_timestamp":        strconv.FormatInt(now().Unix(), 10),
		"oauth_version":          Version,
	}
	if s.Token != "" {
		p["oauth_token"] = s.Token
	}
	return p
}

func defaultNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Sign computes base64(HMAC-SHA1(key, base)) where the key is the encoded
// consumer secret and token secret joined by '&'. tokenSecret may be empty.
func Sign(base, consumerSecret, tokenSecret string) string {
	key := PercentEncode(consumerSecret) + "&" + PercentEncode(tokenSecret)
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// BaseString builds the signature base string:
// METHOD&enc(normalizedURL)&enc(sorted parameter string).
// oauth_signature is never part of the parameter set.
func BaseString(method, normalizedURL string, params url.Values) string {
	return strings.ToUpper(method) + "&" +
		PercentEncode(normalizedURL) + "&" +
		PercentEncode(ParameterString(params))
}

// ParameterString encodes every key/value pair, sorts by encoded key and then
// encoded value, and joins them as k=v pairs separated by '&'.
func ParameterString(params url.Values) string {
	type pair struct{ k, v string }
	pairs := make([]pair, 0, len(params))
	for k, vs := range params {
		if k == paramSignature {
			continue
		}
		ek := PercentEncode(k)
		for _, v := range vs {
			pairs = append(pairs, pair{ek, PercentEncode(v)})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].k != pairs[j].k {
			return pairs[i].k < pairs[j].k
		}
		return pairs[i].v < pairs[j].v
	})

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.k)
		b.WriteByte('=')
		b.WriteString(p.v)
	}
	return b.String()
}

// NormalizeURL returns scheme://host[:port]/path with scheme and host
// lowercased, default ports removed and query/fragment dropped.
func NormalizeURL(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" {
		if !(scheme == "http" && port == "80") && !(scheme == "https" && port == "443") {
			host += ":" + port
		}
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return scheme + "://" + host + path
}

// header renders params as an OAuth Authorization header with keys sorted.
func header(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("OAuth ")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(PercentEncode(k))
		b.WriteString(`="`)
		b.WriteString(PercentEncode(params[k]))
		b.WriteByte('"')
	}
	return b.String()
}

// ParseAuthorization decodes an OAuth Authorization header into its
// parameters. It is the inverse of the header Authorize produces.
func ParseAuthorization(h string) (map[string]string, error) {
	rest, ok := strings.CutPrefix(h, "OAuth ")
	if !ok {
		return nil, fmt.Errorf("oauth1: not an OAuth header")
	}
	params := make(map[string]string)
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("oauth1: malformed header parameter %q", part)
		}
		v = strings.Trim(v, `"`)
		dk, err := url.PathUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("oauth1: decode %q: %w", k, err)
		}
		dv, err := url.PathUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("oauth1: decode %q: %w", v, err)
		}
		params[dk] = dv
	}
	return params, nil
}
