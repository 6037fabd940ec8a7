package instapaper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/mycelian/instapaper/internal/oauth1"
	"github.com/mycelian/instapaper/internal/types"
)

// fakeInstapaper is an in-memory Instapaper that checks every OAuth signature
// the way the real service does.
type fakeInstapaper struct {
	consumerKey, consumerSecret string
	username, password          string
	token, tokenSecret          string

	srv  *httptest.Server
	hits atomic.Int64

	mu       sync.Mutex
	nextID   int64
	unread   []types.Bookmark
	archived []types.Bookmark
}

func newFakeInstapaper(t *testing.T) *fakeInstapaper {
	t.Helper()
	f := &fakeInstapaper{
		consumerKey:    "ckey",
		consumerSecret: "csecret",
		username:       "reader@example.com",
		password:       "p&ss word+1",
		token:          "tok",
		tokenSecret:    "toksecret",
		nextID:         100,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/1.1/oauth/access_token", f.accessToken)
	mux.HandleFunc("/api/1.1/account/verify_credentials", f.verifyCredentials)
	mux.HandleFunc("/api/1.1/bookmarks/add", f.add)
	mux.HandleFunc("/api/1.1/bookmarks/list", f.list)
	mux.HandleFunc("/api/1.1/bookmarks/archive", f.archive)
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// client builds a Client pointed at the fake.
func (f *fakeInstapaper) client(t *testing.T, opts ...Option) *Client {
	t.Helper()
	base := []Option{WithBaseURL(f.srv.URL), WithHTTPClient(f.srv.Client())}
	c, err := New(f.consumerKey, f.consumerSecret, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// signed reports whether r carries a valid signature. withToken selects
// whether the request must be signed with the user's token.
func (f *fakeInstapaper) signed(r *http.Request, withToken bool) bool {
	if r.Method != http.MethodPost || r.ParseForm() != nil {
		return false
	}
	params, err := oauth1.ParseAuthorization(r.Header.Get("Authorization"))
	if err != nil {
		return false
	}
	if params["oauth_consumer_key"] != f.consumerKey || params["oauth_signature_method"] != "HMAC-SHA1" || params["oauth_version"] != "1.0" {
		return false
	}
	tokenSecret := ""
	if withToken {
		if params["oauth_token"] != f.token {
			return false
		}
		tokenSecret = f.tokenSecret
	} else if _, ok := params["oauth_token"]; ok {
		return false
	}

	all := url.Values{}
	for k, v := range r.PostForm {
		all[k] = append([]string(nil), v...)
	}
	for k, v := range params {
		if k != "oauth_signature" {
			all.Set(k, v)
		}
	}
	u := &url.URL{Scheme: "http", Host: r.Host, Path: r.URL.Path}
	base := oauth1.BaseString(r.Method, oauth1.NormalizeURL(u), all)
	return oauth1.Sign(base, f.consumerSecret, tokenSecret) == params["oauth_signature"]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status, code int, msg string) {
	writeJSON(w, status, []map[string]any{{"type": "error", "error_code": code, "message": msg}})
}

func (f *fakeInstapaper) accessToken(w http.ResponseWriter, r *http.Request) {
	if !f.signed(r, false) {
		http.Error(w, "Invalid signature.", http.StatusUnauthorized)
		return
	}
	if r.PostForm.Get("x_auth_mode") != "client_auth" ||
		r.PostForm.Get("x_auth_username") != f.username ||
		r.PostForm.Get("x_auth_password") != f.password {
		http.Error(w, "Invalid xAuth credentials.", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("oauth_token_secret=" + url.QueryEscape(f.tokenSecret) + "&oauth_token=" + url.QueryEscape(f.token)))
}

func (f *fakeInstapaper) verifyCredentials(w http.ResponseWriter, r *http.Request) {
	if !f.signed(r, true) {
		writeAPIError(w, http.StatusForbidden, 403, "Invalid token")
		return
	}
	writeJSON(w, http.StatusOK, []types.User{{Type: "user", UserID: 54321, Username: f.username, SubscriptionIsActive: "1"}})
}

func (f *fakeInstapaper) add(w http.ResponseWriter, r *http.Request) {
	if !f.signed(r, true) {
		writeAPIError(w, http.StatusForbidden, 403, "Invalid token")
		return
	}
	u := r.PostForm.Get("url")
	if u == "" {
		writeAPIError(w, http.StatusBadRequest, 1240, "Invalid URL specified")
		return
	}
	title := r.PostForm.Get("title")
	if title == "" {
		title = u
	}

	f.mu.Lock()
	f.nextID++
	b := types.Bookmark{
		Type:        "bookmark",
		BookmarkID:  f.nextID,
		URL:         u,
		Title:       title,
		Description: r.PostForm.Get("description"),
		Hash:        "h" + strconv.FormatInt(f.nextID, 10),
		Starred:     "0",
	}
	f.unread = append(f.unread, b)
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, []types.Bookmark{b})
}

func (f *fakeInstapaper) list(w http.ResponseWriter, r *http.Request) {
	if !f.signed(r, true) {
		writeAPIError(w, http.StatusForbidden, 403, "Invalid token")
		return
	}
	limit, err := strconv.Atoi(r.PostForm.Get("limit"))
	if err != nil || limit < 1 {
		writeAPIError(w, http.StatusBadRequest, 1000, "Invalid limit")
		return
	}

	f.mu.Lock()
	var src []types.Bookmark
	switch r.PostForm.Get("folder_id") {
	case "unread":
		src = f.unread
	case "archive":
		src = f.archived
	default:
		f.mu.Unlock()
		writeAPIError(w, http.StatusBadRequest, 1242, "Invalid folder_id")
		return
	}
	out := append([]types.Bookmark{}, src...)
	f.mu.Unlock()

	if len(out) > limit {
		out = out[:limit]
	}
	writeJSON(w, http.StatusOK, types.List{
		User:       types.User{Type: "user", UserID: 54321, Username: f.username},
		Bookmarks:  out,
		Highlights: []types.Highlight{},
	})
}

func (f *fakeInstapaper) archive(w http.ResponseWriter, r *http.Request) {
	if !f.signed(r, true) {
		writeAPIError(w, http.StatusForbidden, 403, "Invalid token")
		return
	}
	id, _ := strconv.ParseInt(r.PostForm.Get("bookmark_id"), 10, 64)

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.unread {
		if b.BookmarkID == id {
			f.unread = append(f.unread[:i], f.unread[i+1:]...)
			f.archived = append(f.archived, b)
			writeJSON(w, http.StatusOK, []types.Bookmark{b})
			return
		}
	}
	writeAPIError(w, http.StatusBadRequest, 1241, "Invalid or missing bookmark_id")
}
