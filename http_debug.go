package instapaper

import (
	"net/http"
	"net/http/httputil"
	"os"
	"regexp"

	"github.com/rs/zerolog/log"
)

// debugTransport logs every request and response at debug level.
//
// Enable it with WithDebugLogging(true) or by exporting INSTAPAPER_DEBUG=true
// (DEBUG=true also works). Dumps include bookmark data; the xAuth password,
// the OAuth signature and the OAuth token and token secret are replaced with
// REDACTED before logging.
//
//	export INSTAPAPER_DEBUG=true
//	go run main.go  # Client will now log all HTTP traffic
type debugTransport struct{ base http.RoundTripper }

var (
	redactPassword  = regexp.MustCompile(`(x_auth_password=)[^&\s]*`)
	redactSignature = regexp.MustCompile(`(oauth_signature=")[^"]*`)
	redactToken     = regexp.MustCompile(`(oauth_token=")[^"]*`)
	// access_token response body and any form-encoded echo of it
	redactTokenPair = regexp.MustCompile(`(oauth_token(?:_secret)?=)[^"&\s]+`)
)

func redact(dump []byte) string {
	dump = redactPassword.ReplaceAll(dump, []byte("${1}REDACTED"))
	dump = redactSignature.ReplaceAll(dump, []byte("${1}REDACTED"))
	dump = redactToken.ReplaceAll(dump, []byte("${1}REDACTED"))
	dump = redactTokenPair.ReplaceAll(dump, []byte("${1}REDACTED"))
	return string(dump)
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", redact(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", redact(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether INSTAPAPER_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("INSTAPAPER_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
