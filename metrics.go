package instapaper

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mycelian/instapaper/internal/api"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "instapaper_client",
			Name:      "requests_total",
			Help:      "API requests by action and HTTP status code (\"error\" when no response).",
		},
		[]string{"action", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "instapaper_client",
			Name:      "request_duration_seconds",
			Help:      "API request latency by action.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"action"},
	)
)

// metricsTransport records requestsTotal and requestDuration per API action.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	action := actionFromPath(req.URL.Path)
	start := time.Now()
	resp, err := mt.base.RoundTrip(req)
	requestDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(action, "error").Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(action, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// actionFromPath maps /api/1.1/bookmarks/add to "bookmarks/add". Paths
// outside the API are reported as "other" to keep label cardinality bounded.
func actionFromPath(path string) string {
	i := strings.Index(path, api.PathPrefix)
	if i < 0 {
		return "other"
	}
	switch action := path[i+len(api.PathPrefix):]; action {
	case api.ActionAccessToken, api.ActionVerifyCredentials, api.ActionAddBookmark,
		api.ActionListBookmarks, api.ActionArchiveBookmark:
		return action
	default:
		return "other"
	}
}
