package api

import (
	"net/url"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/algowalk/steptrace/internal/metrics"
	"github.com/algowalk/steptrace/internal/middleware"
	"github.com/algowalk/steptrace/search"
)

func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		if cid := c.GetString("client_request_id"); cid != "" {
			fields["client_request_id"] = cid
		}
		log.WithFields(fields).Info("request")
	}
}

// wsAcceptOptions converts CORS origins into WebSocket accept options. A lone
// "*" disables origin verification to match the CORS wildcard; otherwise the
// origin hosts become match patterns.
func wsAcceptOptions(origins []string) *websocket.AcceptOptions {
	if len(origins) == 1 && origins[0] == "*" {
		return &websocket.AcceptOptions{InsecureSkipVerify: true}
	}

	patterns := make([]string, 0, len(origins))
	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
			continue
		}
		patterns = append(patterns, o)
	}

	return &websocket.AcceptOptions{OriginPatterns: patterns}
}

// observeSearch records one finished run in the search metrics.
func observeSearch(kind search.Kind, res *search.Result, dur time.Duration) {
	outcome := "found"
	if !res.Found {
		outcome = "not_found"
	}

	metrics.SearchesTotal.WithLabelValues(kind.String(), outcome).Inc()
	metrics.SearchDuration.WithLabelValues(kind.String()).Observe(dur.Seconds())
	metrics.SearchSteps.WithLabelValues(kind.String()).Observe(float64(len(res.Steps)))
}
