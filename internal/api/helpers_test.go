package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/algowalk/steptrace/internal/api"
	"github.com/algowalk/steptrace/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// newTestRouter builds the full router over a fresh store so tests exercise
// real routes and middleware.
func newTestRouter() (http.Handler, *session.Store) {
	store := session.NewStore(time.Minute, 64, 8, testLogger())
	r := api.NewRouter(context.Background(), &api.RouterDeps{
		Log:         testLogger(),
		Store:       store,
		CORSOrigins: []string{"*"},
		Version:     "test",
	})

	return r, store
}

// doRequest performs an HTTP request against the router and returns the
// recorder.
func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, http.NoBody)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}
