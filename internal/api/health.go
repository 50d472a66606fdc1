package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/algowalk/steptrace/internal/session"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	store     *session.Store
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(store *session.Store, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version, startTime: time.Now()}
}

type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Sessions      int     `json:"sessions"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

// Liveness handles GET /healthz. The service holds everything in memory, so
// liveness is the only meaningful probe.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       h.version,
		Sessions:      h.store.Len(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}
