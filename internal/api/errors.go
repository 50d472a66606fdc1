package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/algowalk/steptrace/core"
	"github.com/algowalk/steptrace/grid"
	"github.com/algowalk/steptrace/internal/graphio"
	"github.com/algowalk/steptrace/internal/httputil"
	"github.com/algowalk/steptrace/internal/metrics"
	"github.com/algowalk/steptrace/internal/session"
	"github.com/algowalk/steptrace/replay"
	"github.com/algowalk/steptrace/search"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeValidationError = "validation_error"
	ErrCodeNotFound        = "not_found"
	ErrCodeInternalError   = "internal_error"
)

// respondError writes a standardized JSON error envelope and counts it.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// validationSentinels are the graph, grid and search errors that indicate a
// well-formed request asking for something semantically impossible. They map
// to 422 with the sentinel's own message.
var validationSentinels = []error{
	core.ErrEmptyNodeID,
	core.ErrDuplicateNode,
	core.ErrUnknownNode,
	core.ErrInvalidWeight,
	core.ErrSelfLoop,
	core.ErrDuplicateEdge,
	grid.ErrEmptyGrid,
	grid.ErrOutOfBounds,
	grid.ErrBlocked,
	grid.ErrBadCellID,
	search.ErrUnknownKind,
	search.ErrStartNotFound,
	search.ErrGoalNotFound,
	replay.ErrEmptyTrace,
	graphio.ErrUnknownHeuristic,
}

func isValidationError(err error) bool {
	for _, s := range validationSentinels {
		if errors.Is(err, s) {
			return true
		}
	}

	return false
}

// respondDomain maps sentinel errors onto the error envelope: missing
// sessions and runs to 404, semantic violations to 422, anything unexpected
// to a logged 500.
func respondDomain(c *gin.Context, log *logrus.Logger, err error, action string) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
	case errors.Is(err, session.ErrRunNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "run not found")
	case isValidationError(err):
		respondError(c, http.StatusUnprocessableEntity, ErrCodeValidationError, err.Error())
	default:
		log.WithError(err).Error(action)
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
