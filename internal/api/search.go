package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/algowalk/steptrace/internal/graphio"
	"github.com/algowalk/steptrace/search"
)

// SearchHandler serves the stateless one-shot search endpoint.
type SearchHandler struct {
	log *logrus.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(log *logrus.Logger) *SearchHandler {
	return &SearchHandler{log: log}
}

// statelessSearchRequest is an inline graph document plus run parameters.
type statelessSearchRequest struct {
	graphio.Document
	Algorithm string `json:"algorithm"`
	Start     string `json:"start"`
	Goal      string `json:"goal,omitempty"`
	Heuristic string `json:"heuristic,omitempty"`
}

// Run handles POST /api/v1/search: build the request graph, run the
// requested algorithm once, return the full result. Nothing is stored.
func (h *SearchHandler) Run(c *gin.Context) {
	var req statelessSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if len(req.Nodes) == 0 {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "nodes must not be empty")

		return
	}
	if req.Start == "" {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "start is required")

		return
	}

	kind, err := search.ParseKind(req.Algorithm)
	if err != nil {
		respondDomain(c, h.log, err, "parsing algorithm")

		return
	}

	heur, err := req.Document.Heuristic(req.Heuristic)
	if err != nil {
		respondDomain(c, h.log, err, "resolving heuristic")

		return
	}

	graph, err := req.Document.Build()
	if err != nil {
		respondDomain(c, h.log, err, "building graph")

		return
	}

	opts := []search.Option{search.WithContext(c.Request.Context())}
	if req.Goal != "" {
		opts = append(opts, search.WithGoal(req.Goal))
	}
	if heur != nil {
		opts = append(opts, search.WithHeuristic(heur))
	}

	began := time.Now()
	res, err := search.Run(graph, kind, req.Start, opts...)
	if err != nil {
		respondDomain(c, h.log, err, "running search")

		return
	}
	observeSearch(kind, res, time.Since(began))

	h.log.WithFields(logrus.Fields{
		"algorithm": kind.String(),
		"nodes":     len(req.Nodes),
		"edges":     len(req.Edges),
		"found":     res.Found,
	}).Info("stateless search completed")

	c.JSON(http.StatusOK, gin.H{"result": res})
}
