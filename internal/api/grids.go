package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/algowalk/steptrace/core"
	"github.com/algowalk/steptrace/grid"
	"github.com/algowalk/steptrace/internal/graphio"
	"github.com/algowalk/steptrace/internal/session"
	"github.com/algowalk/steptrace/search"
)

// GridHandler serves the grid session endpoints.
type GridHandler struct {
	store *session.Store
	log   *logrus.Logger
}

// NewGridHandler creates a GridHandler over the given session store.
func NewGridHandler(store *session.Store, log *logrus.Logger) *GridHandler {
	return &GridHandler{store: store, log: log}
}

// cellPayload is a cell coordinate in request bodies.
type cellPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type createGridRequest struct {
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Obstacles []cellPayload `json:"obstacles"`
	Start     *cellPayload  `json:"start"`
	Goal      *cellPayload  `json:"goal"`
	Diagonals bool          `json:"diagonals"`
}

// gridInfo mirrors the session grid in JSON responses.
type gridInfo struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Diagonals bool        `json:"diagonals"`
	Start     grid.Cell   `json:"start"`
	Goal      grid.Cell   `json:"goal"`
	Obstacles []grid.Cell `json:"obstacles"`
	FreeCells int         `json:"freeCells"`
}

func gridInfoOf(g *grid.Grid) gridInfo {
	return gridInfo{
		Width:     g.Width(),
		Height:    g.Height(),
		Diagonals: g.Conn() == grid.Conn8,
		Start:     g.Start(),
		Goal:      g.Goal(),
		Obstacles: g.Obstacles(),
		FreeCells: g.FreeCount(),
	}
}

// Create handles POST /api/v1/grids.
func (h *GridHandler) Create(c *gin.Context) {
	var req createGridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	var opts []grid.Option
	if req.Diagonals {
		opts = append(opts, grid.WithDiagonals())
	}

	g, err := grid.New(req.Width, req.Height, opts...)
	if err != nil {
		respondDomain(c, h.log, err, "creating grid")

		return
	}

	// Markers move first so obstacles may occupy the default corners.
	if req.Start != nil {
		if err := g.SetStart(req.Start.X, req.Start.Y); err != nil {
			respondDomain(c, h.log, err, "placing start")

			return
		}
	}
	if req.Goal != nil {
		if err := g.SetGoal(req.Goal.X, req.Goal.Y); err != nil {
			respondDomain(c, h.log, err, "placing goal")

			return
		}
	}
	for _, cell := range req.Obstacles {
		if err := g.SetObstacle(cell.X, cell.Y); err != nil {
			respondDomain(c, h.log, err, "placing obstacle")

			return
		}
	}

	sess := h.store.Create(g)

	h.log.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"width":      req.Width,
		"height":     req.Height,
		"obstacles":  len(req.Obstacles),
	}).Info("grid session created")

	c.JSON(http.StatusCreated, gin.H{"sessionId": sess.ID, "grid": gridInfoOf(g)})
}

// Get handles GET /api/v1/grids/:id.
func (h *GridHandler) Get(c *gin.Context) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondDomain(c, h.log, err, "fetching session")

		return
	}

	var info gridInfo
	sess.View(func(g *grid.Grid) { info = gridInfoOf(g) })

	c.JSON(http.StatusOK, gin.H{"sessionId": sess.ID, "grid": info, "runs": sess.RunIDs()})
}

// Delete handles DELETE /api/v1/grids/:id.
func (h *GridHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		respondDomain(c, h.log, err, "deleting session")

		return
	}

	c.Status(http.StatusNoContent)
}

type patchCellRequest struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Type string `json:"type"`
}

// PatchCell handles PATCH /api/v1/grids/:id/cells. Type selects the edit:
// obstacle, clear, start or goal.
func (h *GridHandler) PatchCell(c *gin.Context) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondDomain(c, h.log, err, "fetching session")

		return
	}

	var req patchCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	switch req.Type {
	case "obstacle", "clear", "start", "goal":
	default:
		respondError(c, http.StatusBadRequest, ErrCodeValidationError,
			"cell type must be obstacle, clear, start or goal")

		return
	}

	err = sess.Update(func(g *grid.Grid) error {
		switch req.Type {
		case "obstacle":
			return g.SetObstacle(req.X, req.Y)
		case "clear":
			return g.ClearObstacle(req.X, req.Y)
		case "start":
			return g.SetStart(req.X, req.Y)
		default:
			return g.SetGoal(req.X, req.Y)
		}
	})
	if err != nil {
		respondDomain(c, h.log, err, "updating cell")

		return
	}

	var info gridInfo
	sess.View(func(g *grid.Grid) { info = gridInfoOf(g) })

	c.JSON(http.StatusOK, gin.H{"sessionId": sess.ID, "grid": info})
}

type gridSearchRequest struct {
	Algorithm string `json:"algorithm"`
	Heuristic string `json:"heuristic"`
}

// RunSearch handles POST /api/v1/grids/:id/search. The trace is stored in the
// session for later replay and returned in full.
func (h *GridHandler) RunSearch(c *gin.Context) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondDomain(c, h.log, err, "fetching session")

		return
	}

	var req gridSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	kind, err := search.ParseKind(req.Algorithm)
	if err != nil {
		respondDomain(c, h.log, err, "parsing algorithm")

		return
	}

	switch req.Heuristic {
	case "", "manhattan", "euclidean":
	default:
		respondDomain(c, h.log, fmt.Errorf("%w: %q", graphio.ErrUnknownHeuristic, req.Heuristic),
			"resolving heuristic")

		return
	}

	// Snapshot the graph under the session read lock; the search itself runs
	// unlocked so slow runs never block cell edits.
	var (
		graph       *core.Graph
		heur        search.Heuristic
		start, goal string
		convErr     error
	)
	sess.View(func(g *grid.Grid) {
		graph, convErr = g.Graph()
		start = g.Start().ID()
		goal = g.Goal().ID()

		if kind == search.KindAStar {
			// Manhattan is the classic grid default; euclidean on request.
			if req.Heuristic == "euclidean" {
				heur = g.Euclidean()
			} else {
				heur = g.Manhattan()
			}
		}
	})
	if convErr != nil {
		respondDomain(c, h.log, convErr, "converting grid")

		return
	}

	opts := []search.Option{
		search.WithGoal(goal),
		search.WithContext(c.Request.Context()),
	}
	if heur != nil {
		opts = append(opts, search.WithHeuristic(heur))
	}

	began := time.Now()
	res, err := search.Run(graph, kind, start, opts...)
	if err != nil {
		respondDomain(c, h.log, err, "running search")

		return
	}
	observeSearch(kind, res, time.Since(began))

	runID := sess.AddRun(res)

	h.log.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"run_id":     runID,
		"algorithm":  kind.String(),
		"found":      res.Found,
		"steps":      len(res.Steps),
	}).Info("search completed")

	c.JSON(http.StatusOK, gin.H{"runId": runID, "result": res})
}
