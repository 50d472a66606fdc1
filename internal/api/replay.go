package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/algowalk/steptrace/internal/metrics"
	"github.com/algowalk/steptrace/internal/session"
	"github.com/algowalk/steptrace/replay"
	"github.com/algowalk/steptrace/search"
)

const (
	replayWriteTimeout = 10 * time.Second
	replayReadLimit    = 1024
)

// ReplayHandler upgrades replay requests to WebSocket connections, each
// navigating a stored trace through its own replay.Controller.
type ReplayHandler struct {
	store  *session.Store
	accept *websocket.AcceptOptions
	log    *logrus.Logger
}

// NewReplayHandler creates a ReplayHandler. The CORS origins double as
// WebSocket origin patterns.
func NewReplayHandler(store *session.Store, corsOrigins []string, log *logrus.Logger) *ReplayHandler {
	return &ReplayHandler{store: store, accept: wsAcceptOptions(corsOrigins), log: log}
}

// replayCommand is one client instruction. Op is forward, backward, seek or
// reset; Index is required by seek and ignored otherwise.
type replayCommand struct {
	Op    string `json:"op"`
	Index *int   `json:"index,omitempty"`
}

// replayFrame answers every command (and greets every connection) with the
// cursor position and the step under it.
type replayFrame struct {
	Index int         `json:"index"`
	Total int         `json:"total"`
	Step  search.Step `json:"step"`
}

// replayIssue reports a malformed command without closing the connection.
type replayIssue struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Handle returns the gin handler for GET /grids/:id/runs/:runID/replay.
// appCtx bounds connection lifetime: hijacked WebSockets outlive their HTTP
// request, so server shutdown cancels them through this context.
func (h *ReplayHandler) Handle(appCtx context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := h.store.Get(c.Param("id"))
		if err != nil {
			respondDomain(c, h.log, err, "fetching session")

			return
		}

		res, err := sess.Run(c.Param("runID"))
		if err != nil {
			respondDomain(c, h.log, err, "fetching run")

			return
		}

		ctrl, err := replay.New(res)
		if err != nil {
			respondDomain(c, h.log, err, "opening trace")

			return
		}

		conn, err := websocket.Accept(c.Writer, c.Request, h.accept)
		if err != nil {
			h.log.WithError(err).Error("websocket accept failed")

			return
		}
		defer conn.CloseNow() //nolint:errcheck // best-effort close on teardown

		metrics.ReplayConnections.Inc()
		defer metrics.ReplayConnections.Dec()

		wsCtx, cancel := context.WithCancel(appCtx)
		defer cancel()
		go func() {
			select {
			case <-c.Request.Context().Done():
				cancel()
			case <-wsCtx.Done():
			}
		}()

		h.log.WithFields(logrus.Fields{
			"session_id": sess.ID,
			"run_id":     c.Param("runID"),
			"steps":      ctrl.Len(),
		}).Info("replay connected")

		h.serve(wsCtx, conn, ctrl)
	}
}

// serve runs the command loop until the client disconnects or the context
// ends. The opening frame shows step zero so clients can render immediately.
func (h *ReplayHandler) serve(ctx context.Context, conn *websocket.Conn, ctrl *replay.Controller) {
	conn.SetReadLimit(replayReadLimit)

	if err := h.write(ctx, conn, frameOf(ctrl)); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if status := websocket.CloseStatus(err); status != -1 {
				h.log.WithField("status", status).Debug("replay client disconnected")
			}

			return
		}

		var cmd replayCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			if err := h.write(ctx, conn, replayIssue{Error: "malformed command", Code: ErrCodeInvalidRequest}); err != nil {
				return
			}
			continue
		}

		reply := h.apply(ctrl, cmd)
		if err := h.write(ctx, conn, reply); err != nil {
			return
		}
	}
}

// apply executes one command against the controller. Cursor moves are
// absorbing at the trace ends and seeks clamp, so every valid command yields
// a frame.
func (h *ReplayHandler) apply(ctrl *replay.Controller, cmd replayCommand) any {
	switch cmd.Op {
	case "forward":
		ctrl.StepForward()
	case "backward":
		ctrl.StepBackward()
	case "seek":
		if cmd.Index == nil {
			return replayIssue{Error: "seek requires an index", Code: ErrCodeInvalidRequest}
		}
		ctrl.JumpTo(*cmd.Index)
	case "reset":
		ctrl.Reset()
	default:
		return replayIssue{Error: "op must be forward, backward, seek or reset", Code: ErrCodeInvalidRequest}
	}

	return frameOf(ctrl)
}

func frameOf(ctrl *replay.Controller) replayFrame {
	return replayFrame{Index: ctrl.Index(), Total: ctrl.Len(), Step: ctrl.Current()}
}

func (h *ReplayHandler) write(ctx context.Context, conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, replayWriteTimeout)
	defer cancel()

	return conn.Write(writeCtx, websocket.MessageText, data)
}
