package replay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algowalk/steptrace/core"
	"github.com/algowalk/steptrace/replay"
	"github.com/algowalk/steptrace/search"
)

// chainTrace runs BFS over A-B-C-D-E and returns the result: a six-step
// trace (one start step plus five visits).
func chainTrace(t *testing.T) *search.Result {
	t.Helper()
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D", "E"}
	for _, id := range ids {
		require.NoError(t, g.AddNode(id))
	}
	for i := 1; i < len(ids); i++ {
		require.NoError(t, g.AddEdge(ids[i-1], ids[i], 1))
	}
	res, err := search.BFS(g, "A")
	require.NoError(t, err)
	require.Len(t, res.Steps, 6)
	return res
}

func TestNew_RejectsEmptyTraces(t *testing.T) {
	_, err := replay.New(nil)
	assert.ErrorIs(t, err, replay.ErrEmptyTrace)

	_, err = replay.New(&search.Result{})
	assert.ErrorIs(t, err, replay.ErrEmptyTrace)

	_, err = replay.FromSteps(nil)
	assert.ErrorIs(t, err, replay.ErrEmptyTrace)
}

func TestController_InitialState(t *testing.T) {
	res := chainTrace(t)
	ctl, err := replay.New(res)
	require.NoError(t, err)

	assert.Equal(t, 6, ctl.Len())
	assert.Equal(t, 0, ctl.Index())
	assert.True(t, ctl.AtStart())
	assert.False(t, ctl.AtEnd())
	assert.Equal(t, res.Steps[0], ctl.Current())
	assert.Same(t, res, ctl.Result())
}

func TestController_ForwardStopsAtLastStep(t *testing.T) {
	ctl, err := replay.New(chainTrace(t))
	require.NoError(t, err)

	for i := 1; i < ctl.Len(); i++ {
		st := ctl.StepForward()
		assert.Equal(t, i, st.Index)
	}
	require.True(t, ctl.AtEnd())

	// Further forward calls absorb: same step, same position.
	last := ctl.Current()
	assert.Equal(t, last, ctl.StepForward())
	assert.Equal(t, last, ctl.StepForward())
	assert.Equal(t, ctl.Len()-1, ctl.Index())
}

func TestController_BackwardStopsAtStepZero(t *testing.T) {
	ctl, err := replay.New(chainTrace(t))
	require.NoError(t, err)

	ctl.JumpTo(2)
	assert.Equal(t, 1, ctl.StepBackward().Index)
	assert.Equal(t, 0, ctl.StepBackward().Index)
	assert.Equal(t, 0, ctl.StepBackward().Index, "step 0 absorbs further backward calls")
	assert.True(t, ctl.AtStart())
}

func TestController_JumpToClamps(t *testing.T) {
	ctl, err := replay.New(chainTrace(t))
	require.NoError(t, err)

	assert.Equal(t, 3, ctl.JumpTo(3).Index)
	assert.Equal(t, 0, ctl.JumpTo(-7).Index)
	assert.Equal(t, ctl.Len()-1, ctl.JumpTo(9000).Index)
	assert.True(t, ctl.AtEnd())
}

// TestController_JumpBackwardRoundTrip: jumping to n and stepping backward n
// times must land exactly where Reset lands, for every n in the trace.
func TestController_JumpBackwardRoundTrip(t *testing.T) {
	ctl, err := replay.New(chainTrace(t))
	require.NoError(t, err)
	home := ctl.Reset()

	for n := 0; n < ctl.Len(); n++ {
		ctl.JumpTo(n)
		for i := 0; i < n; i++ {
			ctl.StepBackward()
		}
		assert.Equal(t, 0, ctl.Index(), "n=%d", n)
		assert.Equal(t, home, ctl.Current(), "n=%d", n)
	}
}

func TestController_IndependentCursorsShareOneTrace(t *testing.T) {
	res := chainTrace(t)
	a, err := replay.New(res)
	require.NoError(t, err)
	b, err := replay.New(res)
	require.NoError(t, err)

	a.JumpTo(4)
	assert.Equal(t, 4, a.Index())
	assert.Equal(t, 0, b.Index(), "cursors must not interfere")
}

func TestFromSteps_CarriesNoResult(t *testing.T) {
	res := chainTrace(t)
	ctl, err := replay.FromSteps(res.Steps)
	require.NoError(t, err)

	assert.Nil(t, ctl.Result())
	assert.Equal(t, res.Steps[0], ctl.Current())
	assert.Equal(t, len(res.Steps), ctl.Len())
}
