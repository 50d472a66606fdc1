package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algowalk/steptrace/grid"
	"github.com/algowalk/steptrace/internal/session"
	"github.com/algowalk/steptrace/search"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func testGrid(t *testing.T) *grid.Grid {
	t.Helper()

	g, err := grid.New(3, 3)
	require.NoError(t, err)

	return g
}

func TestStore_CreateAndGet(t *testing.T) {
	st := session.NewStore(time.Minute, 8, 4, testLogger())

	sess := st.Create(testGrid(t))
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = st.Get("no-such-session")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	st := session.NewStore(time.Minute, 8, 4, testLogger())
	sess := st.Create(testGrid(t))

	require.NoError(t, st.Delete(sess.ID))
	assert.Equal(t, 0, st.Len())

	assert.ErrorIs(t, st.Delete(sess.ID), session.ErrNotFound)
}

func TestStore_PruneExpired(t *testing.T) {
	ttl := time.Minute
	st := session.NewStore(ttl, 8, 4, testLogger())
	sess := st.Create(testGrid(t))

	// Still fresh: nothing to prune.
	assert.Equal(t, 0, st.PruneExpired(time.Now()))
	assert.Equal(t, 1, st.Len())

	// Beyond the TTL the session is gone.
	assert.Equal(t, 1, st.PruneExpired(time.Now().Add(ttl+time.Second)))
	assert.Equal(t, 0, st.Len())

	_, err := st.Get(sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestStore_GetRefreshesTTL(t *testing.T) {
	ttl := time.Minute
	st := session.NewStore(ttl, 8, 4, testLogger())
	sess := st.Create(testGrid(t))

	before := sess.LastSeen()
	_, err := st.Get(sess.ID)
	require.NoError(t, err)

	assert.False(t, sess.LastSeen().Before(before))
}

func TestStore_EvictsOldestOverCapacity(t *testing.T) {
	st := session.NewStore(time.Minute, 2, 4, testLogger())

	first := st.Create(testGrid(t))
	second := st.Create(testGrid(t))
	third := st.Create(testGrid(t))

	assert.Equal(t, 2, st.Len())

	_, err := st.Get(first.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)

	_, err = st.Get(second.ID)
	assert.NoError(t, err)

	_, err = st.Get(third.ID)
	assert.NoError(t, err)
}

func TestSession_ViewAndUpdate(t *testing.T) {
	st := session.NewStore(time.Minute, 8, 4, testLogger())
	sess := st.Create(testGrid(t))

	err := sess.Update(func(g *grid.Grid) error {
		return g.SetObstacle(1, 1)
	})
	require.NoError(t, err)

	var blocked bool
	sess.View(func(g *grid.Grid) {
		blocked = g.IsObstacle(1, 1)
	})
	assert.True(t, blocked)
}

func TestSession_RunStorageEvictsOldest(t *testing.T) {
	st := session.NewStore(time.Minute, 8, 2, testLogger())
	sess := st.Create(testGrid(t))

	res := func(cost float64) *search.Result {
		return &search.Result{Found: true, TotalCost: cost, Path: []string{"0,0"}}
	}

	id1 := sess.AddRun(res(1))
	id2 := sess.AddRun(res(2))
	id3 := sess.AddRun(res(3))

	assert.Equal(t, []string{id2, id3}, sess.RunIDs())

	_, err := sess.Run(id1)
	assert.ErrorIs(t, err, session.ErrRunNotFound)

	got, err := sess.Run(id3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.TotalCost)
}

func TestStore_JanitorStopsOnCancel(t *testing.T) {
	st := session.NewStore(time.Minute, 8, 4, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		st.Janitor(ctx, time.Millisecond)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancellation")
	}
}
