// Package session stores per-client grids and the search runs recorded
// against them. Sessions are uuid-keyed, expire after a TTL of inactivity and
// are capped in number; each session additionally caps its stored runs.
package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/algowalk/steptrace/grid"
	"github.com/algowalk/steptrace/internal/metrics"
	"github.com/algowalk/steptrace/search"
)

var (
	// ErrNotFound indicates an unknown or expired session ID.
	ErrNotFound = errors.New("session: session not found")

	// ErrRunNotFound indicates an unknown or evicted run ID.
	ErrRunNotFound = errors.New("session: run not found")
)

// Session owns one grid and the results of searches run over it. Sessions are
// independently locked: grid access goes through View/Update, run storage
// through AddRun/Run, and neither blocks other sessions.
type Session struct {
	ID string

	lastSeen atomic.Int64 // unix nanoseconds

	mu       sync.RWMutex
	grid     *grid.Grid
	runs     map[string]*search.Result
	runOrder []string
	runCap   int
}

func (s *Session) touch(now time.Time) { s.lastSeen.Store(now.UnixNano()) }

// LastSeen reports when the session was last created, fetched or mutated.
func (s *Session) LastSeen() time.Time { return time.Unix(0, s.lastSeen.Load()) }

// View runs fn with shared read access to the session grid. fn must not
// retain the grid past its return; snapshots (grid.Graph, grid.Coordinates)
// are safe to keep.
func (s *Session) View(fn func(g *grid.Grid)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.grid)
}

// Update runs fn with exclusive access to the session grid.
func (s *Session) Update(fn func(g *grid.Grid) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.grid)
}

// AddRun stores a search result under a fresh run ID and returns the ID. When
// the per-session cap is reached the oldest stored run is evicted.
func (s *Session) AddRun(res *search.Result) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.runOrder) >= s.runCap {
		oldest := s.runOrder[0]
		s.runOrder = s.runOrder[1:]
		delete(s.runs, oldest)
	}

	id := uuid.NewString()
	s.runs[id] = res
	s.runOrder = append(s.runOrder, id)

	return id
}

// Run returns the stored result for the given run ID.
func (s *Session) Run(id string) (*search.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}

	return res, nil
}

// RunIDs lists stored run IDs, oldest first.
func (s *Session) RunIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.runOrder))
	copy(out, s.runOrder)

	return out
}

// Store is the mutex-guarded session registry.
type Store struct {
	ttl    time.Duration
	limit  int
	runCap int
	log    *logrus.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates a Store evicting sessions idle longer than ttl, holding at
// most limit sessions and at most runCap runs per session.
func NewStore(ttl time.Duration, limit, runCap int, log *logrus.Logger) *Store {
	return &Store{
		ttl:      ttl,
		limit:    limit,
		runCap:   runCap,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session owning the given grid. The least recently
// used session is evicted when the store is full.
func (st *Store) Create(g *grid.Grid) *Session {
	sess := &Session{
		ID:     uuid.NewString(),
		grid:   g,
		runs:   make(map[string]*search.Result),
		runCap: st.runCap,
	}
	sess.touch(time.Now())

	st.mu.Lock()
	defer st.mu.Unlock()

	for len(st.sessions) >= st.limit {
		st.evictOldestLocked()
	}

	st.sessions[sess.ID] = sess
	metrics.ActiveSessions.Set(float64(len(st.sessions)))

	return sess
}

// Get returns the session with the given ID and refreshes its TTL.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	sess.touch(time.Now())

	return sess, nil
}

// Delete removes a session. Unknown IDs report ErrNotFound.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrNotFound
	}

	delete(st.sessions, id)
	metrics.ActiveSessions.Set(float64(len(st.sessions)))

	return nil
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.sessions)
}

// PruneExpired removes every session idle longer than the TTL as of now and
// reports how many were removed.
func (st *Store) PruneExpired(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	pruned := 0
	for id, sess := range st.sessions {
		if now.Sub(sess.LastSeen()) > st.ttl {
			delete(st.sessions, id)
			pruned++
		}
	}

	if pruned > 0 {
		metrics.ActiveSessions.Set(float64(len(st.sessions)))
	}

	return pruned
}

// Janitor prunes expired sessions every interval until ctx is cancelled.
func (st *Store) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.PruneExpired(time.Now()); n > 0 {
				st.log.WithField("count", n).Info("pruned expired sessions")
			}
		}
	}
}

// evictOldestLocked drops the session with the oldest LastSeen. Caller holds
// the write lock.
func (st *Store) evictOldestLocked() {
	var (
		oldestID string
		oldestAt time.Time
	)
	for id, sess := range st.sessions {
		at := sess.LastSeen()
		if oldestID == "" || at.Before(oldestAt) {
			oldestID, oldestAt = id, at
		}
	}

	if oldestID == "" {
		return
	}

	delete(st.sessions, oldestID)
	st.log.WithField("session_id", oldestID).Info("evicted session over capacity")
}
