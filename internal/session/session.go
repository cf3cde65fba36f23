// Package session keeps one agenda session per staff user: its state, the
// latest bearer token and the poller that keeps the state fresh.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/actorctx"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/poller"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

// Session is the agenda of one user
type Session struct {
	UserID string
	State  *state.State

	mu       sync.Mutex
	actor    domain.Actor
	version  uint64
	hash     string
	lastSeen time.Time

	poller *poller.Poller
	cancel context.CancelFunc
}

// Actor returns the actor of the latest request
func (s *Session) Actor() domain.Actor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actor
}

// Version increments every time the observed snapshot changes
func (s *Session) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Observe records a snapshot hash and returns the resulting version
func (s *Session) Observe(hash string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hash != "" && hash != s.hash {
		s.hash = hash
		s.version++
	}
	return s.version
}

// Context returns ctx carrying the session's actor, for background calls
func (s *Session) Context(ctx context.Context) context.Context {
	return actorctx.WithActor(ctx, s.Actor())
}

// Refresh asks the poller for an immediate reload
func (s *Session) Refresh() {
	if s.poller != nil {
		s.poller.Trigger()
	}
}

func (s *Session) touch(actor domain.Actor, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if actor.Token != "" {
		s.actor = actor
	}
	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
