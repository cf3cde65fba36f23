package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/poller"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
)

const (
	DefaultIdleTTL       = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Options tune the registry
type Options struct {
	PollInterval time.Duration
	IdleTTL      time.Duration
}

// Registry creates sessions on first use and drops idle ones
type Registry struct {
	root     context.Context
	reloader AgendaReloader
	filters  FilterLoader
	opts     Options
	logger   Logger
	metrics  Metrics
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates a registry. Pollers live until root is cancelled or their session is swept.
func NewRegistry(root context.Context, reloader AgendaReloader, filters FilterLoader, opts Options, logger Logger, metrics Metrics) *Registry {
	if opts.PollInterval <= 0 {
		opts.PollInterval = poller.DefaultInterval
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = DefaultIdleTTL
	}
	return &Registry{
		root:     root,
		reloader: reloader,
		filters:  filters,
		opts:     opts,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Acquire returns the session of actor, creating it on first use.
// The actor's token replaces the one stored in the session.
func (r *Registry) Acquire(ctx context.Context, actor domain.Actor) *Session {
	if s, ok := r.Get(actor.UserID); ok {
		s.touch(actor, r.now())
		return s
	}

	fresh := r.build(ctx, actor)
	pctx, cancel := context.WithCancel(r.root)
	fresh.cancel = cancel

	r.mu.Lock()
	if s, ok := r.sessions[actor.UserID]; ok {
		r.mu.Unlock()
		cancel()
		s.touch(actor, r.now())
		return s
	}
	r.sessions[actor.UserID] = fresh
	count := len(r.sessions)
	r.mu.Unlock()

	go fresh.poller.Run(pctx)

	r.logger.Info("Session: opened for user %s (%d active)", actor.UserID, count)
	if r.metrics != nil {
		r.metrics.SetActiveSessions(count)
	}
	return fresh
}

// Get returns an existing session
func (r *Registry) Get(userID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	return s, ok
}

// Len returns the number of open sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes sessions idle for longer than the TTL and returns how many it closed
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.opts.IdleTTL)

	r.mu.Lock()
	var idle []*Session
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			idle = append(idle, s)
			delete(r.sessions, id)
		}
	}
	count := len(r.sessions)
	r.mu.Unlock()

	for _, s := range idle {
		s.stop()
		r.logger.Info("Session: closed idle session of user %s", s.UserID)
	}
	if len(idle) > 0 && r.metrics != nil {
		r.metrics.SetActiveSessions(count)
	}
	return len(idle)
}

// Run sweeps idle sessions until ctx is done, then closes every session
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(DefaultSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *Registry) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		s.stop()
		delete(r.sessions, id)
	}
	if r.metrics != nil {
		r.metrics.SetActiveSessions(0)
	}
}

func (r *Registry) build(ctx context.Context, actor domain.Actor) *Session {
	s := &Session{UserID: actor.UserID, State: state.New()}
	s.touch(actor, r.now())
	if r.filters != nil {
		s.State.ReplaceFilters(r.filters.Load(ctx, actor.UserID))
	}

	reload := poller.ReloadFunc(func(ctx context.Context) (string, error) {
		resp, err := r.reloader.Reload(s.Context(ctx), s.State, load_agenda.TriggerPoll)
		if err != nil {
			return "", err
		}
		return resp.Hash, nil
	})
	s.poller = poller.New(reload, r.opts.PollInterval, func(hash string) {
		s.Observe(hash)
	}, r.logger)
	return s
}
