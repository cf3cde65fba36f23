// Package poller reloads an agenda on a fixed interval and reports only real changes.
package poller

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval between two reloads
const DefaultInterval = 60 * time.Second

// Reloader fetches fresh data and returns its snapshot hash
type Reloader interface {
	Reload(ctx context.Context) (string, error)
}

// ReloadFunc adapts a function to Reloader
type ReloadFunc func(ctx context.Context) (string, error)

func (f ReloadFunc) Reload(ctx context.Context) (string, error) {
	return f(ctx)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// Poller runs Reload every interval and calls OnChange when the hash differs
// from the last one it saw. Errors are logged and the loop goes on.
type Poller struct {
	reloader Reloader
	interval time.Duration
	onChange func(hash string)
	logger   Logger
	trigger  chan struct{}

	mu   sync.Mutex
	last string
}

// New creates a poller. onChange may be nil.
func New(reloader Reloader, interval time.Duration, onChange func(hash string), logger Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		reloader: reloader,
		interval: interval,
		onChange: onChange,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
	}
}

// Seed sets the hash the next cycle is compared with
func (p *Poller) Seed(hash string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = hash
}

// Last returns the last hash seen
func (p *Poller) Last() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Trigger asks for an immediate cycle. Repeated calls before it runs collapse into one.
func (p *Poller) Trigger() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is done
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-p.trigger:
		}
		p.cycle(ctx)
	}
}

func (p *Poller) cycle(ctx context.Context) {
	hash, err := p.reloader.Reload(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Warn("Poller: reload failed: %v", err)
		}
		return
	}

	p.mu.Lock()
	changed := hash != p.last
	p.last = hash
	p.mu.Unlock()

	if changed && p.onChange != nil {
		p.onChange(hash)
	}
}
