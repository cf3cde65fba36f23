package checkin

import (
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// Pending keeps prepared check-in forms until the user submits or dismisses them
type Pending struct {
	mu    sync.RWMutex
	forms map[string]domain.CheckinForm
	ttl   time.Duration
	now   func() time.Time
}

// NewPending creates a registry. Forms older than ttl are swept; ttl 0 keeps them.
func NewPending(ttl time.Duration) *Pending {
	return &Pending{
		forms: make(map[string]domain.CheckinForm),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores a form. PreparedAt defaults to now.
func (p *Pending) Put(form domain.CheckinForm) {
	if form.PreparedAt.IsZero() {
		form.PreparedAt = p.now()
	}
	p.sweep()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.forms[form.ID] = form
}

// List returns the forms of a user, oldest first
func (p *Pending) List(userID string) []domain.CheckinForm {
	p.sweep()

	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]domain.CheckinForm, 0)
	for _, f := range p.forms {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PreparedAt.Before(out[j].PreparedAt) })
	return out
}

// Get returns one form of a user
func (p *Pending) Get(userID, id string) (domain.CheckinForm, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	f, ok := p.forms[id]
	if !ok || f.UserID != userID {
		return domain.CheckinForm{}, false
	}
	return f, true
}

// Remove dismisses a form. It reports whether the form existed.
func (p *Pending) Remove(userID, id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	f, ok := p.forms[id]
	if !ok || f.UserID != userID {
		return false
	}
	delete(p.forms, id)
	return true
}

func (p *Pending) sweep() {
	if p.ttl <= 0 {
		return
	}
	cutoff := p.now().Add(-p.ttl)

	p.mu.Lock()
	defer p.mu.Unlock()
	for id, f := range p.forms {
		if f.PreparedAt.Before(cutoff) {
			delete(p.forms, id)
		}
	}
}
