// Package resolve decides which professional column and which time a service item belongs to.
//
// Grid placement and filtering both go through Chain, so an item is never shown
// under one professional and filtered as another.
package resolve

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/timeutil"
)

// Resolver is one step of the chain. It returns a professional id when it has an opinion.
type Resolver func(c *Chain, a *domain.Appointment, it domain.ServiceItem) (string, bool)

// DefaultResolvers is the order the agenda uses
var DefaultResolvers = []Resolver{
	ByItem,
	ByAppointment,
	ByLegacyName,
	BySibling,
	FirstVisible,
	FirstOfStore,
}

// Chain resolves items against the professionals of one store
type Chain struct {
	professionals []domain.Professional
	byID          map[string]domain.Professional
	visible       []domain.Column
	loc           *time.Location
	resolvers     []Resolver
	// full item lists by appointment id, for appointments trimmed by filtering
	items map[string][]domain.ServiceItem
}

// New builds a chain. visible is the list of columns currently shown, in display order.
func New(professionals []domain.Professional, visible []domain.Column, loc *time.Location) *Chain {
	if loc == nil {
		loc = time.UTC
	}
	byID := make(map[string]domain.Professional, len(professionals))
	for _, p := range professionals {
		byID[p.ID] = p
	}
	return &Chain{
		professionals: professionals,
		byID:          byID,
		visible:       visible,
		loc:           loc,
		resolvers:     DefaultResolvers,
	}
}

// WithResolvers replaces the resolver list
func (c *Chain) WithResolvers(resolvers ...Resolver) *Chain {
	cp := *c
	cp.resolvers = resolvers
	return &cp
}

// WithItems returns a chain that looks siblings up in the untrimmed item lists.
// Filtering keeps only some items of an appointment, and an unassigned item
// must still fold into the professional of a sibling that was filtered out.
func (c *Chain) WithItems(items map[string][]domain.ServiceItem) *Chain {
	cp := *c
	cp.items = items
	return &cp
}

func (c *Chain) siblings(a *domain.Appointment) []domain.ServiceItem {
	if a.ID != "" {
		if full, ok := c.items[a.ID]; ok {
			return full
		}
	}
	return a.Items
}

// Location returns the store location used for hour overrides
func (c *Chain) Location() *time.Location {
	return c.loc
}

// Known reports whether id belongs to a professional of the store
func (c *Chain) Known(id string) bool {
	_, ok := c.byID[strings.TrimSpace(id)]
	return ok
}

// Professional looks up a store professional
func (c *Chain) Professional(id string) (domain.Professional, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Resolve returns the column an item belongs to. It never fails: a store without
// professionals yields NoPreference.
func (c *Chain) Resolve(a *domain.Appointment, it domain.ServiceItem) domain.ProfessionalRef {
	for _, r := range c.resolvers {
		if id, ok := r(c, a, it); ok {
			return domain.RealProfessional(id)
		}
	}
	return domain.NoPreference()
}

// Time returns when an item happens: its own hour on the appointment's local date,
// or the appointment time.
func (c *Chain) Time(a *domain.Appointment, it domain.ServiceItem) time.Time {
	return ItemTime(a, it, c.loc)
}

// ItemTime applies an item hour override in loc
func ItemTime(a *domain.Appointment, it domain.ServiceItem, loc *time.Location) time.Time {
	base := a.ScheduledAt.In(loc)
	if strings.TrimSpace(it.Hour) == "" {
		return base
	}
	at, err := timeutil.At(base, it.Hour)
	if err != nil {
		return base
	}
	return at
}

// ByItem uses the item's own professional
func ByItem(c *Chain, _ *domain.Appointment, it domain.ServiceItem) (string, bool) {
	id := strings.TrimSpace(it.ProfessionalID)
	return id, id != "" && c.Known(id)
}

// ByAppointment uses the appointment default professional
func ByAppointment(c *Chain, a *domain.Appointment, _ domain.ServiceItem) (string, bool) {
	id := strings.TrimSpace(a.ProfessionalID)
	return id, id != "" && c.Known(id)
}

// ByLegacyName matches the free-text professional name
func ByLegacyName(c *Chain, a *domain.Appointment, _ domain.ServiceItem) (string, bool) {
	name := strings.TrimSpace(a.ProfessionalName)
	if name == "" {
		return "", false
	}
	for _, p := range c.professionals {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) {
			return p.ID, true
		}
	}
	return "", false
}

// BySibling folds an unassigned item into the professional of another item at the same time
func BySibling(c *Chain, a *domain.Appointment, it domain.ServiceItem) (string, bool) {
	at := c.Time(a, it)
	for _, sib := range c.siblings(a) {
		if sib == it {
			continue
		}
		if !c.Time(a, sib).Equal(at) {
			continue
		}
		if id, ok := ByItem(c, a, sib); ok {
			return id, true
		}
	}
	return "", false
}

// FirstVisible picks the first real column currently shown
func FirstVisible(c *Chain, _ *domain.Appointment, _ domain.ServiceItem) (string, bool) {
	for _, col := range c.visible {
		if id, ok := col.Ref.ID(); ok {
			return id, true
		}
	}
	return "", false
}

// FirstOfStore picks the first professional of the store regardless of filters
func FirstOfStore(c *Chain, _ *domain.Appointment, _ domain.ServiceItem) (string, bool) {
	if len(c.professionals) == 0 {
		return "", false
	}
	return c.professionals[0].ID, true
}
