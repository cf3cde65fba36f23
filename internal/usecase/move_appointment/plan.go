package move_appointment

import (
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/integrations/backend"
)

// Scope tells whether a drop retargets the whole appointment or some of its items
type Scope string

const (
	ScopeWhole   Scope = "whole"
	ScopePartial Scope = "partial"
)

// Plan is the write a drop turns into
type Plan struct {
	Scope   Scope
	ItemIDs []string
	Payload *backend.AppointmentPayload
}

// BuildPlan decides the scope of a drop and builds the update payload.
//
// The card's items are intersected with the appointment's items. All of them
// (or an appointment without item ids) is a whole move that rewrites
// scheduledAt; a subset is a partial move that only sends the item fields and
// never touches scheduledAt. A no-preference target never puts a professional
// id on the wire.
func BuildPlan(a domain.Appointment, cardItemIDs []string, target time.Time, ref domain.ProfessionalRef, loc *time.Location) Plan {
	full := a.ItemIDs()
	subset := intersect(full, cardItemIDs)
	payload := &backend.AppointmentPayload{StoreID: a.StoreID}

	if len(full) == 0 || len(subset) == 0 || len(subset) == len(full) {
		if !sameSlot(a.ScheduledAt, target, loc) {
			at := target
			payload.ScheduledAt = &at
		}
		payload.ProfissionalID = backend.ProfessionalID(ref)
		return Plan{Scope: ScopeWhole, ItemIDs: full, Payload: payload}
	}

	at := target
	payload.ServiceItemIDs = subset
	payload.ServiceHour = target.In(loc).Format(domain.TimeFormat)
	payload.ServiceScheduledAt = &at
	if id, ok := ref.ID(); ok {
		payload.ServiceProfissionalID = id
	}
	return Plan{Scope: ScopePartial, ItemIDs: subset, Payload: payload}
}

// intersect keeps the ids of full that are also in picked, in full's order
func intersect(full, picked []string) []string {
	want := make(map[string]struct{}, len(picked))
	for _, id := range picked {
		want[id] = struct{}{}
	}
	out := make([]string, 0, len(picked))
	for _, id := range full {
		if _, ok := want[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func sameSlot(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Format(domain.DateFormat) == b.Format(domain.DateFormat) &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute()
}
