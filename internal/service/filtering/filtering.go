// Package filtering derives the visible part of the agenda from a filter selection.
// Everything here is pure: same input, same output.
package filtering

import (
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/resolve"
)

// KPIs are the totals shown above the grid
type KPIs struct {
	Count    int          `json:"count"`
	Expected domain.Money `json:"expected"`
	Received domain.Money `json:"received"`
	Pending  domain.Money `json:"pending"`
}

// Result is the filtered agenda
type Result struct {
	Appointments []domain.Appointment
	Columns      []domain.Column
	KPIs         KPIs
	StatusCounts map[domain.Status]int
	KindCounts   map[domain.ProfessionalKind]int
	Chain        *resolve.Chain
}

// VisibleColumns applies the kind filter, then the id filter, and appends the
// no-preference column when it stays visible
func VisibleColumns(sel domain.FilterSelection, professionals []domain.Professional) []domain.Column {
	cols := make([]domain.Column, 0, len(professionals)+1)
	for _, p := range professionals {
		if sel.Kind != "" && p.Kind != sel.Kind {
			continue
		}
		if !sel.HasProfessional(p.ID) {
			continue
		}
		cols = append(cols, domain.ColumnFor(p))
	}
	if sel.ShowsNoPreference() {
		cols = append(cols, domain.NoPreferenceColumn())
	}
	return cols
}

// Apply filters appointments at item level. An item survives when its status is
// selected and it resolves to a visible column. Appointments keep only surviving
// items and are dropped when none survive. The returned chain still sees every
// item, so the grid resolves kept items exactly as filtering did.
func Apply(sel domain.FilterSelection, appointments []domain.Appointment, professionals []domain.Professional, loc *time.Location) Result {
	sel = sel.Normalize()
	cols := VisibleColumns(sel, professionals)

	full := make(map[string][]domain.ServiceItem, len(appointments))
	for i := range appointments {
		if id := appointments[i].ID; id != "" && len(appointments[i].Items) > 1 {
			full[id] = appointments[i].Items
		}
	}
	chain := resolve.New(professionals, cols, loc).WithItems(full)

	visible := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		visible[c.Ref.Key()] = struct{}{}
	}

	res := Result{
		Appointments: make([]domain.Appointment, 0, len(appointments)),
		Columns:      cols,
		StatusCounts: make(map[domain.Status]int, len(domain.StatusCycle)),
		KindCounts:   make(map[domain.ProfessionalKind]int, len(domain.ProfessionalKinds)),
		Chain:        chain,
	}
	for _, s := range domain.StatusCycle {
		res.StatusCounts[s] = 0
	}
	for _, p := range professionals {
		res.KindCounts[p.Kind]++
	}

	for i := range appointments {
		a := &appointments[i]

		kept := make([]domain.ServiceItem, 0, len(a.Items))
		var value domain.Money
		for _, it := range a.ServiceItems() {
			if _, ok := visible[chain.Resolve(a, it).Key()]; !ok {
				continue
			}
			status := a.EffectiveStatus(it)
			res.StatusCounts[status]++
			if !sel.HasStatus(status) {
				continue
			}
			kept = append(kept, it)
			value += it.Price
		}
		if len(kept) == 0 {
			continue
		}

		out := *a
		if len(a.Items) > 0 {
			out.Items = kept
		}
		res.Appointments = append(res.Appointments, out)

		res.KPIs.Count++
		res.KPIs.Expected += value
		if a.Paid {
			res.KPIs.Received += value
		}
	}
	res.KPIs.Pending = res.KPIs.Expected - res.KPIs.Received

	return res
}
