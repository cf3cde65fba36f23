package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

func TestReplaceAppointmentsIsWholesale(t *testing.T) {
	s := New()
	now := time.Now()

	changed := s.ReplaceAppointments([]domain.Appointment{{ID: "a1"}, {ID: "a2"}}, "h1", now)
	assert.True(t, changed)

	changed = s.ReplaceAppointments([]domain.Appointment{{ID: "a3"}}, "h2", now)
	assert.True(t, changed)

	got := s.Appointments()
	require.Len(t, got, 1)
	assert.Equal(t, "a3", got[0].ID)
	assert.Equal(t, "h2", s.Hash())

	assert.False(t, s.ReplaceAppointments([]domain.Appointment{{ID: "a3"}}, "h2", now))
}

func TestReadersGetCopies(t *testing.T) {
	s := New()
	s.ReplaceAppointments([]domain.Appointment{{
		ID:    "a1",
		Items: []domain.ServiceItem{{ItemID: "i1", Status: domain.StatusScheduled}},
	}}, "h", time.Now())

	got, ok := s.Appointment("a1")
	require.True(t, ok)
	got.Items[0].Status = domain.StatusDone

	again, _ := s.Appointment("a1")
	assert.Equal(t, domain.StatusScheduled, again.Items[0].Status)

	_, ok = s.Appointment("missing")
	assert.False(t, ok)
}

func TestFiltersViewAndDraft(t *testing.T) {
	s := New()
	assert.True(t, s.Filters().IsEmpty())

	sel := domain.FilterSelection{ProfessionalIDs: []string{"p1"}}
	s.ReplaceFilters(sel)
	sel.ProfessionalIDs[0] = "mutated"
	assert.Equal(t, []string{"p1"}, s.Filters().ProfessionalIDs)

	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	s.SetView(View{StoreID: "s1", Date: day, Mode: domain.ViewWeek})
	assert.Equal(t, domain.ViewWeek, s.View().Mode)

	_, open := s.Draft()
	assert.False(t, open)
	s.BeginEdit("a1", []domain.ServiceItem{{ServiceID: "sv1"}})
	d, open := s.Draft()
	assert.True(t, open)
	assert.Equal(t, "a1", d.AppointmentID)
	s.ClearDraft()
	_, open = s.Draft()
	assert.False(t, open)
}

func TestStoresAndProfessionals(t *testing.T) {
	s := New()
	s.ReplaceStores([]domain.Store{{ID: "s1", Name: "Centro"}})
	s.ReplaceProfessionals("s1", []domain.Professional{{ID: "p1"}, {ID: "p2"}})

	st, ok := s.Store("s1")
	assert.True(t, ok)
	assert.Equal(t, "Centro", st.Name)
	assert.Len(t, s.Professionals("s1"), 2)
	assert.Empty(t, s.Professionals("s2"))
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.ReplaceAppointments([]domain.Appointment{{ID: "a"}}, "h", time.Now())
		}()
		go func() {
			defer wg.Done()
			_ = s.Appointments()
		}()
	}
	wg.Wait()
	assert.Len(t, s.Appointments(), 1)
}

func TestApplyLoadOrdering(t *testing.T) {
	s := New()
	viewA := View{StoreID: "A", Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Mode: domain.ViewDay}
	viewB := View{StoreID: "B", Date: viewA.Date, Mode: domain.ViewDay}
	snapA := Snapshot{View: viewA, Appointments: []domain.Appointment{{ID: "a1"}}, Hash: "ha"}
	snapB := Snapshot{View: viewB, Appointments: []domain.Appointment{{ID: "b1"}}, Hash: "hb"}

	first := s.BeginLoad()
	applied, changed := s.ApplyLoad(first, nil, snapA)
	assert.True(t, applied)
	assert.True(t, changed)

	// a reload of A starts, then the user opens B and B finishes first
	reload := s.BeginLoad()
	nav := s.BeginLoad()
	applied, _ = s.ApplyLoad(nav, nil, snapB)
	require.True(t, applied)

	applied, changed = s.ApplyLoad(reload, &viewA, snapA)
	assert.False(t, applied)
	assert.False(t, changed)

	// a reload that started after the navigation but still follows A is dropped as well
	late := s.BeginLoad()
	applied, _ = s.ApplyLoad(late, &viewA, snapA)
	assert.False(t, applied)

	snap := s.Snapshot()
	assert.True(t, snap.View.Same(viewB))
	require.Len(t, snap.Appointments, 1)
	assert.Equal(t, "b1", snap.Appointments[0].ID)
	assert.Equal(t, "hb", snap.Hash)
}

func TestApplyLoadConcurrent(t *testing.T) {
	s := New()
	view := View{StoreID: "A", Mode: domain.ViewDay}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		ticket := s.BeginLoad()
		wg.Add(1)
		go func(ticket uint64) {
			defer wg.Done()
			s.ApplyLoad(ticket, nil, Snapshot{
				View:         view,
				Appointments: []domain.Appointment{{ID: "a"}},
				Hash:         "h",
			})
			_ = s.Snapshot()
		}(ticket)
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, "A", snap.View.StoreID)
	assert.Len(t, snap.Appointments, 1)
}
