// Package state holds the in-memory agenda of one session.
//
// Readers get copies. Writers go through the Replace* methods, which swap whole
// collections: a reload never merges into what was there before.
package state

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// View is what the session is currently looking at
type View struct {
	StoreID string
	Date    time.Time
	Mode    domain.ViewMode
}

// Same reports whether two views show the same store, mode and day
func (v View) Same(o View) bool {
	return v.StoreID == o.StoreID && v.Mode == o.Mode && v.Date.Equal(o.Date)
}

// Snapshot is one consistent load of a view
type Snapshot struct {
	View          View
	Professionals []domain.Professional
	Appointments  []domain.Appointment
	Hash          string
	LoadedAt      time.Time
}

// Draft is the edit-session scratch data of the appointment form
type Draft struct {
	AppointmentID string
	Services      []domain.ServiceItem
}

// State is the Domain Store of one agenda session
type State struct {
	mu sync.RWMutex

	stores        []domain.Store
	professionals map[string][]domain.Professional
	appointments  []domain.Appointment
	hash          string
	loadedAt      time.Time

	filters domain.FilterSelection
	view    View
	draft   *Draft

	// load ordering: tickets handed out and the latest one installed
	tickets uint64
	applied uint64
}

// New creates an empty state
func New() *State {
	return &State{
		professionals: make(map[string][]domain.Professional),
		filters:       domain.DefaultFilterSelection(),
	}
}

// Stores returns a copy of the loaded stores
func (s *State) Stores() []domain.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Store, len(s.stores))
	copy(out, s.stores)
	return out
}

// Store looks up a loaded store
func (s *State) Store(id string) (domain.Store, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.stores {
		if st.ID == id {
			return st, true
		}
	}
	return domain.Store{}, false
}

// Professionals returns the professionals of a store, in backend order
func (s *State) Professionals(storeID string) []domain.Professional {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.professionals[storeID]
	out := make([]domain.Professional, len(src))
	copy(out, src)
	return out
}

// Appointments returns a deep copy of the loaded appointments
func (s *State) Appointments() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAppointments(s.appointments)
}

// Appointment looks up a loaded appointment
func (s *State) Appointment(id string) (domain.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return cloneAppointment(a), true
		}
	}
	return domain.Appointment{}, false
}

// Hash returns the snapshot hash of the last loaded appointments
func (s *State) Hash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hash
}

// LoadedAt returns when appointments were last replaced
func (s *State) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Filters returns the active filter selection
func (s *State) Filters() domain.FilterSelection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFilters(s.filters)
}

// View returns the current view
func (s *State) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Draft returns the edit-session data, if an edit is open
func (s *State) Draft() (Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.draft == nil {
		return Draft{}, false
	}
	d := Draft{AppointmentID: s.draft.AppointmentID}
	d.Services = append([]domain.ServiceItem(nil), s.draft.Services...)
	return d, true
}

// ReplaceStores swaps the store list
func (s *State) ReplaceStores(stores []domain.Store) {
	cp := make([]domain.Store, len(stores))
	copy(cp, stores)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores = cp
}

// ReplaceProfessionals swaps the professionals of one store
func (s *State) ReplaceProfessionals(storeID string, professionals []domain.Professional) {
	cp := make([]domain.Professional, len(professionals))
	copy(cp, professionals)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.professionals[storeID] = cp
}

// ReplaceAppointments swaps the whole appointment collection and records its hash.
// It reports whether the hash differs from the previous one.
func (s *State) ReplaceAppointments(appointments []domain.Appointment, hash string, at time.Time) bool {
	cp := cloneAppointments(appointments)

	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.hash != hash
	s.appointments = cp
	s.hash = hash
	s.loadedAt = at
	return changed
}

// BeginLoad hands out the ticket of a load about to start.
// Later loads get larger tickets.
func (s *State) BeginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets++
	return s.tickets
}

// ApplyLoad installs the view, its professionals and its appointments in one step.
//
// The snapshot is dropped when a load that started later was already installed.
// A reload passes the view it was started for as follow; it is also dropped
// when the session has moved to another view since. applied reports whether the
// snapshot was installed, changed whether its hash differs from the previous one.
func (s *State) ApplyLoad(ticket uint64, follow *View, snap Snapshot) (applied, changed bool) {
	pros := make([]domain.Professional, len(snap.Professionals))
	copy(pros, snap.Professionals)
	appts := cloneAppointments(snap.Appointments)

	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket <= s.applied {
		return false, false
	}
	if follow != nil && !s.view.Same(*follow) {
		return false, false
	}

	changed = s.hash != snap.Hash
	s.applied = ticket
	s.view = snap.View
	s.professionals[snap.View.StoreID] = pros
	s.appointments = appts
	s.hash = snap.Hash
	s.loadedAt = snap.LoadedAt
	return true, changed
}

// Snapshot returns the current view with its professionals and appointments,
// read under one lock
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pros := make([]domain.Professional, len(s.professionals[s.view.StoreID]))
	copy(pros, s.professionals[s.view.StoreID])
	return Snapshot{
		View:          s.view,
		Professionals: pros,
		Appointments:  cloneAppointments(s.appointments),
		Hash:          s.hash,
		LoadedAt:      s.loadedAt,
	}
}

// ReplaceFilters swaps the filter selection
func (s *State) ReplaceFilters(f domain.FilterSelection) {
	cp := cloneFilters(f)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = cp
}

// SetView records the store/date/mode being displayed
func (s *State) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}

// BeginEdit opens an edit session for an appointment ("" for a new one)
func (s *State) BeginEdit(appointmentID string, services []domain.ServiceItem) {
	d := &Draft{AppointmentID: appointmentID}
	d.Services = append([]domain.ServiceItem(nil), services...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = d
}

// ClearDraft closes the edit session
func (s *State) ClearDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}

func cloneAppointments(src []domain.Appointment) []domain.Appointment {
	out := make([]domain.Appointment, len(src))
	for i, a := range src {
		out[i] = cloneAppointment(a)
	}
	return out
}

func cloneAppointment(a domain.Appointment) domain.Appointment {
	if a.Items != nil {
		a.Items = append([]domain.ServiceItem(nil), a.Items...)
	}
	return a
}

func cloneFilters(f domain.FilterSelection) domain.FilterSelection {
	f.Statuses = append([]domain.Status(nil), f.Statuses...)
	f.ProfessionalIDs = append([]string(nil), f.ProfessionalIDs...)
	return f
}
