package domain

import (
	"sort"
	"strings"
)

// FilterSelection is the active agenda filter of one user
type FilterSelection struct {
	Statuses            []Status
	ProfessionalIDs     []string
	IncludeNoPreference bool
	Kind                ProfessionalKind
}

// DefaultFilterSelection shows everything
func DefaultFilterSelection() FilterSelection {
	return FilterSelection{}
}

// Normalize drops unknown statuses and blank ids, then sorts and de-duplicates both sets
func (f FilterSelection) Normalize() FilterSelection {
	statusSet := make(map[Status]struct{}, len(f.Statuses))
	for _, s := range f.Statuses {
		s = Status(strings.TrimSpace(string(s)))
		if s.IsSettable() {
			statusSet[s] = struct{}{}
		}
	}
	statuses := make([]Status, 0, len(statusSet))
	for s := range statusSet {
		statuses = append(statuses, s)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })

	idSet := make(map[string]struct{}, len(f.ProfessionalIDs))
	for _, id := range f.ProfessionalIDs {
		if id = strings.TrimSpace(id); id != "" && id != NoPreferenceKey {
			idSet[id] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	kind := ProfessionalKind("")
	if strings.TrimSpace(string(f.Kind)) != "" {
		kind = NormalizeKind(string(f.Kind))
	}

	return FilterSelection{
		Statuses:            statuses,
		ProfessionalIDs:     ids,
		IncludeNoPreference: f.IncludeNoPreference && len(ids) > 0,
		Kind:                kind,
	}
}

// IsEmpty reports whether no filter is active
func (f FilterSelection) IsEmpty() bool {
	return len(f.Statuses) == 0 && len(f.ProfessionalIDs) == 0 && f.Kind == ""
}

// HasStatus reports whether s passes the status filter
func (f FilterSelection) HasStatus(s Status) bool {
	if len(f.Statuses) == 0 {
		return true
	}
	for _, st := range f.Statuses {
		if st == s {
			return true
		}
	}
	return false
}

// HasProfessional reports whether id passes the professional id filter
func (f FilterSelection) HasProfessional(id string) bool {
	if len(f.ProfessionalIDs) == 0 {
		return true
	}
	for _, pid := range f.ProfessionalIDs {
		if pid == id {
			return true
		}
	}
	return false
}

// ShowsNoPreference reports whether the no-preference column stays visible
func (f FilterSelection) ShowsNoPreference() bool {
	return len(f.ProfessionalIDs) == 0 || f.IncludeNoPreference
}

// WithKind switches the kind filter. Changing kind clears the professional ids.
func (f FilterSelection) WithKind(kind ProfessionalKind) FilterSelection {
	if kind != f.Kind {
		f.ProfessionalIDs = nil
		f.IncludeNoPreference = false
	}
	f.Kind = kind
	return f
}
