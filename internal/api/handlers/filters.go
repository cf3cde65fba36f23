package handlers

import "github.com/m04kA/SMC-GroomingAgenda/internal/domain"

// FilterSelectionJSON is the filter selection as exchanged with the UI
type FilterSelectionJSON struct {
	Statuses            []string `json:"statuses"`
	ProfessionalIDs     []string `json:"professionalIds"`
	IncludeNoPreference bool     `json:"includeNoPreference"`
	Kind                string   `json:"kind"`
}

// FilterSelectionFromDomain конвертирует выбор фильтров в JSON модель
func FilterSelectionFromDomain(sel domain.FilterSelection) FilterSelectionJSON {
	out := FilterSelectionJSON{
		Statuses:            make([]string, 0, len(sel.Statuses)),
		ProfessionalIDs:     append([]string{}, sel.ProfessionalIDs...),
		IncludeNoPreference: sel.IncludeNoPreference,
		Kind:                string(sel.Kind),
	}
	for _, s := range sel.Statuses {
		out.Statuses = append(out.Statuses, string(s))
	}
	return out
}

// ToDomain конвертирует JSON модель в выбор фильтров
func (f FilterSelectionJSON) ToDomain() domain.FilterSelection {
	sel := domain.FilterSelection{
		ProfessionalIDs:     append([]string(nil), f.ProfessionalIDs...),
		IncludeNoPreference: f.IncludeNoPreference,
		Kind:                domain.ProfessionalKind(f.Kind),
	}
	for _, s := range f.Statuses {
		sel.Statuses = append(sel.Statuses, domain.NormalizeStatus(s))
	}
	return sel
}
