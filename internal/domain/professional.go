package domain

import "strings"

// ProfessionalKind is the professional's speciality
type ProfessionalKind string

const (
	KindGroomer      ProfessionalKind = "esteticista"
	KindBather       ProfessionalKind = "banhista"
	KindTrimmer      ProfessionalKind = "tosador"
	KindVeterinarian ProfessionalKind = "veterinario"

	// DefaultProfessionalKind is assumed for records without a kind
	DefaultProfessionalKind = KindGroomer
)

var kindLabels = map[ProfessionalKind]string{
	KindGroomer:      "Esteticista",
	KindBather:       "Banhista",
	KindTrimmer:      "Tosador",
	KindVeterinarian: "Veterinário",
}

// ProfessionalKinds lists the kinds in display order
var ProfessionalKinds = []ProfessionalKind{KindGroomer, KindBather, KindTrimmer, KindVeterinarian}

// NormalizeKind lowercases and strips accents, defaulting empty input
func NormalizeKind(raw string) ProfessionalKind {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultProfessionalKind
	}
	key := strings.ToLower(stripMarks(raw))
	return ProfessionalKind(key)
}

// Label returns the display label, or the raw kind when unknown
func (k ProfessionalKind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

// Professional is a staff member scoped to one store
type Professional struct {
	ID      string
	Name    string
	Kind    ProfessionalKind
	StoreID string
}

// ProfessionalRef is either a real professional or "no preference".
// The zero value is no preference.
type ProfessionalRef struct {
	id string
}

// RealProfessional references a persisted professional
func RealProfessional(id string) ProfessionalRef {
	return ProfessionalRef{id: strings.TrimSpace(id)}
}

// NoPreference references the synthetic no-preference column
func NoPreference() ProfessionalRef {
	return ProfessionalRef{}
}

// IsNoPreference reports whether r is the synthetic column
func (r ProfessionalRef) IsNoPreference() bool {
	return r.id == ""
}

// ID returns the professional id. ok is false for no preference.
func (r ProfessionalRef) ID() (string, bool) {
	return r.id, r.id != ""
}

// Key is a stable identifier for maps and JSON. It is not a professional id
// and must never be sent to the backend.
func (r ProfessionalRef) Key() string {
	if r.IsNoPreference() {
		return NoPreferenceKey
	}
	return r.id
}

// NoPreferenceKey identifies the no-preference column in views
const NoPreferenceKey = "no-preference"

// NoPreferenceName is the column title
const NoPreferenceName = "Sem preferência"

// Column is one resource column of the grid
type Column struct {
	Ref  ProfessionalRef
	Name string
	Kind ProfessionalKind
}

// ColumnFor builds the column of a real professional
func ColumnFor(p Professional) Column {
	return Column{Ref: RealProfessional(p.ID), Name: p.Name, Kind: p.Kind}
}

// NoPreferenceColumn builds the synthetic column
func NoPreferenceColumn() Column {
	return Column{Ref: NoPreference(), Name: NoPreferenceName}
}
