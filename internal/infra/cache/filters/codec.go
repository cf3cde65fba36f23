package filters

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// payload is the stored JSON shape
type payload struct {
	Statuses     []string `json:"statuses"`
	ProfIDs      []string `json:"profIds"`
	NoPreference bool     `json:"noPreference"`
	ProfTipo     string   `json:"profTipo"`
}

// Encode serializes a selection
func Encode(sel domain.FilterSelection) ([]byte, error) {
	p := payload{
		Statuses:     make([]string, 0, len(sel.Statuses)),
		ProfIDs:      append([]string{}, sel.ProfessionalIDs...),
		NoPreference: sel.IncludeNoPreference,
		ProfTipo:     string(sel.Kind),
	}
	for _, s := range sel.Statuses {
		p.Statuses = append(p.Statuses, string(s))
	}
	return json.Marshal(p)
}

// Decode reads a stored selection field by field. A field of the wrong type is
// ignored; only a payload that is not a JSON object is rejected.
func Decode(raw []byte) (domain.FilterSelection, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.FilterSelection{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var sel domain.FilterSelection
	for _, s := range stringList(fields["statuses"]) {
		sel.Statuses = append(sel.Statuses, domain.Status(s))
	}
	sel.ProfessionalIDs = stringList(fields["profIds"])

	var noPref bool
	if json.Unmarshal(fields["noPreference"], &noPref) == nil {
		sel.IncludeNoPreference = noPref
	}
	var kind string
	if json.Unmarshal(fields["profTipo"], &kind) == nil {
		sel.Kind = domain.ProfessionalKind(kind)
	}

	return sel.Normalize(), nil
}

// stringList accepts ["a","b"], "a" or a list with non-string entries mixed in
func stringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var single string
	if json.Unmarshal(raw, &single) == nil {
		return []string{single}
	}
	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		var s string
		if json.Unmarshal(it, &s) == nil {
			out = append(out, s)
		}
	}
	return out
}
