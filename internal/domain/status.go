package domain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Status represents the status of an appointment or of a single service item
type Status string

const (
	StatusScheduled Status = "agendado"
	StatusWaiting   Status = "em_espera"
	StatusInService Status = "em_atendimento"
	StatusDone      Status = "finalizado"

	// StatusPartial is derived from disagreeing item statuses and is never stored.
	StatusPartial Status = "parcial"
)

// StatusCycle is the quick-advance order. The last status wraps to the first.
var StatusCycle = []Status{
	StatusScheduled,
	StatusWaiting,
	StatusInService,
	StatusDone,
}

// StatusMeta holds display metadata for a status
type StatusMeta struct {
	Label  string
	Short  string
	Stripe string
}

var statusMeta = map[Status]StatusMeta{
	StatusScheduled: {Label: "Agendado", Short: "Agend.", Stripe: "#64748B"},
	StatusWaiting:   {Label: "Em espera", Short: "Espera", Stripe: "#B45309"},
	StatusInService: {Label: "Em atendimento", Short: "Atend.", Stripe: "#1D4ED8"},
	StatusDone:      {Label: "Finalizado", Short: "Fim.", Stripe: "#16A34A"},
	StatusPartial:   {Label: "Parcial", Short: "Parcial", Stripe: "#7C3AED"},
}

var separatorsRe = regexp.MustCompile(`[-\s]+`)

// NormalizeStatus maps free-form input (legacy records, typed values) to a known status.
// Unrecognized values become StatusScheduled.
func NormalizeStatus(raw string) Status {
	key := strings.ToLower(strings.TrimSpace(stripMarks(raw)))
	key = separatorsRe.ReplaceAllString(key, "_")

	switch Status(key) {
	case StatusScheduled, StatusWaiting, StatusInService, StatusDone, StatusPartial:
		return Status(key)
	}
	return StatusScheduled
}

// IsValid reports whether s is one of the five known keys
func (s Status) IsValid() bool {
	_, ok := statusMeta[s]
	return ok
}

// IsSettable reports whether s can be written to the backend
func (s Status) IsSettable() bool {
	return s.IsValid() && s != StatusPartial
}

// Next returns the following status in the cycle.
// StatusPartial and unknown values advance as StatusScheduled.
func (s Status) Next() Status {
	for i, st := range StatusCycle {
		if st == s {
			return StatusCycle[(i+1)%len(StatusCycle)]
		}
	}
	return StatusCycle[1]
}

// TriggersCheckin reports whether entering s opens the check-in prompt
func (s Status) TriggersCheckin() bool {
	return s == StatusInService
}

// Meta returns label/short/stripe for s, falling back to the normalized status
func (s Status) Meta() StatusMeta {
	if m, ok := statusMeta[s]; ok {
		return m
	}
	return statusMeta[NormalizeStatus(string(s))]
}

// stripMarks removes combining marks ("atendímento" -> "atendimento")
func stripMarks(raw string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, raw)
	if err != nil {
		return raw
	}
	return stripped
}

func (s Status) String() string {
	return string(s)
}
