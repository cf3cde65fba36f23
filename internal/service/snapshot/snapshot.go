// Package snapshot computes a content hash of an appointment collection so the
// poller can tell whether anything visible changed between two reloads.
package snapshot

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

const sep = "\x1f"

// Hash returns a 16 hex digit digest. Order of the input does not matter.
func Hash(appointments []domain.Appointment) string {
	sorted := make([]*domain.Appointment, len(appointments))
	for i := range appointments {
		sorted[i] = &appointments[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	d := xxhash.New()
	for _, a := range sorted {
		writeField(d, a.ID)
		writeField(d, string(domain.NormalizeStatus(string(a.Status))))
		writeField(d, strconv.FormatInt(a.ScheduledAt.Unix(), 10))
		writeField(d, strconv.FormatInt(int64(a.TotalValue()), 10))
		writeField(d, strconv.FormatBool(a.Paid))
		writeField(d, a.SaleCode)
		writeField(d, a.ProfessionalID)
		writeField(d, a.ProfessionalName)
		writeField(d, a.CustomerName)
		writeField(d, a.PetName)
		writeField(d, a.LegacyService)
		for _, it := range a.Items {
			writeField(d, it.ItemID)
			writeField(d, string(it.Status))
			writeField(d, it.ProfessionalID)
			writeField(d, it.Hour)
			writeField(d, it.Name)
			writeField(d, strconv.FormatInt(int64(it.Price), 10))
		}
		_, _ = d.WriteString("\x1e")
	}

	return fmt.Sprintf("%016x", d.Sum64())
}

func writeField(d *xxhash.Digest, v string) {
	_, _ = d.WriteString(v)
	_, _ = d.WriteString(sep)
}
