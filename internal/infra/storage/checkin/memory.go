package checkin

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// MemoryRepository keeps check-ins in process. Used when no database is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]domain.CheckinRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]domain.CheckinRecord)}
}

func (r *MemoryRepository) Create(_ context.Context, rec *domain.CheckinRecord) (*domain.CheckinRecord, error) {
	out := *rec
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	if out.SubmittedAt.IsZero() {
		out.SubmittedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[out.ID] = out
	return &out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.CheckinRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrCheckinNotFound, id)
	}
	return &rec, nil
}

func (r *MemoryRepository) ListByAppointment(_ context.Context, appointmentID string) ([]domain.CheckinRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.CheckinRecord, 0)
	for _, rec := range r.records {
		if rec.AppointmentID == appointmentID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}
