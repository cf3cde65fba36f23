package filters

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// MemoryRepository keeps selections in process memory
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string]domain.FilterSelection
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string]domain.FilterSelection)}
}

func (r *MemoryRepository) Get(_ context.Context, userID string) (*domain.FilterSelection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sel, ok := r.data[userID]
	if !ok {
		return nil, nil
	}
	return &sel, nil
}

func (r *MemoryRepository) Save(_ context.Context, userID string, sel domain.FilterSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[userID] = sel
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, userID)
	return nil
}
