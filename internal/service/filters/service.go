package filters

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// Service loads and saves the agenda filter selection of a user
type Service struct {
	repo   Repository
	logger Logger
}

// NewService создает сервис фильтров
func NewService(repo Repository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Load returns the stored selection. Missing or unreadable selections yield the default.
func (s *Service) Load(ctx context.Context, userID string) domain.FilterSelection {
	if strings.TrimSpace(userID) == "" {
		return domain.DefaultFilterSelection()
	}

	sel, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("Filters: discarding stored selection of user %s: %v", userID, err)
		return domain.DefaultFilterSelection()
	}
	if sel == nil {
		return domain.DefaultFilterSelection()
	}
	return sel.Normalize()
}

// Save normalizes and persists a selection.
// Switching the professional kind drops the professional ids picked for the old kind.
func (s *Service) Save(ctx context.Context, userID string, previous, next domain.FilterSelection) (domain.FilterSelection, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.FilterSelection{}, ErrInvalidUser
	}

	next = next.Normalize()
	if next.Kind != previous.Normalize().Kind {
		next.ProfessionalIDs = nil
		next.IncludeNoPreference = false
		next = next.Normalize()
	}

	if err := s.repo.Save(ctx, userID, next); err != nil {
		return domain.FilterSelection{}, fmt.Errorf("%w: Save: %v", ErrRepository, err)
	}
	return next, nil
}

// Reset removes the stored selection
func (s *Service) Reset(ctx context.Context, userID string) (domain.FilterSelection, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.FilterSelection{}, ErrInvalidUser
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return domain.FilterSelection{}, fmt.Errorf("%w: Reset: %v", ErrRepository, err)
	}
	return domain.DefaultFilterSelection(), nil
}
