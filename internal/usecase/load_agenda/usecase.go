package load_agenda

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/snapshot"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/timeutil"
)

// UseCase use case загрузки агенды из backend в состояние сессии
type UseCase struct {
	backend BackendClient
	loc     *time.Location
	logger  Logger
	metrics Metrics
	now     func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(backend BackendClient, loc *time.Location, logger Logger, metrics Metrics) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		backend: backend,
		loc:     loc,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// Execute fetches stores, professionals and appointments of the requested view
// and replaces the session state with them
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.State == nil {
		return nil, fmt.Errorf("%w: state is required", ErrInvalidInput)
	}
	mode, ok := domain.ParseViewMode(string(req.Mode))
	if !ok {
		return nil, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, req.Mode)
	}
	date := req.Date
	if date.IsZero() {
		date = uc.now()
	}
	date = timeutil.StartOfDay(date.In(uc.loc))

	resp, err := uc.load(ctx, req, mode, date)
	if uc.metrics != nil {
		uc.metrics.ObserveReload(req.Trigger, err, resp != nil && resp.Changed)
	}
	return resp, err
}

// Reload re-fetches the view the session is currently showing
func (uc *UseCase) Reload(ctx context.Context, st *state.State, trigger string) (*Response, error) {
	view := st.View()
	if view.StoreID == "" {
		return &Response{Hash: st.Hash(), LoadedAt: st.LoadedAt()}, nil
	}
	return uc.Execute(ctx, &Request{
		State:   st,
		StoreID: view.StoreID,
		Date:    view.Date,
		Mode:    view.Mode,
		Trigger: trigger,
		follow:  &view,
	})
}

func (uc *UseCase) load(ctx context.Context, req *Request, mode domain.ViewMode, date time.Time) (*Response, error) {
	st := req.State
	ticket := st.BeginLoad()

	// 2. Магазины: при первой загрузке или по запросу
	stores, err := uc.Stores(ctx, st, req.RefreshStores)
	if err != nil {
		return nil, err
	}

	storeID := req.StoreID
	if storeID == "" {
		if len(stores) == 0 {
			return nil, fmt.Errorf("%w: no stores available", ErrStoreNotFound)
		}
		storeID = stores[0].ID
	}
	if _, found := st.Store(storeID); !found {
		uc.logger.Warn("LoadAgenda: store %s not found", storeID)
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, storeID)
	}

	// 3. Профессионалы и записи параллельно
	var (
		professionals []domain.Professional
		appointments  []domain.Appointment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.backend.ListProfessionals(gctx, storeID)
		if err != nil {
			return fmt.Errorf("list professionals: %w", err)
		}
		professionals = list
		return nil
	})
	g.Go(func() error {
		list, err := uc.fetchAppointments(gctx, storeID, mode, date)
		if err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}
		appointments = list
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("LoadAgenda: store=%s view=%s date=%s: %v", storeID, mode, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	// 4. Оставляем только записи выбранного магазина
	filtered := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.StoreID == "" || a.StoreID == storeID {
			filtered = append(filtered, a)
		}
	}

	// 5. Заменяем состояние целиком, если загрузка не устарела
	hash := snapshot.Hash(filtered)
	now := uc.now()
	applied, changed := st.ApplyLoad(ticket, req.follow, state.Snapshot{
		View:          state.View{StoreID: storeID, Date: date, Mode: mode},
		Professionals: professionals,
		Appointments:  filtered,
		Hash:          hash,
		LoadedAt:      now,
	})
	if !applied {
		uc.logger.Info("LoadAgenda: store=%s view=%s date=%s superseded by a newer load (%s)",
			storeID, mode, date.Format(domain.DateFormat), req.Trigger)
		return &Response{
			StoreID:  storeID,
			Hash:     st.Hash(),
			LoadedAt: st.LoadedAt(),
			Stale:    true,
		}, nil
	}

	if changed {
		uc.logger.Info("LoadAgenda: store=%s view=%s date=%s: %d appointments, hash %s (%s)",
			storeID, mode, date.Format(domain.DateFormat), len(filtered), hash, req.Trigger)
	}

	return &Response{
		StoreID:  storeID,
		Hash:     hash,
		Changed:  changed,
		Count:    len(filtered),
		LoadedAt: now,
	}, nil
}

func (uc *UseCase) fetchAppointments(ctx context.Context, storeID string, mode domain.ViewMode, date time.Time) ([]domain.Appointment, error) {
	switch mode {
	case domain.ViewWeek:
		start, end := timeutil.WeekRange(date)
		return uc.backend.ListAppointmentsRange(ctx, storeID, start, end)
	case domain.ViewMonth:
		start := timeutil.MonthGridStart(date)
		return uc.backend.ListAppointmentsRange(ctx, storeID, start, start.AddDate(0, 0, timeutil.MonthGridCells))
	default:
		return uc.backend.ListAppointments(ctx, storeID, date)
	}
}

// Stores returns the stores of the session, fetching them on first use
func (uc *UseCase) Stores(ctx context.Context, st *state.State, refresh bool) ([]domain.Store, error) {
	if stores := st.Stores(); len(stores) > 0 && !refresh {
		return stores, nil
	}
	fetched, err := uc.backend.ListStores(ctx)
	if err != nil {
		uc.logger.Error("LoadAgenda: failed to list stores: %v", err)
		return nil, fmt.Errorf("%w: list stores: %w", ErrBackend, err)
	}
	st.ReplaceStores(fetched)
	return fetched, nil
}

// Professionals returns the professionals of a store, fetching them when the state has none
func (uc *UseCase) Professionals(ctx context.Context, st *state.State, storeID string) ([]domain.Professional, error) {
	if _, err := uc.Stores(ctx, st, false); err != nil {
		return nil, err
	}
	if _, found := st.Store(storeID); !found {
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, storeID)
	}
	if pros := st.Professionals(storeID); len(pros) > 0 {
		return pros, nil
	}
	fetched, err := uc.backend.ListProfessionals(ctx, storeID)
	if err != nil {
		uc.logger.Error("LoadAgenda: failed to list professionals of %s: %v", storeID, err)
		return nil, fmt.Errorf("%w: list professionals: %w", ErrBackend, err)
	}
	st.ReplaceProfessionals(storeID, fetched)
	return fetched, nil
}
