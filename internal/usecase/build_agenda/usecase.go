package build_agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/filtering"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/grid"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

// UseCase derives the grid of the current view from the session state.
// It never calls the backend.
type UseCase struct {
	loc      *time.Location
	fallback domain.DayHours
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loc *time.Location, fallback domain.DayHours, logger Logger) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{loc: loc, fallback: fallback, logger: logger}
}

// Execute выполняет построение агенды
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	if req == nil || req.State == nil {
		return nil, fmt.Errorf("%w: state is required", ErrInvalidInput)
	}
	st := req.State
	snap := st.Snapshot()
	view := snap.View
	if view.StoreID == "" {
		return nil, fmt.Errorf("%w: nothing loaded yet", ErrInvalidInput)
	}
	store, ok := st.Store(view.StoreID)
	if !ok {
		uc.logger.Warn("BuildAgenda: store %s not in state", view.StoreID)
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, view.StoreID)
	}

	// 2. Фильтрация и KPI
	sel := st.Filters()
	filtered := filtering.Apply(sel, snap.Appointments, snap.Professionals, uc.loc)

	// 3. Сетка выбранного вида
	in := grid.Input{
		Store:        &store,
		Fallback:     uc.fallback,
		Columns:      filtered.Columns,
		Appointments: filtered.Appointments,
		Chain:        filtered.Chain,
	}

	resp := &Response{
		StoreID:      view.StoreID,
		Date:         view.Date.In(uc.loc).Format(domain.DateFormat),
		Mode:         view.Mode,
		Hash:         snap.Hash,
		KPIs:         filtered.KPIs,
		StatusCounts: filtered.StatusCounts,
		KindCounts:   filtered.KindCounts,
		Filters:      sel.Normalize(),
	}

	switch view.Mode {
	case domain.ViewWeek:
		w := grid.BuildWeek(in, view.Date)
		resp.Week = &w
	case domain.ViewMonth:
		m := grid.BuildMonth(in, view.Date)
		resp.Month = &m
	default:
		d := grid.BuildDay(in, view.Date)
		resp.Day = &d
		resp.Columns = d.Columns
	}
	if resp.Columns == nil {
		resp.Columns = grid.ColumnViews(filtered.Columns)
	}

	return resp, nil
}

// Columns returns the visible resource columns of a store under the session's filters
func (uc *UseCase) Columns(st *state.State, storeID string) []grid.ColumnView {
	cols := filtering.VisibleColumns(st.Filters().Normalize(), st.Professionals(storeID))
	return grid.ColumnViews(cols)
}
