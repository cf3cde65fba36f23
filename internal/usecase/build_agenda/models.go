package build_agenda

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/filtering"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/grid"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

// Request модель запроса. Строится текущий вид состояния.
type Request struct {
	State *state.State
}

// Response is everything the calendar draws: one of Day/Week/Month plus totals
type Response struct {
	StoreID      string
	Date         string
	Mode         domain.ViewMode
	Hash         string
	Day          *grid.DayView
	Week         *grid.WeekView
	Month        *grid.MonthView
	Columns      []grid.ColumnView
	KPIs         filtering.KPIs
	StatusCounts map[domain.Status]int
	KindCounts   map[domain.ProfessionalKind]int
	Filters      domain.FilterSelection
}
