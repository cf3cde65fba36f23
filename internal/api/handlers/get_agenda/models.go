package get_agenda

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/filtering"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/grid"
	buildAgenda "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/build_agenda"
)

// StatusCount количество услуг в одном статусе
type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Stripe string `json:"stripe"`
	Count  int    `json:"count"`
}

// KindCount количество профессионалов одной специальности
type KindCount struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AgendaResponse HTTP response model
type AgendaResponse struct {
	StoreID      string                       `json:"storeId"`
	Date         string                       `json:"date"`
	View         string                       `json:"view"`
	Hash         string                       `json:"hash"`
	Version      uint64                       `json:"version"`
	Day          *grid.DayView                `json:"day,omitempty"`
	Week         *grid.WeekView               `json:"week,omitempty"`
	Month        *grid.MonthView              `json:"month,omitempty"`
	Columns      []grid.ColumnView            `json:"columns"`
	KPIs         filtering.KPIs               `json:"kpis"`
	StatusCounts []StatusCount                `json:"statusCounts"`
	KindCounts   []KindCount                  `json:"kindCounts"`
	Filters      handlers.FilterSelectionJSON `json:"filters"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildAgenda.Response, version uint64) *AgendaResponse {
	out := &AgendaResponse{
		StoreID:      resp.StoreID,
		Date:         resp.Date,
		View:         string(resp.Mode),
		Hash:         resp.Hash,
		Version:      version,
		Day:          resp.Day,
		Week:         resp.Week,
		Month:        resp.Month,
		Columns:      resp.Columns,
		KPIs:         resp.KPIs,
		StatusCounts: make([]StatusCount, 0, len(domain.StatusCycle)),
		KindCounts:   make([]KindCount, 0, len(domain.ProfessionalKinds)),
		Filters:      handlers.FilterSelectionFromDomain(resp.Filters),
	}
	if out.Columns == nil {
		out.Columns = []grid.ColumnView{}
	}

	for _, s := range domain.StatusCycle {
		meta := s.Meta()
		out.StatusCounts = append(out.StatusCounts, StatusCount{
			Status: string(s),
			Label:  meta.Label,
			Stripe: meta.Stripe,
			Count:  resp.StatusCounts[s],
		})
	}
	for _, k := range domain.ProfessionalKinds {
		out.KindCounts = append(out.KindCounts, KindCount{Kind: string(k), Label: k.Label(), Count: resp.KindCounts[k]})
	}
	return out
}
