package get_filters

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// Option элемент списка фильтра
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FiltersResponse HTTP response model
type FiltersResponse struct {
	Selection handlers.FilterSelectionJSON `json:"selection"`
	Statuses  []Option                     `json:"statuses"`
	Kinds     []Option                     `json:"kinds"`
}

func newFiltersResponse(sel domain.FilterSelection) *FiltersResponse {
	resp := &FiltersResponse{
		Selection: handlers.FilterSelectionFromDomain(sel),
		Statuses:  make([]Option, 0, len(domain.StatusCycle)),
		Kinds:     make([]Option, 0, len(domain.ProfessionalKinds)),
	}
	for _, s := range domain.StatusCycle {
		resp.Statuses = append(resp.Statuses, Option{Value: string(s), Label: s.Meta().Label})
	}
	for _, k := range domain.ProfessionalKinds {
		resp.Kinds = append(resp.Kinds, Option{Value: string(k), Label: k.Label()})
	}
	return resp
}
