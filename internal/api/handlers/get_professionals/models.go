package get_professionals

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/grid"
)

// KindOption вариант фильтра по специальности
type KindOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProfessionalsResponse HTTP response model
type ProfessionalsResponse struct {
	StoreID string            `json:"storeId"`
	Columns []grid.ColumnView `json:"columns"`
	Kinds   []KindOption      `json:"kinds"`
}

func kindOptions() []KindOption {
	out := make([]KindOption, 0, len(domain.ProfessionalKinds))
	for _, k := range domain.ProfessionalKinds {
		out = append(out, KindOption{Value: string(k), Label: k.Label()})
	}
	return out
}
