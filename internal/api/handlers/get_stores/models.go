package get_stores

import (
	"sort"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// DayHoursResponse часы работы в один день недели
type DayHoursResponse struct {
	Weekday int    `json:"weekday"`
	Open    string `json:"open,omitempty"`
	Close   string `json:"close,omitempty"`
	Closed  bool   `json:"closed"`
}

// StoreResponse HTTP response model
type StoreResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	BusinessHours []DayHoursResponse `json:"businessHours"`
}

// FromDomain конвертирует магазины в HTTP response
func FromDomain(stores []domain.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		resp := StoreResponse{ID: s.ID, Name: s.Name, BusinessHours: make([]DayHoursResponse, 0, len(s.BusinessHours))}
		for day, h := range s.BusinessHours {
			resp.BusinessHours = append(resp.BusinessHours, DayHoursResponse{
				Weekday: int(day),
				Open:    h.Open,
				Close:   h.Close,
				Closed:  h.Closed,
			})
		}
		sort.Slice(resp.BusinessHours, func(i, j int) bool {
			return weekdayOrder(resp.BusinessHours[i].Weekday) < weekdayOrder(resp.BusinessHours[j].Weekday)
		})
		out = append(out, resp)
	}
	return out
}

// Monday first
func weekdayOrder(d int) int {
	return (d + 6) % 7
}

