package get_appointment

import (
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// ServiceResponse одна услуга записи
type ServiceResponse struct {
	ItemID         string `json:"itemId,omitempty"`
	ServiceID      string `json:"serviceId,omitempty"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	ProfessionalID string `json:"professionalId,omitempty"`
	Hour           string `json:"hour,omitempty"`
	Status         string `json:"status"`
	StatusLabel    string `json:"statusLabel"`
	Observation    string `json:"observation,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             string            `json:"id"`
	StoreID        string            `json:"storeId"`
	CustomerID     string            `json:"customerId"`
	CustomerName   string            `json:"customerName"`
	PetID          string            `json:"petId"`
	PetName        string            `json:"petName"`
	ProfessionalID string            `json:"professionalId,omitempty"`
	Date           string            `json:"date"`
	Hour           string            `json:"hour"`
	Status         string            `json:"status"`
	Observations   string            `json:"observations,omitempty"`
	Paid           bool              `json:"paid"`
	Locked         bool              `json:"locked"`
	Total          int64             `json:"total"`
	Services       []ServiceResponse `json:"services"`
}

// FromDomain конвертирует запись в HTTP response
func FromDomain(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	local := a.ScheduledAt.In(loc)
	display, _ := a.AggregateStatus()
	resp := &AppointmentResponse{
		ID:             a.ID,
		StoreID:        a.StoreID,
		CustomerID:     a.CustomerID,
		CustomerName:   a.CustomerName,
		PetID:          a.PetID,
		PetName:        a.PetName,
		ProfessionalID: a.ProfessionalID,
		Date:           local.Format(domain.DateFormat),
		Hour:           local.Format(domain.TimeFormat),
		Status:         string(display),
		Observations:   a.Observations,
		Paid:           a.Paid,
		Locked:         a.IsLocked(),
		Total:          int64(a.TotalValue()),
		Services:       make([]ServiceResponse, 0, len(a.Items)),
	}
	for _, it := range a.ServiceItems() {
		st := a.EffectiveStatus(it)
		resp.Services = append(resp.Services, ServiceResponse{
			ItemID:         it.ItemID,
			ServiceID:      it.ServiceID,
			Name:           it.Name,
			Price:          int64(it.Price),
			ProfessionalID: it.ProfessionalID,
			Hour:           it.Hour,
			Status:         string(st),
			StatusLabel:    st.Meta().Label,
			Observation:    it.Observation,
		})
	}
	return resp
}
