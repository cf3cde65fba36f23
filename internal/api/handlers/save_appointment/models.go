package save_appointment

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	saveAppointment "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/save_appointment"
)

// ServiceRequest одна услуга формы
type ServiceRequest struct {
	ItemID         string `json:"itemId,omitempty"`
	ServiceID      string `json:"serviceId,omitempty"`
	Name           string `json:"name"`
	Price          int64  `json:"price"` // centavos
	ProfessionalID string `json:"professionalId,omitempty"`
	Hour           string `json:"hour,omitempty"`
	Status         string `json:"status,omitempty"`
	Observation    string `json:"observation,omitempty"`
}

// SaveAppointmentRequest HTTP request model
type SaveAppointmentRequest struct {
	StoreID        string           `json:"storeId"`
	CustomerID     string           `json:"customerId"`
	PetID          string           `json:"petId"`
	Date           string           `json:"date"` // "2025-03-03" или "03/03/2025"
	Hour           string           `json:"hour"` // "09:30"
	ProfessionalID string           `json:"professionalId"`
	Status         string           `json:"status,omitempty"`
	Observations   *string          `json:"observations,omitempty"`
	Services       []ServiceRequest `json:"services"`
}

// SaveAppointmentResponse HTTP response model
type SaveAppointmentResponse struct {
	AppointmentID string `json:"appointmentId"`
	Created       bool   `json:"created"`
	Hash          string `json:"hash"`
	Reloaded      bool   `json:"reloaded"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SaveAppointmentRequest) ToUseCaseRequest(st *state.State, actor domain.Actor, appointmentID string) *saveAppointment.Request {
	req := &saveAppointment.Request{
		State:          st,
		Actor:          actor,
		AppointmentID:  appointmentID,
		StoreID:        r.StoreID,
		CustomerID:     r.CustomerID,
		PetID:          r.PetID,
		Date:           r.Date,
		Hour:           r.Hour,
		ProfessionalID: r.ProfessionalID,
		Observations:   r.Observations,
		Services:       make([]saveAppointment.ServiceInput, 0, len(r.Services)),
	}
	if r.Status != "" {
		req.Status = domain.NormalizeStatus(r.Status)
	}
	for _, s := range r.Services {
		in := saveAppointment.ServiceInput{
			ItemID:         s.ItemID,
			ServiceID:      s.ServiceID,
			Name:           s.Name,
			Price:          domain.Money(s.Price),
			ProfessionalID: s.ProfessionalID,
			Hour:           s.Hour,
			Observation:    s.Observation,
		}
		if s.Status != "" {
			in.Status = domain.NormalizeStatus(s.Status)
		}
		req.Services = append(req.Services, in)
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveAppointment.Response) *SaveAppointmentResponse {
	return &SaveAppointmentResponse{
		AppointmentID: resp.AppointmentID,
		Created:       resp.Created,
		Hash:          resp.Hash,
		Reloaded:      resp.Reloaded,
	}
}
