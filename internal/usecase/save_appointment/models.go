package save_appointment

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

// ServiceInput one service line of the form
type ServiceInput struct {
	ItemID         string
	ServiceID      string
	Name           string
	Price          domain.Money
	ProfessionalID string // "" or "no-preference": inherit the appointment professional
	Hour           string
	Status         domain.Status
	Observation    string
}

// Request модель запроса на создание или изменение записи
type Request struct {
	State          *state.State
	Actor          domain.Actor
	AppointmentID  string // пусто: создание
	StoreID        string
	CustomerID     string
	PetID          string
	Date           string // yyyy-mm-dd or dd/mm/yyyy, empty: the day being viewed
	Hour           string
	ProfessionalID string
	Status         domain.Status
	Observations   *string
	Services       []ServiceInput
}

// Response модель ответа
type Response struct {
	AppointmentID string
	Created       bool
	Hash          string
	Reloaded      bool
}
