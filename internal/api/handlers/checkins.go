package handlers

import (
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// ContactJSON телефоны клиента
type ContactJSON struct {
	MobileDDD   string `json:"mobileDdd"`
	Mobile      string `json:"mobile"`
	LandlineDDD string `json:"landlineDdd"`
	Landline    string `json:"landline"`
}

// AddressJSON адрес клиента
type AddressJSON struct {
	CEP        string `json:"cep"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
}

// CheckinRecordJSON сохраненный check-in
type CheckinRecordJSON struct {
	ID            string      `json:"id"`
	AppointmentID string      `json:"appointmentId"`
	CustomerID    string      `json:"customerId"`
	PetID         string      `json:"petId"`
	CustomerName  string      `json:"customerName"`
	PetName       string      `json:"petName"`
	Contact       ContactJSON `json:"contact"`
	Address       AddressJSON `json:"address"`
	PreBathNotes  string      `json:"analise"`
	Restrictions  string      `json:"restricao"`
	Medications   string      `json:"medicamento"`
	SubmittedBy   string      `json:"submittedBy"`
	SubmittedAt   string      `json:"submittedAt"`
}

func ContactFromDomain(c domain.Contact) ContactJSON {
	return ContactJSON{MobileDDD: c.MobileDDD, Mobile: c.Mobile, LandlineDDD: c.LandlineDDD, Landline: c.Landline}
}

func AddressFromDomain(a domain.Address) AddressJSON {
	return AddressJSON{CEP: a.CEP, Street: a.Street, Number: a.Number, Complement: a.Complement}
}

// CheckinRecordFromDomain конвертирует запись check-in в JSON модель
func CheckinRecordFromDomain(rec *domain.CheckinRecord) CheckinRecordJSON {
	return CheckinRecordJSON{
		ID:            rec.ID,
		AppointmentID: rec.AppointmentID,
		CustomerID:    rec.CustomerID,
		PetID:         rec.PetID,
		CustomerName:  rec.CustomerName,
		PetName:       rec.PetName,
		Contact:       ContactFromDomain(rec.Contact),
		Address:       AddressFromDomain(rec.Address),
		PreBathNotes:  rec.PreBathNotes,
		Restrictions:  rec.Restrictions,
		Medications:   rec.Medications,
		SubmittedBy:   rec.SubmittedBy,
		SubmittedAt:   rec.SubmittedAt.Format(time.RFC3339),
	}
}
