package get_checkins

import (
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// CheckinFormResponse подготовленная форма check-in
type CheckinFormResponse struct {
	ID            string               `json:"id"`
	AppointmentID string               `json:"appointmentId"`
	CustomerID    string               `json:"customerId"`
	PetID         string               `json:"petId"`
	CustomerName  string               `json:"customerName"`
	PetName       string               `json:"petName"`
	PetBreed      string               `json:"petBreed"`
	PetKind       string               `json:"petKind"`
	Contact       handlers.ContactJSON `json:"contact"`
	Address       handlers.AddressJSON `json:"address"`
	PreparedAt    string               `json:"preparedAt"`
}

// FromDomain конвертирует формы в HTTP response
func FromDomain(forms []domain.CheckinForm) []CheckinFormResponse {
	out := make([]CheckinFormResponse, 0, len(forms))
	for _, f := range forms {
		out = append(out, CheckinFormResponse{
			ID:            f.ID,
			AppointmentID: f.AppointmentID,
			CustomerID:    f.CustomerID,
			PetID:         f.PetID,
			CustomerName:  f.CustomerName,
			PetName:       f.PetName,
			PetBreed:      f.PetBreed,
			PetKind:       f.PetKind,
			Contact:       handlers.ContactFromDomain(f.Contact),
			Address:       handlers.AddressFromDomain(f.Address),
			PreparedAt:    f.PreparedAt.Format(time.RFC3339),
		})
	}
	return out
}
