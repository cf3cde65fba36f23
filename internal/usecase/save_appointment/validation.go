package save_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/timeutil"
)

// Form messages
const (
	MsgHourRequired         = "Informe a hora."
	MsgInvalidDate          = "Data inválida."
	MsgStoreRequired        = "Selecione a empresa."
	MsgProfessionalRequired = "Selecione o profissional."
	MsgCustomerRequired     = "Selecione o cliente."
	MsgPetRequired          = "Selecione o pet."
	MsgServicesRequired     = "Adicione pelo menos 1 serviço."
)

// validate checks the form in the order its fields are shown and returns the first problem
func validate(req *Request, creating bool, known func(string) bool, viewDate time.Time, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(req.Hour) == "" {
		return time.Time{}, domain.NewValidationError("hour", MsgHourRequired)
	}
	day := viewDate
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := timeutil.ParseDate(req.Date, loc)
		if err != nil {
			return time.Time{}, domain.NewValidationError("date", MsgInvalidDate)
		}
		day = parsed
	}
	at, err := timeutil.At(day.In(loc), req.Hour)
	if err != nil {
		return time.Time{}, domain.NewValidationError("hour", MsgHourRequired)
	}

	if strings.TrimSpace(req.StoreID) == "" {
		return time.Time{}, domain.NewValidationError("storeId", MsgStoreRequired)
	}
	if id := strings.TrimSpace(req.ProfessionalID); id == "" || id == domain.NoPreferenceKey || !known(id) {
		return time.Time{}, domain.NewValidationError("profissionalId", MsgProfessionalRequired)
	}
	if creating {
		if strings.TrimSpace(req.CustomerID) == "" {
			return time.Time{}, domain.NewValidationError("clienteId", MsgCustomerRequired)
		}
		if strings.TrimSpace(req.PetID) == "" {
			return time.Time{}, domain.NewValidationError("petId", MsgPetRequired)
		}
	}
	if len(req.Services) == 0 {
		return time.Time{}, domain.NewValidationError("servicos", MsgServicesRequired)
	}
	// пустой профессионал услуги означает профессионала записи
	for i, s := range req.Services {
		id := strings.TrimSpace(s.ProfessionalID)
		if id == "" || id == domain.NoPreferenceKey {
			continue
		}
		if !known(id) {
			return time.Time{}, domain.NewValidationError(fmt.Sprintf("servicos[%d].profissionalId", i), MsgProfessionalRequired)
		}
	}
	return at, nil
}
