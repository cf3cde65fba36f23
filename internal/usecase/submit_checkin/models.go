package submit_checkin

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// Request модель запроса на сохранение check-in
type Request struct {
	Actor        domain.Actor
	CheckinID    string
	PreBathNotes string
	Restrictions string
	Medications  string
}

// Response модель ответа
type Response struct {
	Record *domain.CheckinRecord
}
