package advance_status

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	advanceStatus "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/advance_status"
)

// AdvanceStatusRequest HTTP request model. Пустой itemIds означает всю запись.
type AdvanceStatusRequest struct {
	ItemIDs     []string `json:"itemIds"`
	OpenCheckin bool     `json:"openCheckin"`
}

// CheckinPromptResponse предложение открыть check-in
type CheckinPromptResponse struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	CheckinID string `json:"checkinId,omitempty"`
	Queued    bool   `json:"queued"`
}

// AdvanceStatusResponse HTTP response model
type AdvanceStatusResponse struct {
	AppointmentID string                 `json:"appointmentId"`
	ItemIDs       []string               `json:"itemIds"`
	From          string                 `json:"from"`
	To            string                 `json:"to"`
	ToLabel       string                 `json:"toLabel"`
	Checkin       *CheckinPromptResponse `json:"checkin,omitempty"`
	Hash          string                 `json:"hash"`
	Reloaded      bool                   `json:"reloaded"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *advanceStatus.Response) *AdvanceStatusResponse {
	out := &AdvanceStatusResponse{
		AppointmentID: resp.AppointmentID,
		ItemIDs:       append([]string{}, resp.ItemIDs...),
		From:          string(resp.From),
		To:            string(resp.To),
		ToLabel:       resp.To.Meta().Label,
		Hash:          resp.Hash,
		Reloaded:      resp.Reloaded,
	}
	if resp.CheckinPrompt != "" {
		out.Checkin = &CheckinPromptResponse{
			Title:     domain.MsgCheckinTitle,
			Message:   resp.CheckinPrompt,
			CheckinID: resp.CheckinID,
			Queued:    resp.CheckinQueued,
		}
	}
	return out
}
