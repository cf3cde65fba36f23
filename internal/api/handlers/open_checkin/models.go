package open_checkin

// OpenCheckinRequest HTTP request model
type OpenCheckinRequest struct {
	AppointmentID string `json:"appointmentId"`
}

// OpenCheckinResponse HTTP response model. Форма появится в GET /checkins после подготовки.
type OpenCheckinResponse struct {
	CheckinID string `json:"checkinId"`
	Prompt    string `json:"prompt"`
}
