package move_appointment

// MoveAppointmentRequest HTTP request model: where the card was dropped
type MoveAppointmentRequest struct {
	ItemIDs []string `json:"itemIds"`
	Date    string   `json:"date"`   // "2025-03-03"
	Hour    string   `json:"hour"`   // "10:00"
	Column  string   `json:"column"` // id профессионала или "no-preference"
}

// MoveAppointmentResponse HTTP response model
type MoveAppointmentResponse struct {
	AppointmentID string `json:"appointmentId"`
	Scope         string `json:"scope"`
	Hash          string `json:"hash"`
	Reloaded      bool   `json:"reloaded"`
}
