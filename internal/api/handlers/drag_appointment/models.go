package drag_appointment

// DragResponse HTTP response model
type DragResponse struct {
	AppointmentID string `json:"appointmentId"`
	Allowed       bool   `json:"allowed"`
	Locked        bool   `json:"locked"`
}
