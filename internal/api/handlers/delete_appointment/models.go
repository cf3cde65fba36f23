package delete_appointment

// DeleteAppointmentResponse HTTP response model
type DeleteAppointmentResponse struct {
	AppointmentID string `json:"appointmentId"`
	Hash          string `json:"hash"`
	Reloaded      bool   `json:"reloaded"`
}

// ConfirmationResponse просит UI подтвердить удаление
type ConfirmationResponse struct {
	Error        string `json:"error"`
	Title        string `json:"title"`
	Confirmation bool   `json:"confirmationRequired"`
}
