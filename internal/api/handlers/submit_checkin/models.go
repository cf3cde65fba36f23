package submit_checkin

// SubmitCheckinRequest HTTP request model: поля, которые заполняет сотрудник
type SubmitCheckinRequest struct {
	PreBathNotes string `json:"analise"`
	Restrictions string `json:"restricao"`
	Medications  string `json:"medicamento"`
}
