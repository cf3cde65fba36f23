package get_agenda_version

// VersionResponse HTTP response model
type VersionResponse struct {
	Version uint64 `json:"version"`
	Changed bool   `json:"changed"`
}
