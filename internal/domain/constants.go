package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default business window when a store has no hours configured for a weekday
const (
	DefaultOpen  = "08:00"
	DefaultClose = "19:00"
)

// Agenda view modes
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// ParseViewMode defaults to the day view
func ParseViewMode(raw string) (ViewMode, bool) {
	switch ViewMode(raw) {
	case ViewDay, ViewWeek, ViewMonth:
		return ViewMode(raw), true
	case "":
		return ViewDay, true
	}
	return "", false
}

// User facing messages shared by several operations
const (
	MsgAppointmentLocked = "Agendamento faturado: não é possível mover. (Somente Admin/Admin Master)"
	MsgStoreClosed       = "Loja fechada neste dia."
	MsgEmptyAgenda       = "Nenhum agendamento para o período."
	MsgDeleteTitle       = "Excluir atendimento"
	MsgCheckinTitle      = "Iniciar check-in"
)

// Month view limits
const (
	MonthCellMaxCards = 6
)
