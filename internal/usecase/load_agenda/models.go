package load_agenda

import (
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

// Reload triggers
const (
	TriggerRequest = "request"
	TriggerPoll    = "poll"
	TriggerWrite   = "write"
)

// Request модель запроса на загрузку агенды
type Request struct {
	State         *state.State
	StoreID       string          // пусто: первый доступный магазин
	Date          time.Time       // любой момент выбранного дня
	Mode          domain.ViewMode // day, week, month
	Trigger       string
	RefreshStores bool

	follow *state.View
}

// Response модель ответа
type Response struct {
	StoreID  string
	Hash     string
	Changed  bool
	Count    int
	LoadedAt time.Time
	// Stale is set when a newer load or a view change superseded this one
	Stale bool
}
