package get_agenda

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	buildAgenda "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/build_agenda"
	loadAgenda "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/timeutil"
)

const (
	msgMissingSession = "Sessão não encontrada."
	msgInvalidDate    = "Data inválida."
	msgInvalidView    = "Visualização inválida. Use day, week ou month."
	msgStoreNotFound  = "Loja não encontrada."
	msgLoadFailed     = "Não foi possível carregar a agenda."
)

type Handler struct {
	load   LoadAgendaUseCase
	build  BuildAgendaUseCase
	loc    *time.Location
	logger Logger
}

func NewHandler(load LoadAgendaUseCase, build BuildAgendaUseCase, loc *time.Location, logger Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		load:   load,
		build:  build,
		loc:    loc,
		logger: logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/agenda?date=YYYY-MM-DD&view=day|week|month
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	query := r.URL.Query()
	mode, ok := domain.ParseViewMode(strings.ToLower(strings.TrimSpace(query.Get("view"))))
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	var date time.Time
	if raw := query.Get("date"); raw != "" {
		parsed, err := timeutil.ParseDate(raw, h.loc)
		if err != nil {
			h.logger.Warn("GET /stores/{id}/agenda - Invalid date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	// Загружаем выбранный вид в состояние сессии
	_, err := h.load.Execute(r.Context(), &loadAgenda.Request{
		State:   sess.State,
		StoreID: storeID,
		Date:    date,
		Mode:    mode,
		Trigger: loadAgenda.TriggerRequest,
	})
	if err != nil {
		switch {
		case errors.Is(err, loadAgenda.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/agenda - Store not found: store_id=%s", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)
		case errors.Is(err, loadAgenda.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidView)
		default:
			h.logger.Error("GET /stores/{id}/agenda - Failed to load: store_id=%s, error=%v", storeID, err)
			handlers.RespondBackendError(w, err, msgLoadFailed)
		}
		return
	}

	// Строим сетку
	result, err := h.build.Execute(r.Context(), &buildAgenda.Request{State: sess.State})
	if err != nil {
		switch {
		case errors.Is(err, buildAgenda.ErrStoreNotFound):
			handlers.RespondNotFound(w, msgStoreNotFound)
		default:
			h.logger.Error("GET /stores/{id}/agenda - Failed to build: store_id=%s, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	version := sess.Observe(result.Hash)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, version))
}
