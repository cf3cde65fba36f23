package save_appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/integrations/backend"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/resolve"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
)

// UseCase use case создания и изменения записи
type UseCase struct {
	backend  BackendClient
	reloader AgendaReloader
	loc      *time.Location
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(backend BackendClient, reloader AgendaReloader, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		backend:  backend,
		reloader: reloader,
		loc:      loc,
		logger:   logger,
	}
}

// Open starts an edit session for an appointment and returns it
func (uc *UseCase) Open(st *state.State, appointmentID string) (*domain.Appointment, error) {
	if st == nil || strings.TrimSpace(appointmentID) == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	appt, found := st.Appointment(appointmentID)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, appointmentID)
	}
	st.BeginEdit(appt.ID, appt.Items)
	return &appt, nil
}

// Execute validates the form, writes it to the backend and reloads the agenda
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.State == nil {
		return nil, fmt.Errorf("%w: state is required", ErrInvalidInput)
	}
	creating := strings.TrimSpace(req.AppointmentID) == ""

	// 1. Редактируемая запись
	var current *domain.Appointment
	if !creating {
		appt, found := req.State.Appointment(req.AppointmentID)
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, req.AppointmentID)
		}
		current = &appt
		if req.StoreID == "" {
			req.StoreID = appt.StoreID
		}
	}

	// 2. Валидация формы
	chain := resolve.New(req.State.Professionals(req.StoreID), nil, uc.loc)
	viewDate := req.State.View().Date
	if current != nil {
		viewDate = current.ScheduledAt
	}
	if viewDate.IsZero() {
		viewDate = time.Now()
	}
	at, err := validate(req, creating, chain.Known, viewDate, uc.loc)
	if err != nil {
		return nil, err
	}

	items := buildItems(req.Services)
	payload := &backend.AppointmentPayload{
		StoreID:        req.StoreID,
		ClienteID:      req.CustomerID,
		PetID:          req.PetID,
		Servicos:       make([]backend.ServiceItemPayload, 0, len(items)),
		ProfissionalID: backend.ProfessionalID(domain.RealProfessional(req.ProfessionalID)),
		ScheduledAt:    &at,
		Observacoes:    req.Observations,
	}
	for _, it := range items {
		payload.Servicos = append(payload.Servicos, backend.ItemPayloadFromDomain(it))
	}
	if req.Status.IsSettable() {
		payload.Status = string(req.Status)
	}

	// 3. Оплаченную запись может перепланировать только администратор
	if current != nil && current.IsLocked() && !req.Actor.IsElevated() && changesSchedule(current, at, items) {
		uc.logger.Warn("SaveAppointment: user %s tried to reschedule invoiced appointment %s", req.Actor.UserID, current.ID)
		return nil, fmt.Errorf("%w: %s", ErrAppointmentLocked, domain.MsgAppointmentLocked)
	}

	// 4. Запись в backend
	id := req.AppointmentID
	var writeErr error
	if creating {
		if payload.Status == "" {
			payload.Status = string(domain.StatusScheduled)
		}
		var created *domain.Appointment
		created, writeErr = uc.backend.CreateAppointment(ctx, payload)
		if created != nil {
			id = created.ID
		}
	} else {
		writeErr = uc.backend.UpdateAppointment(ctx, id, payload)
	}

	// 5. Перезагрузка в любом случае
	reloaded, reloadErr := uc.reloader.Reload(ctx, req.State, load_agenda.TriggerWrite)
	if reloadErr != nil {
		uc.logger.Warn("SaveAppointment: reload after save failed: %v", reloadErr)
	}

	if writeErr != nil {
		uc.logger.Error("SaveAppointment: save %q failed: %v", id, writeErr)
		return nil, fmt.Errorf("%w: save appointment: %w", ErrBackend, writeErr)
	}
	req.State.ClearDraft()
	uc.logger.Info("SaveAppointment: appointment %s saved by %s (created=%t)", id, req.Actor.UserID, creating)

	resp := &Response{AppointmentID: id, Created: creating}
	if reloaded != nil {
		resp.Hash = reloaded.Hash
		resp.Reloaded = reloadErr == nil
	}
	return resp, nil
}

// buildItems turns form lines into items. A no-preference choice becomes an
// empty professional, so the appointment professional applies.
func buildItems(lines []ServiceInput) []domain.ServiceItem {
	items := make([]domain.ServiceItem, 0, len(lines))
	for _, l := range lines {
		pro := strings.TrimSpace(l.ProfessionalID)
		if pro == domain.NoPreferenceKey {
			pro = ""
		}
		items = append(items, domain.ServiceItem{
			ItemID:         l.ItemID,
			ServiceID:      l.ServiceID,
			Name:           l.Name,
			Price:          l.Price,
			ProfessionalID: pro,
			Hour:           strings.TrimSpace(l.Hour),
			Status:         l.Status,
			Observation:    l.Observation,
		})
	}
	return items
}

// changesSchedule reports whether the write moves the appointment or edits its services
func changesSchedule(current *domain.Appointment, at time.Time, items []domain.ServiceItem) bool {
	if !current.ScheduledAt.Equal(at) {
		return true
	}
	if len(current.Items) != len(items) {
		return true
	}
	for i, it := range items {
		was := current.Items[i]
		if was.ItemID != it.ItemID || was.ServiceID != it.ServiceID || was.Price != it.Price ||
			was.ProfessionalID != it.ProfessionalID || was.Hour != it.Hour {
			return true
		}
	}
	return false
}
