package advance_status

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/checkin"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/integrations/backend"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
)

// UseCase use case быстрого продвижения статуса по циклу
type UseCase struct {
	backend    BackendClient
	reloader   AgendaReloader
	dispatcher CheckinDispatcher
	logger     Logger
	metrics    Metrics
	now        func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(backend BackendClient, reloader AgendaReloader, dispatcher CheckinDispatcher, logger Logger, metrics Metrics) *UseCase {
	return &UseCase{
		backend:    backend,
		reloader:   reloader,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		now:        time.Now,
	}
}

// Execute advances the action status of the targeted items and reloads the agenda
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.State == nil || strings.TrimSpace(req.AppointmentID) == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	appt, found := req.State.Appointment(req.AppointmentID)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, req.AppointmentID)
	}

	// 2. Целевые услуги и следующий статус
	targets := targetItems(&appt, req.ItemIDs)
	statuses := make([]domain.Status, 0, len(targets))
	for _, id := range targets {
		it, _ := appt.FindItem(id)
		statuses = append(statuses, appt.EffectiveStatus(it))
	}
	var current domain.Status
	if len(statuses) == 0 {
		_, current = appt.AggregateStatus()
	} else {
		_, current = domain.AggregateStatuses(statuses)
	}
	next := current.Next()

	payload := buildPayload(&appt, targets, next)

	resp := &Response{
		AppointmentID: appt.ID,
		ItemIDs:       targets,
		From:          current,
		To:            next,
	}

	// 3. Check-in ставится в очередь до записи и никогда ее не задерживает
	if next.TriggersCheckin() {
		resp.CheckinPrompt = CheckinPrompt(appt.CustomerName, appt.PetName)
		if req.OpenCheckin && uc.dispatcher != nil {
			resp.CheckinID, resp.CheckinQueued = uc.dispatcher.Dispatch(checkin.Task{
				Actor:         req.Actor,
				AppointmentID: appt.ID,
				CustomerID:    appt.CustomerID,
				PetID:         appt.PetID,
				CustomerName:  appt.CustomerName,
				PetName:       appt.PetName,
				QueuedAt:      uc.now(),
			})
		}
	}

	// 4. Запись в backend
	putErr := uc.backend.UpdateAppointment(ctx, appt.ID, payload)

	// 5. Перезагрузка в любом случае
	reloaded, reloadErr := uc.reloader.Reload(ctx, req.State, load_agenda.TriggerWrite)
	if reloadErr != nil {
		uc.logger.Warn("AdvanceStatus: reload after update of %s failed: %v", appt.ID, reloadErr)
	}

	if putErr != nil {
		uc.logger.Error("AdvanceStatus: %s %s -> %s failed: %v", appt.ID, current, next, putErr)
		return nil, fmt.Errorf("%w: update appointment %s: %w", ErrBackend, appt.ID, putErr)
	}
	if uc.metrics != nil {
		uc.metrics.ObserveTransition(string(current), string(next))
	}
	uc.logger.Info("AdvanceStatus: %s items %v %s -> %s by %s", appt.ID, targets, current, next, req.Actor.UserID)

	if reloaded != nil {
		resp.Hash = reloaded.Hash
		resp.Reloaded = reloadErr == nil
	}
	return resp, nil
}

// CheckinPrompt builds the question asked before opening the check-in form
func CheckinPrompt(customer, pet string) string {
	customer, pet = strings.TrimSpace(customer), strings.TrimSpace(pet)
	var b strings.Builder
	if customer != "" {
		b.WriteString(" do cliente " + customer)
	}
	if pet != "" {
		if customer != "" {
			b.WriteString(" e do pet " + pet)
		} else {
			b.WriteString(" do pet " + pet)
		}
	}
	if b.Len() == 0 {
		return "Deseja realizar o check-in agora?"
	}
	return "Deseja realizar o check-in" + b.String() + "?"
}

// targetItems returns the requested ids present in the appointment, or every item id
func targetItems(a *domain.Appointment, requested []string) []string {
	all := a.ItemIDs()
	if len(requested) == 0 {
		return all
	}
	want := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		want[id] = struct{}{}
	}
	out := make([]string, 0, len(requested))
	for _, id := range all {
		if _, ok := want[id]; ok {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}

// buildPayload sends {status} for appointments without item ids and the full
// servicos list otherwise, with the top-level status set to the new action status
func buildPayload(a *domain.Appointment, targets []string, next domain.Status) *backend.AppointmentPayload {
	payload := &backend.AppointmentPayload{StoreID: a.StoreID}
	if len(targets) == 0 {
		payload.Status = string(next)
		return payload
	}

	targeted := make(map[string]struct{}, len(targets))
	for _, id := range targets {
		targeted[id] = struct{}{}
	}

	statuses := make([]domain.Status, 0, len(a.Items))
	payload.Servicos = make([]backend.ServiceItemPayload, 0, len(a.Items))
	for _, it := range a.Items {
		it.Status = a.EffectiveStatus(it)
		if _, ok := targeted[it.ItemID]; ok && it.ItemID != "" {
			it.Status = next
		}
		statuses = append(statuses, it.Status)
		payload.Servicos = append(payload.Servicos, backend.ItemPayloadFromDomain(it))
	}
	_, action := domain.AggregateStatuses(statuses)
	payload.Status = string(action)
	return payload
}
