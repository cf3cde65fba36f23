package move_appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/resolve"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/timeutil"
)

// Messages shown next to the drop target
const (
	MsgInvalidDate         = "Data inválida."
	MsgInvalidHour         = "Hora inválida."
	MsgOutsideHours        = "Horário fora do expediente da loja."
	MsgUnknownProfessional = "Profissional não encontrado."
)

// UseCase use case переноса карточки в сетке
type UseCase struct {
	backend  BackendClient
	reloader AgendaReloader
	loc      *time.Location
	fallback domain.DayHours
	logger   Logger
	metrics  Metrics
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(backend BackendClient, reloader AgendaReloader, loc *time.Location, fallback domain.DayHours, logger Logger, metrics Metrics) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		backend:  backend,
		reloader: reloader,
		loc:      loc,
		fallback: fallback,
		logger:   logger,
		metrics:  metrics,
	}
}

// Authorize checks that actor may start dragging the appointment
func (uc *UseCase) Authorize(st *state.State, actor domain.Actor, appointmentID string) (*domain.Appointment, error) {
	if st == nil || strings.TrimSpace(appointmentID) == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	appt, found := st.Appointment(appointmentID)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, appointmentID)
	}
	if appt.IsLocked() && !actor.IsElevated() {
		uc.logger.Warn("MoveAppointment: user %s (role %q) tried to move invoiced appointment %s", actor.UserID, actor.Role, appointmentID)
		return nil, fmt.Errorf("%w: %s", ErrAppointmentLocked, domain.MsgAppointmentLocked)
	}
	return &appt, nil
}

// Execute переносит карточку и перезагружает агенду
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверка прав
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	appt, err := uc.Authorize(req.State, req.Actor, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	// 2. Валидация цели
	store, found := req.State.Store(appt.StoreID)
	if !found {
		store, found = req.State.Store(req.State.View().StoreID)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, appt.StoreID)
	}
	target, err := uc.validateTarget(&store, req.TargetDate, req.TargetHour)
	if err != nil {
		return nil, err
	}
	ref, err := uc.targetRef(req.State.Professionals(store.ID), req.TargetColumn)
	if err != nil {
		return nil, err
	}

	// 3. План переноса
	plan := BuildPlan(*appt, req.CardItemIDs, target, ref, uc.loc)

	// 4. Запись в backend
	putErr := uc.backend.UpdateAppointment(ctx, appt.ID, plan.Payload)
	if uc.metrics != nil {
		uc.metrics.ObserveMove(string(plan.Scope), putErr)
	}

	// 5. Перезагрузка в любом случае
	reloaded, reloadErr := uc.reloader.Reload(ctx, req.State, load_agenda.TriggerWrite)
	if reloadErr != nil {
		uc.logger.Warn("MoveAppointment: reload after move of %s failed: %v", appt.ID, reloadErr)
	}

	if putErr != nil {
		uc.logger.Error("MoveAppointment: %s move of %s to %s failed: %v", plan.Scope, appt.ID, target.Format(time.RFC3339), putErr)
		return nil, fmt.Errorf("%w: update appointment %s: %w", ErrBackend, appt.ID, putErr)
	}

	uc.logger.Info("MoveAppointment: %s move of %s (%d items) to %s column %s by %s",
		plan.Scope, appt.ID, len(plan.ItemIDs), target.Format(time.RFC3339), ref.Key(), req.Actor.UserID)

	resp := &Response{AppointmentID: appt.ID, Scope: plan.Scope}
	if reloaded != nil {
		resp.Hash = reloaded.Hash
		resp.Reloaded = reloadErr == nil
	}
	return resp, nil
}

func (uc *UseCase) validateTarget(store *domain.Store, date, hour string) (time.Time, error) {
	day, err := timeutil.ParseDate(date, uc.loc)
	if err != nil {
		return time.Time{}, domain.NewValidationError("targetDate", MsgInvalidDate)
	}
	minute, err := timeutil.ParseHM(hour)
	if err != nil || minute >= 24*60 {
		return time.Time{}, domain.NewValidationError("targetHour", MsgInvalidHour)
	}

	hours := store.HoursOn(day, uc.fallback)
	if hours.Closed {
		return time.Time{}, domain.NewValidationError("targetDate", domain.MsgStoreClosed)
	}
	if _, _, open := hours.Window(); open && !hours.Contains(minute) {
		return time.Time{}, domain.NewValidationError("targetHour", MsgOutsideHours)
	}
	return timeutil.At(day, timeutil.FormatHM(minute))
}

func (uc *UseCase) targetRef(professionals []domain.Professional, column string) (domain.ProfessionalRef, error) {
	column = strings.TrimSpace(column)
	if column == "" || column == domain.NoPreferenceKey {
		return domain.NoPreference(), nil
	}
	chain := resolve.New(professionals, nil, uc.loc)
	if !chain.Known(column) {
		return domain.ProfessionalRef{}, domain.NewValidationError("targetColumn", MsgUnknownProfessional)
	}
	return domain.RealProfessional(column), nil
}
