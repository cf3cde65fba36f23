package delete_appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
)

// UseCase use case удаления записи
type UseCase struct {
	backend  BackendClient
	reloader AgendaReloader
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(backend BackendClient, reloader AgendaReloader, logger Logger) *UseCase {
	return &UseCase{
		backend:  backend,
		reloader: reloader,
		logger:   logger,
	}
}

// Execute удаляет запись после подтверждения и перезагружает агенду
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.State == nil || strings.TrimSpace(req.AppointmentID) == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	if !req.Confirm {
		return nil, fmt.Errorf("%w: %s", ErrNotConfirmed, domain.MsgDeleteTitle)
	}

	// 2. Удаление
	delErr := uc.backend.DeleteAppointment(ctx, req.AppointmentID)

	// 3. Перезагрузка в любом случае
	reloaded, reloadErr := uc.reloader.Reload(ctx, req.State, load_agenda.TriggerWrite)
	if reloadErr != nil {
		uc.logger.Warn("DeleteAppointment: reload after delete of %s failed: %v", req.AppointmentID, reloadErr)
	}

	if delErr != nil {
		uc.logger.Error("DeleteAppointment: delete %s failed: %v", req.AppointmentID, delErr)
		return nil, fmt.Errorf("%w: delete appointment %s: %w", ErrBackend, req.AppointmentID, delErr)
	}
	uc.logger.Info("DeleteAppointment: appointment %s deleted by %s", req.AppointmentID, req.Actor.UserID)

	resp := &Response{AppointmentID: req.AppointmentID}
	if reloaded != nil {
		resp.Hash = reloaded.Hash
		resp.Reloaded = reloadErr == nil
	}
	return resp, nil
}
