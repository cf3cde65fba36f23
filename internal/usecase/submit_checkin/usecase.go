package submit_checkin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	checkinRepo "github.com/m04kA/SMC-GroomingAgenda/internal/infra/storage/checkin"
)

// MaxNotesLength bounds each free-text field of the form
const MaxNotesLength = 2000

// MsgNotesTooLong is shown under an oversized field
const MsgNotesTooLong = "Texto muito longo (máximo de 2000 caracteres)."

// UseCase use case сохранения заполненного check-in
type UseCase struct {
	repo    CheckinRepository
	pending PendingForms
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo CheckinRepository, pending PendingForms, logger Logger) *UseCase {
	return &UseCase{
		repo:    repo,
		pending: pending,
		logger:  logger,
	}
}

// Execute stores the filled form and dismisses it from the pending list
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || strings.TrimSpace(req.CheckinID) == "" {
		return nil, fmt.Errorf("%w: check-in id is required", ErrInvalidInput)
	}
	fields := map[string]string{
		"analise":     req.PreBathNotes,
		"restricao":   req.Restrictions,
		"medicamento": req.Medications,
	}
	for _, name := range []string{"analise", "restricao", "medicamento"} {
		if utf8.RuneCountInString(fields[name]) > MaxNotesLength {
			return nil, domain.NewValidationError(name, MsgNotesTooLong)
		}
	}

	// 2. Подготовленная форма пользователя
	form, found := uc.pending.Get(req.Actor.UserID, req.CheckinID)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrCheckinNotFound, req.CheckinID)
	}

	// 3. Сохранение
	rec, err := uc.repo.Create(ctx, &domain.CheckinRecord{
		AppointmentID: form.AppointmentID,
		CustomerID:    form.CustomerID,
		PetID:         form.PetID,
		CustomerName:  form.CustomerName,
		PetName:       form.PetName,
		Contact:       form.Contact,
		Address:       form.Address,
		PreBathNotes:  strings.TrimSpace(req.PreBathNotes),
		Restrictions:  strings.TrimSpace(req.Restrictions),
		Medications:   strings.TrimSpace(req.Medications),
		SubmittedBy:   req.Actor.UserID,
	})
	if err != nil {
		uc.logger.Error("SubmitCheckin: failed to store check-in of %s: %v", form.AppointmentID, err)
		return nil, fmt.Errorf("%w: create: %v", ErrRepository, err)
	}

	// 4. Убираем форму из списка ожидающих
	uc.pending.Remove(req.Actor.UserID, req.CheckinID)
	uc.logger.Info("SubmitCheckin: check-in %s of appointment %s stored by %s", rec.ID, rec.AppointmentID, req.Actor.UserID)

	return &Response{Record: rec}, nil
}

// Record returns a stored check-in
func (uc *UseCase) Record(ctx context.Context, id string) (*domain.CheckinRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: record id is required", ErrInvalidInput)
	}
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, checkinRepo.ErrCheckinNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
		}
		return nil, fmt.Errorf("%w: get: %v", ErrRepository, err)
	}
	return rec, nil
}

// History lists the check-ins of an appointment, newest first
func (uc *UseCase) History(ctx context.Context, appointmentID string) ([]domain.CheckinRecord, error) {
	if strings.TrimSpace(appointmentID) == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	records, err := uc.repo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrRepository, err)
	}
	return records, nil
}
