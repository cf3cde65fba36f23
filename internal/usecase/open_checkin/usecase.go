package open_checkin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-GroomingAgenda/internal/checkin"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/integrations/backend"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/advance_status"
)

// Hydrator fills check-in forms from the backend. It is the checkin.Opener of the dispatcher.
type Hydrator struct {
	backend BackendClient
	logger  Logger
	now     func() time.Time
}

// NewHydrator создает новый экземпляр
func NewHydrator(backend BackendClient, logger Logger) *Hydrator {
	return &Hydrator{backend: backend, logger: logger, now: time.Now}
}

// Open fetches the customer and the pets concurrently and builds the form.
// A failed fetch leaves its fields blank. Only a backend that answers neither
// call is an error, so the dispatcher tries again.
func (h *Hydrator) Open(ctx context.Context, task checkin.Task) (*domain.CheckinForm, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		customer *domain.Customer
		pets     []domain.Pet
		petsErr  error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		customer = h.backend.GetCustomerWithGracefulDegradation(gctx, task.CustomerID)
		return nil
	})
	g.Go(func() error {
		if task.CustomerID == "" || task.PetID == "" {
			return nil
		}
		pets, petsErr = h.backend.ListCustomerPets(gctx, task.CustomerID)
		return nil
	})
	_ = g.Wait()

	if customer == nil && petsErr != nil && backend.IsTransport(petsErr) {
		return nil, fmt.Errorf("%w: appointment %s: %v", ErrBackendUnavailable, task.AppointmentID, petsErr)
	}
	if petsErr != nil {
		h.logger.Warn("OpenCheckin: pets of customer %s unavailable: %v", task.CustomerID, petsErr)
	}

	form := &domain.CheckinForm{
		AppointmentID: task.AppointmentID,
		CustomerID:    task.CustomerID,
		PetID:         task.PetID,
		CustomerName:  strings.TrimSpace(task.CustomerName),
		PetName:       strings.TrimSpace(task.PetName),
		PreparedAt:    h.now(),
	}

	if customer != nil {
		form.Contact.MobileDDD, form.Contact.Mobile = SplitPhone(customer.Mobile)
		form.Contact.LandlineDDD, form.Contact.Landline = SplitPhone(customer.Landline)
		if form.CustomerName == "" {
			form.CustomerName = strings.TrimSpace(customer.Name)
		}
		if a := customer.Address; a != nil {
			form.Address = domain.Address{
				CEP:        FormatCEP(a.CEP),
				Street:     FormatAddress(a),
				Number:     strings.TrimSpace(a.Number),
				Complement: strings.TrimSpace(a.Complement),
			}
		}
	}

	for _, p := range pets {
		if p.ID != task.PetID {
			continue
		}
		form.PetBreed = strings.TrimSpace(p.Breed)
		form.PetKind = capitalizeFirst(p.Kind)
		if form.PetName == "" {
			form.PetName = strings.TrimSpace(p.Name)
		}
		break
	}
	return form, nil
}

// UseCase use case постановки check-in в очередь по записи
type UseCase struct {
	dispatcher CheckinDispatcher
	logger     Logger
	now        func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(dispatcher CheckinDispatcher, logger Logger) *UseCase {
	return &UseCase{dispatcher: dispatcher, logger: logger, now: time.Now}
}

// Execute queues the preparation of a check-in form for an appointment.
// The form shows up in the user's pending list once ready.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.State == nil || strings.TrimSpace(req.AppointmentID) == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	appt, found := req.State.Appointment(req.AppointmentID)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, req.AppointmentID)
	}

	id, ok := uc.dispatcher.Dispatch(checkin.Task{
		Actor:         req.Actor,
		AppointmentID: appt.ID,
		CustomerID:    appt.CustomerID,
		PetID:         appt.PetID,
		CustomerName:  appt.CustomerName,
		PetName:       appt.PetName,
		QueuedAt:      uc.now(),
	})
	if !ok {
		uc.logger.Warn("OpenCheckin: queue full, check-in of %s dropped", appt.ID)
		return nil, ErrQueueFull
	}
	return &Response{
		CheckinID: id,
		Prompt:    advance_status.CheckinPrompt(appt.CustomerName, appt.PetName),
	}, nil
}
