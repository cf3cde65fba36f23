package save_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/integrations/backend"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/logger"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) CreateAppointment(ctx context.Context, payload *backend.AppointmentPayload) (*domain.Appointment, error) {
	args := m.Called(ctx, payload)
	appt, _ := args.Get(0).(*domain.Appointment)
	return appt, args.Error(1)
}

func (m *mockBackend) UpdateAppointment(ctx context.Context, id string, payload *backend.AppointmentPayload) error {
	return m.Called(ctx, id, payload).Error(0)
}

type mockReloader struct {
	mock.Mock
}

func (m *mockReloader) Reload(ctx context.Context, st *state.State, trigger string) (*load_agenda.Response, error) {
	args := m.Called(ctx, st, trigger)
	resp, _ := args.Get(0).(*load_agenda.Response)
	return resp, args.Error(1)
}

var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func seeded(appts ...domain.Appointment) *state.State {
	st := state.New()
	st.ReplaceProfessionals("s1", []domain.Professional{{ID: "p1"}, {ID: "p2"}})
	st.ReplaceAppointments(appts, "h0", time.Now())
	st.SetView(state.View{StoreID: "s1", Date: monday, Mode: domain.ViewDay})
	return st
}

func validCreate(st *state.State) *Request {
	return &Request{
		State:          st,
		StoreID:        "s1",
		CustomerID:     "c1",
		PetID:          "pet1",
		Hour:           "10:30",
		ProfessionalID: "p1",
		Services: []ServiceInput{
			{ServiceID: "banho", Price: 4000, ProfessionalID: domain.NoPreferenceKey},
			{ServiceID: "tosa", Price: 3000, ProfessionalID: "p2", Hour: "11:00"},
		},
	}
}

func TestExecuteCreate(t *testing.T) {
	ctx := context.Background()
	st := seeded()
	be, rl := new(mockBackend), new(mockReloader)

	var sent *backend.AppointmentPayload
	be.On("CreateAppointment", ctx, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(*backend.AppointmentPayload)
	}).Return(&domain.Appointment{ID: "new"}, nil).Once()
	rl.On("Reload", ctx, st, load_agenda.TriggerWrite).Return(&load_agenda.Response{Hash: "h1"}, nil).Once()

	resp, err := NewUseCase(be, rl, time.UTC, logger.Nop{}).Execute(ctx, validCreate(st))
	require.NoError(t, err)
	assert.Equal(t, "new", resp.AppointmentID)
	assert.True(t, resp.Created)

	require.NotNil(t, sent)
	require.NotNil(t, sent.ScheduledAt)
	assert.True(t, sent.ScheduledAt.Equal(monday.Add(10*time.Hour+30*time.Minute)))
	assert.Equal(t, "p1", *sent.ProfissionalID)
	assert.Equal(t, "agendado", sent.Status)
	require.Len(t, sent.Servicos, 2)
	assert.Empty(t, sent.Servicos[0].ProfissionalID)
	assert.Equal(t, 40.0, sent.Servicos[0].Valor)
	assert.Equal(t, "p2", sent.Servicos[1].ProfissionalID)
}

func TestExecuteCreateValidation(t *testing.T) {
	st := seeded()
	uc := NewUseCase(new(mockBackend), new(mockReloader), time.UTC, logger.Nop{})

	tests := []struct {
		name    string
		mutate  func(r *Request)
		field   string
		message string
	}{
		{"hour", func(r *Request) { r.Hour = "" }, "hour", MsgHourRequired},
		{"date", func(r *Request) { r.Date = "ontem" }, "date", MsgInvalidDate},
		{"store", func(r *Request) { r.StoreID = "" }, "storeId", MsgStoreRequired},
		{"professional", func(r *Request) { r.ProfessionalID = domain.NoPreferenceKey }, "profissionalId", MsgProfessionalRequired},
		{"customer", func(r *Request) { r.CustomerID = "" }, "clienteId", MsgCustomerRequired},
		{"pet", func(r *Request) { r.PetID = "" }, "petId", MsgPetRequired},
		{"services", func(r *Request) { r.Services = nil }, "servicos", MsgServicesRequired},
		{"item professional", func(r *Request) { r.Services[1].ProfessionalID = "ghost" }, "servicos[1].profissionalId", MsgProfessionalRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate(st)
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			ve, ok := domain.AsValidationError(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.message, ve.Message)
		})
	}
}

func TestExecuteUpdateLocked(t *testing.T) {
	ctx := context.Background()
	paid := domain.Appointment{
		ID: "A", StoreID: "s1", Paid: true, ScheduledAt: monday.Add(9 * time.Hour),
		Items: []domain.ServiceItem{{ItemID: "i1", ServiceID: "banho", Price: 4000, ProfessionalID: "p1"}},
	}
	st := seeded(paid)
	be, rl := new(mockBackend), new(mockReloader)
	uc := NewUseCase(be, rl, time.UTC, logger.Nop{})

	moved := &Request{
		State: st, Actor: domain.Actor{UserID: "u1", Role: "funcionario"}, AppointmentID: "A",
		Hour: "10:00", ProfessionalID: "p1",
		Services: []ServiceInput{{ItemID: "i1", ServiceID: "banho", Price: 4000, ProfessionalID: "p1"}},
	}
	_, err := uc.Execute(ctx, moved)
	assert.ErrorIs(t, err, ErrAppointmentLocked)
	be.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything, mock.Anything)

	// same slot and services, only observations change
	notes := "sem perfume"
	moved.Hour = "09:00"
	moved.Observations = &notes
	be.On("UpdateAppointment", ctx, "A", mock.Anything).Return(nil).Once()
	rl.On("Reload", ctx, st, load_agenda.TriggerWrite).Return(&load_agenda.Response{Hash: "h2"}, nil).Once()

	resp, err := uc.Execute(ctx, moved)
	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.Equal(t, "h2", resp.Hash)
}

func TestOpenBeginsDraft(t *testing.T) {
	st := seeded(domain.Appointment{ID: "A", Items: []domain.ServiceItem{{ItemID: "i1"}}})
	uc := NewUseCase(new(mockBackend), new(mockReloader), time.UTC, logger.Nop{})

	appt, err := uc.Open(st, "A")
	require.NoError(t, err)
	assert.Equal(t, "A", appt.ID)

	draft, ok := st.Draft()
	require.True(t, ok)
	assert.Equal(t, "A", draft.AppointmentID)
	assert.Len(t, draft.Services, 1)

	_, err = uc.Open(st, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
