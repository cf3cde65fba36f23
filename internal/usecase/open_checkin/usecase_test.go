package open_checkin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingAgenda/internal/checkin"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/integrations/backend"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/logger"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) GetCustomerWithGracefulDegradation(ctx context.Context, customerID string) *domain.Customer {
	c, _ := m.Called(ctx, customerID).Get(0).(*domain.Customer)
	return c
}

func (m *mockBackend) ListCustomerPets(ctx context.Context, customerID string) ([]domain.Pet, error) {
	args := m.Called(ctx, customerID)
	pets, _ := args.Get(0).([]domain.Pet)
	return pets, args.Error(1)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(task checkin.Task) (string, bool) {
	args := m.Called(task)
	return args.String(0), args.Bool(1)
}

func TestFormatting(t *testing.T) {
	ddd, num := SplitPhone("+55 (11) 98765-4321")
	assert.Equal(t, "11", ddd)
	assert.Equal(t, "98765-4321", num)

	ddd, num = SplitPhone("011 3456-7890")
	assert.Equal(t, "11", ddd)
	assert.Equal(t, "3456-7890", num)

	ddd, num = SplitPhone("")
	assert.Empty(t, ddd)
	assert.Empty(t, num)

	assert.Equal(t, "01310-100", FormatCEP("01310100"))
	assert.Equal(t, "1234", FormatCEP("1234"))

	assert.Equal(t, "Av. Paulista, Bela Vista - São Paulo/SP", FormatAddress(&domain.CustomerAddress{
		Street: "Av. Paulista", Neighborhood: "Bela Vista", City: "São Paulo", State: "SP",
	}))
	assert.Equal(t, "Campinas", FormatAddress(&domain.CustomerAddress{City: "Campinas"}))
	assert.Empty(t, FormatAddress(nil))
}

func TestHydratorOpen(t *testing.T) {
	ctx := context.Background()
	be := new(mockBackend)
	be.On("GetCustomerWithGracefulDegradation", mock.Anything, "c1").Return(&domain.Customer{
		ID: "c1", Name: "Maria", Mobile: "11987654321", Landline: "1134567890",
		Address: &domain.CustomerAddress{CEP: "01310100", Street: "Rua A", City: "Santos", State: "SP", Number: "10"},
	})
	be.On("ListCustomerPets", mock.Anything, "c1").Return([]domain.Pet{
		{ID: "x", Name: "Outro"},
		{ID: "pet1", Name: "Rex", Breed: "Poodle", Kind: "cachorro"},
	}, nil)

	form, err := NewHydrator(be, logger.Nop{}).Open(ctx, checkin.Task{
		AppointmentID: "A", CustomerID: "c1", PetID: "pet1", PetName: "Rex",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", form.CustomerName)
	assert.Equal(t, "Poodle", form.PetBreed)
	assert.Equal(t, "Cachorro", form.PetKind)
	assert.Equal(t, domain.Contact{MobileDDD: "11", Mobile: "98765-4321", LandlineDDD: "11", Landline: "3456-7890"}, form.Contact)
	assert.Equal(t, "01310-100", form.Address.CEP)
	assert.Equal(t, "Rua A, Santos/SP", form.Address.Street)
	assert.Equal(t, "10", form.Address.Number)
}

func TestHydratorDegrades(t *testing.T) {
	ctx := context.Background()

	// customer missing, pets fine: the form opens with blank contact
	be := new(mockBackend)
	be.On("GetCustomerWithGracefulDegradation", mock.Anything, "c1").Return(nil)
	be.On("ListCustomerPets", mock.Anything, "c1").Return([]domain.Pet{{ID: "pet1", Breed: "SRD"}}, nil)
	form, err := NewHydrator(be, logger.Nop{}).Open(ctx, checkin.Task{CustomerID: "c1", PetID: "pet1"})
	require.NoError(t, err)
	assert.Empty(t, form.Contact.Mobile)
	assert.Equal(t, "SRD", form.PetBreed)

	// backend down for both: error so the dispatcher retries
	down := new(mockBackend)
	down.On("GetCustomerWithGracefulDegradation", mock.Anything, "c1").Return(nil)
	down.On("ListCustomerPets", mock.Anything, "c1").Return(nil, &backend.ResponseError{StatusCode: 502, Kind: backend.ErrUnavailable})
	_, err = NewHydrator(down, logger.Nop{}).Open(ctx, checkin.Task{CustomerID: "c1", PetID: "pet1"})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestExecuteQueuesTask(t *testing.T) {
	st := state.New()
	st.ReplaceAppointments([]domain.Appointment{{ID: "A", CustomerID: "c1", PetID: "pet1", CustomerName: "Ana", PetName: "Bob"}}, "h", time.Now())
	actor := domain.Actor{UserID: "u1", Token: "t"}

	disp := new(mockDispatcher)
	disp.On("Dispatch", mock.MatchedBy(func(task checkin.Task) bool {
		return task.AppointmentID == "A" && task.CustomerID == "c1" && task.Actor == actor
	})).Return("ck1", true).Once()

	resp, err := NewUseCase(disp, logger.Nop{}).Execute(context.Background(), &Request{State: st, Actor: actor, AppointmentID: "A"})
	require.NoError(t, err)
	assert.Equal(t, "ck1", resp.CheckinID)
	assert.Equal(t, "Deseja realizar o check-in do cliente Ana e do pet Bob?", resp.Prompt)

	full := new(mockDispatcher)
	full.On("Dispatch", mock.Anything).Return("", false)
	_, err = NewUseCase(full, logger.Nop{}).Execute(context.Background(), &Request{State: st, Actor: actor, AppointmentID: "A"})
	assert.ErrorIs(t, err, ErrQueueFull)

	_, err = NewUseCase(full, logger.Nop{}).Execute(context.Background(), &Request{State: st, AppointmentID: "nope"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
