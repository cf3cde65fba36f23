package delete_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingAgenda/internal/integrations/backend"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/logger"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) DeleteAppointment(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockReloader struct {
	mock.Mock
}

func (m *mockReloader) Reload(ctx context.Context, st *state.State, trigger string) (*load_agenda.Response, error) {
	args := m.Called(ctx, st, trigger)
	resp, _ := args.Get(0).(*load_agenda.Response)
	return resp, args.Error(1)
}

func TestExecuteRequiresConfirmation(t *testing.T) {
	be, rl := new(mockBackend), new(mockReloader)
	_, err := NewUseCase(be, rl, logger.Nop{}).Execute(context.Background(), &Request{State: state.New(), AppointmentID: "A"})
	assert.ErrorIs(t, err, ErrNotConfirmed)
	be.AssertNotCalled(t, "DeleteAppointment", mock.Anything, mock.Anything)
}

func TestExecuteDeletesAndReloads(t *testing.T) {
	ctx := context.Background()
	st := state.New()
	be, rl := new(mockBackend), new(mockReloader)
	be.On("DeleteAppointment", ctx, "A").Return(nil).Once()
	rl.On("Reload", ctx, st, load_agenda.TriggerWrite).Return(&load_agenda.Response{Hash: "h9"}, nil).Once()

	resp, err := NewUseCase(be, rl, logger.Nop{}).Execute(ctx, &Request{State: st, AppointmentID: "A", Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, "h9", resp.Hash)
	assert.True(t, resp.Reloaded)
}

func TestExecuteNotFoundStillReloads(t *testing.T) {
	ctx := context.Background()
	st := state.New()
	be, rl := new(mockBackend), new(mockReloader)
	be.On("DeleteAppointment", ctx, "A").Return(&backend.ResponseError{StatusCode: 404, Kind: backend.ErrNotFound}).Once()
	rl.On("Reload", ctx, st, load_agenda.TriggerWrite).Return(&load_agenda.Response{}, nil).Once()

	_, err := NewUseCase(be, rl, logger.Nop{}).Execute(ctx, &Request{State: st, AppointmentID: "A", Confirm: true})
	assert.ErrorIs(t, err, backend.ErrNotFound)
	rl.AssertExpectations(t)
}
