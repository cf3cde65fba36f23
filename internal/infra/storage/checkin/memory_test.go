package checkin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	base := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	first, err := repo.Create(ctx, &domain.CheckinRecord{AppointmentID: "a1", SubmittedAt: base})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := repo.Create(ctx, &domain.CheckinRecord{AppointmentID: "a1", SubmittedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.CheckinRecord{AppointmentID: "a2"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "a1", got.AppointmentID)

	list, err := repo.ListByAppointment(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, ErrCheckinNotFound))
}
