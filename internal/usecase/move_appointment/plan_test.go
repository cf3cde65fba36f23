package move_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func twoItems() domain.Appointment {
	return domain.Appointment{
		ID:          "A",
		StoreID:     "s1",
		ScheduledAt: monday.Add(9 * time.Hour),
		Items: []domain.ServiceItem{
			{ItemID: "i1", ProfessionalID: "p1"},
			{ItemID: "i2"},
		},
	}
}

func TestBuildPlan(t *testing.T) {
	ten := monday.Add(10 * time.Hour)

	tests := []struct {
		name   string
		appt   domain.Appointment
		card   []string
		target time.Time
		ref    domain.ProfessionalRef
		check  func(t *testing.T, p Plan)
	}{
		{
			name:   "whole card moves appointment",
			appt:   twoItems(),
			card:   []string{"i2", "i1"},
			target: ten,
			ref:    domain.RealProfessional("p2"),
			check: func(t *testing.T, p Plan) {
				assert.Equal(t, ScopeWhole, p.Scope)
				require.NotNil(t, p.Payload.ScheduledAt)
				assert.True(t, p.Payload.ScheduledAt.Equal(ten))
				require.NotNil(t, p.Payload.ProfissionalID)
				assert.Equal(t, "p2", *p.Payload.ProfissionalID)
				assert.Empty(t, p.Payload.ServiceItemIDs)
				assert.Nil(t, p.Payload.ServiceScheduledAt)
			},
		},
		{
			name:   "subset moves only those items",
			appt:   twoItems(),
			card:   []string{"i2", "zz"},
			target: ten,
			ref:    domain.RealProfessional("p2"),
			check: func(t *testing.T, p Plan) {
				assert.Equal(t, ScopePartial, p.Scope)
				assert.Equal(t, []string{"i2"}, p.Payload.ServiceItemIDs)
				assert.Equal(t, "10:00", p.Payload.ServiceHour)
				require.NotNil(t, p.Payload.ServiceScheduledAt)
				assert.True(t, p.Payload.ServiceScheduledAt.Equal(ten))
				assert.Equal(t, "p2", p.Payload.ServiceProfissionalID)
				assert.Nil(t, p.Payload.ScheduledAt)
				assert.Nil(t, p.Payload.ProfissionalID)
			},
		},
		{
			name:   "partial to no preference sends no professional",
			appt:   twoItems(),
			card:   []string{"i1"},
			target: ten,
			ref:    domain.NoPreference(),
			check: func(t *testing.T, p Plan) {
				assert.Equal(t, ScopePartial, p.Scope)
				assert.Empty(t, p.Payload.ServiceProfissionalID)
				assert.Nil(t, p.Payload.ProfissionalID)
				assert.Nil(t, p.Payload.ScheduledAt)
			},
		},
		{
			name:   "legacy appointment is always whole",
			appt:   domain.Appointment{ID: "L", ScheduledAt: monday.Add(9 * time.Hour), LegacyService: "Banho"},
			card:   nil,
			target: ten,
			ref:    domain.NoPreference(),
			check: func(t *testing.T, p Plan) {
				assert.Equal(t, ScopeWhole, p.Scope)
				assert.NotNil(t, p.Payload.ScheduledAt)
				assert.Nil(t, p.Payload.ProfissionalID)
			},
		},
		{
			name:   "same slot omits timestamp",
			appt:   twoItems(),
			card:   []string{"i1", "i2"},
			target: monday.Add(9 * time.Hour),
			ref:    domain.RealProfessional("p2"),
			check: func(t *testing.T, p Plan) {
				assert.Equal(t, ScopeWhole, p.Scope)
				assert.Nil(t, p.Payload.ScheduledAt)
				require.NotNil(t, p.Payload.ProfissionalID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, BuildPlan(tt.appt, tt.card, tt.target, tt.ref, time.UTC))
		})
	}
}
