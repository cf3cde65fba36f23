package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

var (
	ana = domain.Professional{ID: "p1", Name: "Ana", Kind: domain.KindGroomer}
	bia = domain.Professional{ID: "p2", Name: "Bia", Kind: domain.KindBather}
	at9 = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
)

func TestResolveChainOrder(t *testing.T) {
	pros := []domain.Professional{ana, bia}
	visible := []domain.Column{domain.ColumnFor(bia), domain.NoPreferenceColumn()}
	chain := New(pros, visible, time.UTC)

	tests := []struct {
		name string
		appt domain.Appointment
		item domain.ServiceItem
		want string
	}{
		{
			name: "item explicit id",
			appt: domain.Appointment{ProfessionalID: "p1", ScheduledAt: at9},
			item: domain.ServiceItem{ItemID: "i1", ProfessionalID: "p2"},
			want: "p2",
		},
		{
			name: "unknown item id falls to appointment default",
			appt: domain.Appointment{ProfessionalID: "p1", ScheduledAt: at9},
			item: domain.ServiceItem{ItemID: "i1", ProfessionalID: "ghost"},
			want: "p1",
		},
		{
			name: "legacy name case-insensitive",
			appt: domain.Appointment{ProfessionalName: "  bia ", ScheduledAt: at9},
			item: domain.ServiceItem{ItemID: "i1"},
			want: "p2",
		},
		{
			name: "first visible",
			appt: domain.Appointment{ScheduledAt: at9},
			item: domain.ServiceItem{ItemID: "i1"},
			want: "p2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := chain.Resolve(&tt.appt, tt.item)
			id, ok := ref.ID()
			assert.True(t, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestResolveSiblingAtSameTime(t *testing.T) {
	chain := New([]domain.Professional{bia, ana}, nil, time.UTC)
	appt := domain.Appointment{
		ScheduledAt: at9,
		Items: []domain.ServiceItem{
			{ItemID: "i1", ProfessionalID: "p1"},
			{ItemID: "i2"},
			{ItemID: "i3", Hour: "11:00"},
		},
	}

	id, _ := chain.Resolve(&appt, appt.Items[1]).ID()
	assert.Equal(t, "p1", id)

	// different hour: no sibling, store order decides
	id, _ = chain.Resolve(&appt, appt.Items[2]).ID()
	assert.Equal(t, "p2", id)
}

func TestResolveNoProfessionals(t *testing.T) {
	chain := New(nil, []domain.Column{domain.NoPreferenceColumn()}, time.UTC)
	appt := domain.Appointment{ProfessionalID: "p1", ScheduledAt: at9}
	ref := chain.Resolve(&appt, domain.ServiceItem{})
	assert.True(t, ref.IsNoPreference())
}

func TestItemTime(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	appt := domain.Appointment{ScheduledAt: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)}

	assert.Equal(t, time.Date(2025, 3, 3, 9, 0, 0, 0, loc), ItemTime(&appt, domain.ServiceItem{}, loc))
	assert.Equal(t, time.Date(2025, 3, 3, 14, 30, 0, 0, loc), ItemTime(&appt, domain.ServiceItem{Hour: "14:30"}, loc))
	assert.Equal(t, time.Date(2025, 3, 3, 9, 0, 0, 0, loc), ItemTime(&appt, domain.ServiceItem{Hour: "bad"}, loc))
}

func TestWithResolvers(t *testing.T) {
	chain := New([]domain.Professional{ana}, nil, time.UTC).WithResolvers(ByItem)
	appt := domain.Appointment{ProfessionalID: "p1", ScheduledAt: at9}
	assert.True(t, chain.Resolve(&appt, domain.ServiceItem{}).IsNoPreference())
}

func TestBySiblingUsesUntrimmedItems(t *testing.T) {
	assigned := domain.ServiceItem{ItemID: "i1", ProfessionalID: "p2"}
	unassigned := domain.ServiceItem{ItemID: "i2"}
	trimmed := domain.Appointment{ID: "a1", ScheduledAt: at9, Items: []domain.ServiceItem{unassigned}}

	visible := []domain.Column{domain.ColumnFor(ana), domain.ColumnFor(bia)}
	chain := New([]domain.Professional{ana, bia}, visible, time.UTC)
	assert.Equal(t, "p1", chain.Resolve(&trimmed, unassigned).Key())

	full := chain.WithItems(map[string][]domain.ServiceItem{"a1": {assigned, unassigned}})
	assert.Equal(t, "p2", full.Resolve(&trimmed, unassigned).Key())
}
