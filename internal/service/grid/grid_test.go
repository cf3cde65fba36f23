package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/filtering"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/resolve"
)

var (
	p1     = domain.Professional{ID: "p1", Name: "Ana", Kind: domain.KindGroomer}
	p2     = domain.Professional{ID: "p2", Name: "Bia", Kind: domain.KindBather}
	monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	centro = &domain.Store{
		ID:   "s1",
		Name: "Centro",
		BusinessHours: map[time.Weekday]domain.DayHours{
			time.Monday: {Open: "08:00", Close: "18:00"},
			time.Sunday: {Closed: true},
		},
	}
	fallback = domain.DayHours{Open: domain.DefaultOpen, Close: domain.DefaultClose}
)

func at(day time.Time, h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func input(appts []domain.Appointment, pros ...domain.Professional) Input {
	res := filtering.Apply(domain.FilterSelection{}, appts, pros, time.UTC)
	return Input{
		Store:        centro,
		Fallback:     fallback,
		Columns:      res.Columns,
		Appointments: res.Appointments,
		Chain:        res.Chain,
	}
}

func allCards(v DayView) []Card {
	var out []Card
	for _, r := range v.Rows {
		for _, c := range r.Cells {
			out = append(out, c.Cards...)
		}
	}
	return out
}

func TestExpandConservesItemsAndValue(t *testing.T) {
	appt := domain.Appointment{
		ID:          "a1",
		ScheduledAt: at(monday, 9, 0),
		Items: []domain.ServiceItem{
			{ItemID: "i1", ProfessionalID: "p1", Price: 4000, Name: "Banho"},
			{ItemID: "i2", ProfessionalID: "p2", Price: 3000, Name: "Tosa"},
			{ItemID: "i3", ProfessionalID: "p1", Price: 1500, Name: "Hidratação"},
			{ItemID: "i4", ProfessionalID: "p1", Price: 2000, Name: "Unhas", Hour: "11:00"},
		},
	}
	chain := resolve.New([]domain.Professional{p1, p2}, nil, time.UTC)

	cards := Expand(&appt, chain)
	require.Len(t, cards, 3)

	var total domain.Money
	seen := map[string]int{}
	for _, c := range cards {
		total += c.Value
		for _, id := range c.ItemIDs {
			seen[id]++
		}
		assert.False(t, c.Whole)
	}
	assert.Equal(t, appt.TotalValue(), total)
	assert.Equal(t, map[string]int{"i1": 1, "i2": 1, "i3": 1, "i4": 1}, seen)

	assert.Equal(t, "Banho + Hidratação", cards[0].Services)
	assert.Equal(t, "11:00", cards[2].Hour)
}

func TestExpandSingleAndLegacy(t *testing.T) {
	chain := resolve.New([]domain.Professional{p1}, nil, time.UTC)

	legacy := domain.Appointment{ID: "a1", ScheduledAt: at(monday, 9, 0), LegacyService: "Banho", LegacyValue: 5000, Paid: true,
		CustomerName: "maria da silva", PetName: "Rex"}
	cards := Expand(&legacy, chain)
	require.Len(t, cards, 1)
	assert.True(t, cards[0].Whole)
	assert.True(t, cards[0].Locked)
	assert.Empty(t, cards[0].ItemIDs)
	assert.Equal(t, domain.Money(5000), cards[0].Value)
	assert.Equal(t, "Maria Sil..", cards[0].Customer)
	assert.Equal(t, "p1", cards[0].Column)
}

func TestExpandPartialStatus(t *testing.T) {
	chain := resolve.New([]domain.Professional{p1}, nil, time.UTC)
	appt := domain.Appointment{
		ID:          "a1",
		ScheduledAt: at(monday, 9, 0),
		Items: []domain.ServiceItem{
			{ItemID: "i1", ProfessionalID: "p1", Status: domain.StatusWaiting},
			{ItemID: "i2", ProfessionalID: "p1", Status: domain.StatusWaiting},
			{ItemID: "i3", ProfessionalID: "p1", Status: domain.StatusDone},
		},
	}
	cards := Expand(&appt, chain)
	require.Len(t, cards, 1)
	assert.Equal(t, domain.StatusPartial, cards[0].Status)
	assert.Equal(t, domain.StatusWaiting, cards[0].ActionStatus)
	assert.Equal(t, "Parcial", cards[0].StatusLabel)
}

func TestBuildDayCentroScenario(t *testing.T) {
	appt := domain.Appointment{
		ID:          "A",
		StoreID:     "s1",
		ScheduledAt: at(monday, 9, 0),
		Items: []domain.ServiceItem{
			{ItemID: "i1", ProfessionalID: "p1", Price: 4000, Name: "Banho"},
			{ItemID: "i2", Price: 3000, Name: "Tosa"},
		},
	}

	view := BuildDay(input([]domain.Appointment{appt}, p2, p1), monday)

	assert.False(t, view.Closed)
	assert.False(t, view.Empty)
	require.Len(t, view.Rows, 10)
	assert.Equal(t, "08:00", view.Rows[0].Hour)
	assert.Equal(t, "17:00", view.Rows[9].Hour)

	cards := allCards(view)
	require.Len(t, cards, 1)

	row := view.Rows[1]
	assert.Equal(t, "09:00", row.Hour)
	require.Len(t, row.Cells[1].Cards, 1)
	assert.Equal(t, "p1", row.Cells[1].Column)
	assert.Equal(t, domain.Money(7000), row.Cells[1].Cards[0].Value)
	assert.ElementsMatch(t, []string{"i1", "i2"}, row.Cells[1].Cards[0].ItemIDs)
}

func TestBuildDayClosed(t *testing.T) {
	appt := domain.Appointment{ID: "a1", ScheduledAt: at(sunday, 10, 0)}
	view := BuildDay(input([]domain.Appointment{appt}, p1), sunday)

	assert.True(t, view.Closed)
	assert.Empty(t, view.Rows)
	assert.Equal(t, domain.MsgStoreClosed, view.Notice)
}

func TestBuildDayEmptyAndExtendedHours(t *testing.T) {
	view := BuildDay(input(nil, p1), monday)
	assert.True(t, view.Empty)
	assert.Equal(t, domain.MsgEmptyAgenda, view.Notice)
	assert.Len(t, view.Rows, 10)

	late := domain.Appointment{ID: "a1", ScheduledAt: at(monday, 20, 30), ProfessionalID: "p1"}
	view = BuildDay(input([]domain.Appointment{late}, p1), monday)
	require.NotEmpty(t, view.Rows)
	assert.Equal(t, "20:00", view.Rows[len(view.Rows)-1].Hour)
	assert.Len(t, allCards(view), 1)
}

func TestBuildDayPlacesEveryCard(t *testing.T) {
	appts := []domain.Appointment{
		{ID: "a1", ScheduledAt: at(monday, 9, 0), ProfessionalID: "ghost"},
		{ID: "a2", ScheduledAt: at(monday, 9, 0), ProfessionalName: "bia"},
		{ID: "a3", ScheduledAt: at(monday, 13, 30), Items: []domain.ServiceItem{
			{ItemID: "x", ProfessionalID: "p1"}, {ItemID: "y", ProfessionalID: "p2", Hour: "15:00"},
		}},
	}
	in := input(appts, p1, p2)
	view := BuildDay(in, monday)

	expected := len(ExpandAll(in.Appointments, in.Chain))
	assert.Len(t, allCards(view), expected)
	assert.Equal(t, 4, expected)
}

func TestBuildDayHiddenColumnFallsBackToFirst(t *testing.T) {
	appt := domain.Appointment{ID: "a1", ScheduledAt: at(monday, 9, 0), ProfessionalID: "p2"}
	chain := resolve.New([]domain.Professional{p1, p2}, nil, time.UTC)
	in := Input{
		Store:        centro,
		Fallback:     fallback,
		Columns:      []domain.Column{domain.ColumnFor(p1)},
		Appointments: []domain.Appointment{appt},
		Chain:        chain,
	}

	view := BuildDay(in, monday)
	cards := allCards(view)
	require.Len(t, cards, 1)
	assert.Len(t, view.Rows[1].Cells[0].Cards, 1)
}

func TestBuildWeek(t *testing.T) {
	wednesday := monday.AddDate(0, 0, 2)
	appts := []domain.Appointment{
		{ID: "a1", ScheduledAt: at(monday, 9, 0)},
		{ID: "a2", ScheduledAt: at(wednesday, 12, 0)},
		{ID: "a3", ScheduledAt: at(monday.AddDate(0, 0, 7), 9, 0)},
	}
	view := BuildWeek(input(appts, p1), wednesday)

	require.Len(t, view.Days, 7)
	assert.Equal(t, "2025-03-03", view.Start)
	assert.Equal(t, "2025-03-09", view.End)
	assert.True(t, view.Days[6].Closed)
	assert.False(t, view.Empty)

	// union of 08:00-18:00 and the 08:00-19:00 fallback
	assert.Equal(t, "08:00", view.Rows[0].Hour)
	assert.Equal(t, "18:00", view.Rows[len(view.Rows)-1].Hour)

	placed := 0
	for _, r := range view.Rows {
		for _, c := range r.Cells {
			placed += len(c.Cards)
		}
	}
	assert.Equal(t, 2, placed)
	assert.Len(t, view.Rows[4].Cells[2].Cards, 1)
}

func TestBuildMonthOverflow(t *testing.T) {
	var appts []domain.Appointment
	for i := 0; i < 8; i++ {
		appts = append(appts, domain.Appointment{ID: string(rune('a' + i)), ScheduledAt: at(monday, 9+i, 0)})
	}
	view := BuildMonth(input(appts, p1), monday)

	require.Len(t, view.Cells, 42)
	assert.Equal(t, "2025-02-24", view.Cells[0].Date)
	assert.False(t, view.Cells[0].InMonth)

	cell := view.Cells[7]
	assert.Equal(t, "2025-03-03", cell.Date)
	assert.Len(t, cell.Cards, domain.MonthCellMaxCards)
	assert.Equal(t, 2, cell.Overflow)
	assert.Equal(t, "+2 itens", cell.OverflowLabel)
}

func TestHourRange(t *testing.T) {
	windows := []domain.DayHours{
		{Open: "09:30", Close: "12:15"},
		{Closed: true},
		{Open: "13:00", Close: "14:00"},
	}
	assert.Equal(t, []int{9, 10, 11, 12, 13}, HourRange(windows, nil))
	assert.Equal(t, []int{7, 8, 9, 10, 11, 12, 13}, HourRange(windows, []int{7}))
	assert.Empty(t, HourRange([]domain.DayHours{{Closed: true}}, nil))
}

func TestBuildDayKeepsSiblingColumnWhenSiblingFilteredOut(t *testing.T) {
	appt := domain.Appointment{
		ID:          "a1",
		ScheduledAt: at(monday, 9, 0),
		Items: []domain.ServiceItem{
			{ItemID: "i1", ProfessionalID: "p2", Status: domain.StatusScheduled, Price: 4000},
			{ItemID: "i2", Status: domain.StatusWaiting, Price: 3000},
		},
	}
	sel := domain.FilterSelection{Statuses: []domain.Status{domain.StatusWaiting}}
	res := filtering.Apply(sel, []domain.Appointment{appt}, []domain.Professional{p1, p2}, time.UTC)
	require.Len(t, res.Appointments, 1)
	require.Len(t, res.Appointments[0].Items, 1)

	in := Input{
		Store:        centro,
		Fallback:     fallback,
		Columns:      res.Columns,
		Appointments: res.Appointments,
		Chain:        res.Chain,
	}
	view := BuildDay(in, monday)

	cards := allCards(view)
	require.Len(t, cards, 1)
	assert.Equal(t, "p2", cards[0].Column)
	assert.Equal(t, []string{"i2"}, cards[0].ItemIDs)
	assert.Equal(t, domain.Money(3000), cards[0].Value)
}
