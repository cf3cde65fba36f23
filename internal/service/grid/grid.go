// Package grid assembles the day, week and month views of the agenda.
// Every card of the input lands in exactly one cell.
package grid

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/resolve"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/timeutil"
)

// Input is what every view is built from. Appointments are already filtered.
type Input struct {
	Store        *domain.Store
	Fallback     domain.DayHours
	Columns      []domain.Column
	Appointments []domain.Appointment
	Chain        *resolve.Chain
}

// ColumnView is one resource column of the day view
type ColumnView struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	Kind         string `json:"kind,omitempty"`
	KindLabel    string `json:"kindLabel,omitempty"`
	NoPreference bool   `json:"noPreference"`
}

// Cell holds the cards of one (row, column) slot
type Cell struct {
	Column string `json:"column"`
	Cards  []Card `json:"cards"`
}

// Row is one hour of the day or week view
type Row struct {
	Hour  string `json:"hour"`
	Cells []Cell `json:"cells"`
}

// DayView is the resource grid of one date
type DayView struct {
	Date    string       `json:"date"`
	Open    string       `json:"open,omitempty"`
	Close   string       `json:"close,omitempty"`
	Closed  bool         `json:"closed"`
	Empty   bool         `json:"empty"`
	Notice  string       `json:"notice,omitempty"`
	Columns []ColumnView `json:"columns"`
	Rows    []Row        `json:"rows"`
}

// WeekDay is the header of one week section
type WeekDay struct {
	Date    string `json:"date"`
	Weekday int    `json:"weekday"`
	Closed  bool   `json:"closed"`
}

// WeekView lays seven days side by side over shared hour rows
type WeekView struct {
	Start  string    `json:"start"`
	End    string    `json:"end"`
	Empty  bool      `json:"empty"`
	Notice string    `json:"notice,omitempty"`
	Days   []WeekDay `json:"days"`
	Rows   []Row     `json:"rows"`
}

// MonthCell is one day of the 6x7 month grid
type MonthCell struct {
	Date          string `json:"date"`
	InMonth       bool   `json:"inMonth"`
	Closed        bool   `json:"closed"`
	Cards         []Card `json:"cards"`
	Overflow      int    `json:"overflow"`
	OverflowLabel string `json:"overflowLabel,omitempty"`
}

// MonthView is the month calendar
type MonthView struct {
	Month  string      `json:"month"`
	Empty  bool        `json:"empty"`
	Notice string      `json:"notice,omitempty"`
	Cells  []MonthCell `json:"cells"`
}

func (in Input) location() *time.Location {
	if in.Chain == nil {
		return time.UTC
	}
	return in.Chain.Location()
}

func (in Input) hoursOn(day time.Time) domain.DayHours {
	return in.Store.HoursOn(day, in.Fallback)
}

// BuildDay builds the day view. A closed date has no rows and carries the closed notice.
func BuildDay(in Input, date time.Time) DayView {
	loc := in.location()
	day := timeutil.StartOfDay(date.In(loc))
	view := DayView{
		Date:    day.Format(domain.DateFormat),
		Columns: ColumnViews(in.Columns),
		Rows:    []Row{},
	}

	hours := in.hoursOn(day)
	if _, _, ok := hours.Window(); !ok {
		view.Closed = true
		view.Notice = domain.MsgStoreClosed
		return view
	}
	view.Open, view.Close = hours.Open, hours.Close

	cards := cardsOn(ExpandAll(in.Appointments, in.Chain), day, loc)
	rows := HourRange([]domain.DayHours{hours}, cardHours(cards, loc))

	rowIndex := make(map[int]int, len(rows))
	view.Rows = make([]Row, len(rows))
	for i, h := range rows {
		rowIndex[h] = i
		view.Rows[i] = Row{Hour: hourLabel(h), Cells: make([]Cell, len(in.Columns))}
		for j, col := range in.Columns {
			view.Rows[i].Cells[j] = Cell{Column: col.Ref.Key(), Cards: []Card{}}
		}
	}

	placed := 0
	if len(in.Columns) > 0 {
		colIndex := columnIndex(in.Columns)
		for _, c := range cards {
			r := rowIndex[c.Start.In(loc).Hour()]
			col, ok := colIndex[c.Column]
			if !ok {
				col = 0
			}
			cell := &view.Rows[r].Cells[col]
			cell.Cards = append(cell.Cards, c)
			placed++
		}
	}

	if placed == 0 {
		view.Empty = true
		view.Notice = domain.MsgEmptyAgenda
	}
	return view
}

// BuildWeek builds the Monday-based week containing date
func BuildWeek(in Input, date time.Time) WeekView {
	loc := in.location()
	start, end := timeutil.WeekRange(date.In(loc))
	days := timeutil.DaysBetween(start, end)

	view := WeekView{
		Start: start.Format(domain.DateFormat),
		End:   end.AddDate(0, 0, -1).Format(domain.DateFormat),
		Days:  make([]WeekDay, len(days)),
	}

	windows := make([]domain.DayHours, 0, len(days))
	dayIndex := make(map[string]int, len(days))
	for i, d := range days {
		hours := in.hoursOn(d)
		_, _, open := hours.Window()
		view.Days[i] = WeekDay{Date: d.Format(domain.DateFormat), Weekday: int(d.Weekday()), Closed: !open}
		dayIndex[view.Days[i].Date] = i
		windows = append(windows, hours)
	}

	cards := make([]Card, 0)
	for _, c := range ExpandAll(in.Appointments, in.Chain) {
		if _, ok := dayIndex[timeutil.LocalDate(c.Start, loc)]; ok {
			cards = append(cards, c)
		}
	}

	rows := HourRange(windows, cardHours(cards, loc))
	rowIndex := make(map[int]int, len(rows))
	view.Rows = make([]Row, len(rows))
	for i, h := range rows {
		rowIndex[h] = i
		view.Rows[i] = Row{Hour: hourLabel(h), Cells: make([]Cell, len(days))}
		for j := range days {
			view.Rows[i].Cells[j] = Cell{Column: view.Days[j].Date, Cards: []Card{}}
		}
	}

	for _, c := range cards {
		r := rowIndex[c.Start.In(loc).Hour()]
		d := dayIndex[timeutil.LocalDate(c.Start, loc)]
		cell := &view.Rows[r].Cells[d]
		cell.Cards = append(cell.Cards, c)
	}

	if len(cards) == 0 {
		view.Empty = true
		view.Notice = domain.MsgEmptyAgenda
	}
	return view
}

// BuildMonth builds the 42-cell month grid. Cells list at most MonthCellMaxCards
// cards and count the rest as overflow.
func BuildMonth(in Input, date time.Time) MonthView {
	loc := in.location()
	local := date.In(loc)
	first := timeutil.StartOfMonth(local)
	gridStart := timeutil.MonthGridStart(local)

	view := MonthView{
		Month: first.Format("2006-01"),
		Cells: make([]MonthCell, timeutil.MonthGridCells),
	}

	cellIndex := make(map[string]int, timeutil.MonthGridCells)
	for i := 0; i < timeutil.MonthGridCells; i++ {
		d := gridStart.AddDate(0, 0, i)
		_, _, open := in.hoursOn(d).Window()
		view.Cells[i] = MonthCell{
			Date:    d.Format(domain.DateFormat),
			InMonth: d.Month() == first.Month(),
			Closed:  !open,
			Cards:   []Card{},
		}
		cellIndex[view.Cells[i].Date] = i
	}

	placed := 0
	for _, c := range ExpandAll(in.Appointments, in.Chain) {
		i, ok := cellIndex[timeutil.LocalDate(c.Start, loc)]
		if !ok {
			continue
		}
		cell := &view.Cells[i]
		if len(cell.Cards) < domain.MonthCellMaxCards {
			cell.Cards = append(cell.Cards, c)
		} else {
			cell.Overflow++
			cell.OverflowLabel = fmt.Sprintf("+%d itens", cell.Overflow)
		}
		placed++
	}

	if placed == 0 {
		view.Empty = true
		view.Notice = domain.MsgEmptyAgenda
	}
	return view
}

// ColumnViews converts columns for display
func ColumnViews(cols []domain.Column) []ColumnView {
	out := make([]ColumnView, 0, len(cols))
	for _, c := range cols {
		v := ColumnView{Key: c.Ref.Key(), Name: c.Name, NoPreference: c.Ref.IsNoPreference()}
		if !v.NoPreference {
			v.Kind = string(c.Kind)
			v.KindLabel = c.Kind.Label()
		}
		out = append(out, v)
	}
	return out
}

func columnIndex(cols []domain.Column) map[string]int {
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		idx[c.Ref.Key()] = i
	}
	return idx
}

func cardsOn(cards []Card, day time.Time, loc *time.Location) []Card {
	date := day.Format(domain.DateFormat)
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if timeutil.LocalDate(c.Start, loc) == date {
			out = append(out, c)
		}
	}
	return out
}

func cardHours(cards []Card, loc *time.Location) []int {
	hours := make([]int, 0, len(cards))
	for _, c := range cards {
		hours = append(hours, c.Start.In(loc).Hour())
	}
	return hours
}

func hourLabel(h int) string {
	return timeutil.FormatHM(h * 60)
}
