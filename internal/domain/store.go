package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/pkg/timeutil"
)

// DayHours is the open/close window of a store on one weekday
type DayHours struct {
	Open   string // HH:MM
	Close  string // HH:MM
	Closed bool
}

// Store is a business location. The agenda only reads it.
type Store struct {
	ID            string
	Name          string
	BusinessHours map[time.Weekday]DayHours
}

// WeekdayKeys maps the backend's weekday keys to time.Weekday
var WeekdayKeys = map[string]time.Weekday{
	"domingo": time.Sunday,
	"segunda": time.Monday,
	"terca":   time.Tuesday,
	"quarta":  time.Wednesday,
	"quinta":  time.Thursday,
	"sexta":   time.Friday,
	"sabado":  time.Saturday,
}

// HoursOn returns the window for date's weekday, or fallback when the store has none configured
func (s *Store) HoursOn(date time.Time, fallback DayHours) DayHours {
	if s == nil || s.BusinessHours == nil {
		return fallback
	}
	hours, ok := s.BusinessHours[date.Weekday()]
	if !ok {
		return fallback
	}
	if !hours.Closed && (hours.Open == "" || hours.Close == "") {
		return fallback
	}
	return hours
}

// Window returns the window in minutes since midnight.
// ok is false for closed days and for unparsable or empty windows.
func (d DayHours) Window() (openMin, closeMin int, ok bool) {
	if d.Closed {
		return 0, 0, false
	}
	openMin, err := timeutil.ParseHM(d.Open)
	if err != nil {
		return 0, 0, false
	}
	closeMin, err = timeutil.ParseHM(d.Close)
	if err != nil || closeMin <= openMin {
		return 0, 0, false
	}
	return openMin, closeMin, true
}

// Contains reports whether minute falls inside [open, close)
func (d DayHours) Contains(minute int) bool {
	openMin, closeMin, ok := d.Window()
	return ok && minute >= openMin && minute < closeMin
}

// WeekdayFromKey resolves "terça", "Sabado" and similar keys
func WeekdayFromKey(key string) (time.Weekday, bool) {
	wd, ok := WeekdayKeys[strings.ToLower(strings.TrimSpace(stripMarks(key)))]
	return wd, ok
}
