// Package timeutil holds calendar math used by the agenda views.
// All functions work in the location of the time they receive.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	DefaultTimezone = "America/Sao_Paulo"

	DateFormat   = "2006-01-02"
	BRDateFormat = "02/01/2006"
	HMFormat     = "15:04"

	// MonthGridCells is six full weeks starting on a Monday.
	MonthGridCells = 42
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidHM   = errors.New("invalid time of day")
)

// Location loads tz, falling back to the default timezone and then to UTC
func Location(tz string) *time.Location {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		if tz != DefaultTimezone {
			return Location(DefaultTimezone)
		}
		return time.UTC
	}
	return loc
}

// StartOfDay returns midnight of t's calendar day
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday of t's week
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns midnight of the first day of t's month
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// WeekRange returns [monday, next monday)
func WeekRange(t time.Time) (time.Time, time.Time) {
	start := StartOfWeek(t)
	return start, start.AddDate(0, 0, 7)
}

// MonthRange returns [first of month, first of next month)
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := StartOfMonth(t)
	return start, start.AddDate(0, 1, 0)
}

// MonthGridStart returns the first cell of the month grid
func MonthGridStart(t time.Time) time.Time {
	return StartOfWeek(StartOfMonth(t))
}

// DaysBetween lists every calendar day in [start, end)
func DaysBetween(start, end time.Time) []time.Time {
	days := make([]time.Time, 0, 7)
	for d := StartOfDay(start); d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// LocalDate formats the calendar date of t as seen in loc
func LocalDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateFormat)
}

// ParseDate accepts yyyy-mm-dd and dd/mm/yyyy and returns midnight in loc
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{DateFormat, BRDateFormat} {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// ParseHM parses "HH:MM" (or "H:MM") into minutes since midnight
func ParseHM(raw string) (int, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHM, raw)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHM, raw)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHM, raw)
	}
	return h*60 + m, nil
}

// FormatHM renders minutes since midnight as "HH:MM"
func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinuteOfDay returns minutes since midnight of t in loc
func MinuteOfDay(t time.Time, loc *time.Location) int {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Hour()*60 + t.Minute()
}

// BuildLocalDateTime combines a date string and "HH:MM" into a time in loc
func BuildLocalDateTime(date, hm string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return At(day, hm)
}

// At returns day's calendar date at "HH:MM" in day's location
func At(day time.Time, hm string) (time.Time, error) {
	minutes, err := ParseHM(hm)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, day.Location()), nil
}

// SameDay reports whether a and b fall on the same calendar day in loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	return LocalDate(a, loc) == LocalDate(b, loc)
}
