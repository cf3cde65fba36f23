package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeekIsMonday(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"sunday", time.Date(2025, 3, 9, 15, 0, 0, 0, loc), time.Date(2025, 3, 3, 0, 0, 0, 0, loc)},
		{"monday", time.Date(2025, 3, 3, 8, 0, 0, 0, loc), time.Date(2025, 3, 3, 0, 0, 0, 0, loc)},
		{"wednesday", time.Date(2025, 3, 5, 23, 59, 0, 0, loc), time.Date(2025, 3, 3, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfWeek(tt.in))
		})
	}
}

func TestRanges(t *testing.T) {
	d := time.Date(2025, 2, 12, 10, 0, 0, 0, time.UTC)

	start, end := WeekRange(d)
	assert.Equal(t, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC), end)
	assert.Len(t, DaysBetween(start, end), 7)

	start, end = MonthRange(d)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), end)

	// 2025-02-01 is a Saturday
	assert.Equal(t, time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC), MonthGridStart(d))
}

func TestLocalDateAvoidsUTCDrift(t *testing.T) {
	loc := Location(DefaultTimezone)
	// 01:30 UTC on the 5th is still the 4th in São Paulo
	ts := time.Date(2025, 3, 5, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-04", LocalDate(ts, loc))
	assert.Equal(t, "2025-03-05", ts.Format(DateFormat))
}

func TestParseDateAndBuild(t *testing.T) {
	loc := time.UTC

	d1, err := ParseDate("2025-03-04", loc)
	require.NoError(t, err)
	d2, err := ParseDate("04/03/2025", loc)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)

	_, err = ParseDate("03-04-2025", loc)
	assert.ErrorIs(t, err, ErrInvalidDate)

	at, err := BuildLocalDateTime("04/03/2025", "09:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 9, 30, 0, 0, loc), at)
}

func TestParseHM(t *testing.T) {
	m, err := ParseHM("08:05")
	require.NoError(t, err)
	assert.Equal(t, 485, m)

	m, err = ParseHM("24:00")
	require.NoError(t, err)
	assert.Equal(t, 1440, m)

	for _, bad := range []string{"", "8", "25:00", "10:60", "aa:bb", "24:30"} {
		_, err := ParseHM(bad)
		assert.ErrorIs(t, err, ErrInvalidHM, bad)
	}

	assert.Equal(t, "07:45", FormatHM(465))
}

func TestLocationFallback(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}
