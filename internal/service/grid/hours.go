package grid

import "github.com/m04kA/SMC-GroomingAgenda/internal/domain"

// HourRange returns the hour rows covering the union of the open windows,
// from floor(open) to ceil(close), widened so every hour in extra is included.
// Closed windows are ignored.
func HourRange(windows []domain.DayHours, extra []int) []int {
	first, last := 24, -1
	for _, w := range windows {
		openMin, closeMin, ok := w.Window()
		if !ok {
			continue
		}
		if h := openMin / 60; h < first {
			first = h
		}
		if h := (closeMin+59)/60 - 1; h > last {
			last = h
		}
	}
	for _, h := range extra {
		if h < 0 || h > 23 {
			continue
		}
		if h < first {
			first = h
		}
		if h > last {
			last = h
		}
	}
	if last < first {
		return []int{}
	}

	hours := make([]int, 0, last-first+1)
	for h := first; h <= last; h++ {
		hours = append(hours, h)
	}
	return hours
}
