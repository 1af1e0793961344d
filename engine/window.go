package engine

import "github.com/amanahdev/ramadan-companion/models"

// ValidateWindow checks both dates are well formed and end does not precede
// start.
func ValidateWindow(w models.RamadanWindow) error {
	if !ValidDate(w.StartDate) || !ValidDate(w.EndDate) {
		return ErrInvalidWindow
	}
	if DaysBetween(w.StartDate, w.EndDate) < 0 {
		return ErrInvalidWindow
	}
	return nil
}

// WindowDay computes the 1-based current day index and the total length of
// the window. Before the window the index is 0; after it, the index pins to
// the final day.
func WindowDay(w models.RamadanWindow, today string) (currentDay, totalDays int) {
	totalDays = DaysBetween(w.StartDate, w.EndDate) + 1

	offset := DaysBetween(w.StartDate, today)
	switch {
	case offset < 0:
		currentDay = 0
	case offset >= totalDays:
		currentDay = totalDays
	default:
		currentDay = offset + 1
	}
	return currentDay, totalDays
}
