package engine

import "time"

// DateLayout is the day-precision format used for every persisted date.
const DateLayout = "2006-01-02"

// Today returns today's date string in the given location.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(DateLayout)
}

// Yesterday returns yesterday's date string in the given location.
func Yesterday(loc *time.Location) string {
	return time.Now().In(loc).AddDate(0, 0, -1).Format(DateLayout)
}

// DaysBetween returns the whole-day difference b-a between two date strings.
// Malformed input yields 0 so callers degrade to the pre-window state.
func DaysBetween(a, b string) int {
	ta, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0
	}
	tb, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// ValidDate reports whether s is a well formed day-precision date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
