package models

// RamadanWindow is the configured start/end of the observance period. Dates
// are day-precision ISO strings; EndDate is inclusive and never precedes
// StartDate.
type RamadanWindow struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// VerseRead marks the calendar date on which the daily verse was last read.
// It is the claim precondition in the verse-gated sign-in variant.
type VerseRead struct {
	Date string `json:"date"`
}
